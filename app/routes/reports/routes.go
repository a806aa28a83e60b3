package reports

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	app.Get("/reports", auth.AuthMiddleware, ReportsPage)
	app.Get("/reports/:studentId/:termId", auth.AuthMiddleware, ReportDetailPage)

	api := app.Group("/api/reports", auth.AuthMiddleware)

	api.Get("/student/:studentId", GetStudentReportsAPI)
	api.Get("/student/:studentId/term/:termId", GetReportAPI)

	staff := auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher)
	api.Post("/generate/:classId", staff, GenerateClassReportsAPI)
	api.Put("/:studentId/:termId/comments", staff, UpdateReportCommentsAPI)
}

func ReportsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	switch auth.CurrentUserType(c) {
	case models.UserTypeStudent:
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		reports, err := database.GetReportsByStudent(db, student.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load reports")
		}
		return c.Render("reports/index", fiber.Map{
			"Title":   "Progress Reports",
			"Reports": reports,
		})
	case models.UserTypeParent:
		parent, err := auth.RequireOwnParent(c)
		if err != nil {
			return err
		}
		children, err := database.GetChildren(db, parent.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load children")
		}
		return c.Render("reports/index", fiber.Map{
			"Title":    "Progress Reports",
			"Children": children,
		})
	default:
		classes, err := staffClasses(c)
		if err != nil {
			return err
		}
		return c.Render("reports/index", fiber.Map{
			"Title":   "Progress Reports",
			"Classes": classes,
		})
	}
}

func ReportDetailPage(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	report, err := database.GetProgressReport(config.GetDB(), studentID, c.Params("termId"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return c.Render("reports/detail", fiber.Map{
		"Title":  "Progress Report",
		"Report": report,
	})
}

func staffClasses(c *fiber.Ctx) ([]*models.Class, error) {
	db := config.GetDB()
	if auth.CurrentUserType(c) == models.UserTypeTeacher {
		teacher, err := auth.RequireOwnTeacher(c)
		if err != nil {
			return nil, err
		}
		return database.GetClassesByTeacher(db, teacher.ID)
	}
	return database.GetAllClasses(db)
}
