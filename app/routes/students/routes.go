package students

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Use(auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher))
	students.Get("/", StudentsPage)
	students.Get("/:id", StudentDetailPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/:id", GetStudentAPI)
	api.Get("/:id/grades", GetStudentGradesAPI)
	api.Get("/:id/attendance", GetStudentAttendanceAPI)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	api.Get("/", auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher), GetStudentsAPI)
	api.Post("/", admin, CreateStudentAPI)
	api.Put("/:id", admin, UpdateStudentAPI)
	api.Delete("/:id", admin, DeactivateStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		students = []*models.Student{}
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - " + config.SiteName(),
		"CurrentPage": "students",
		"students":    students,
		"user":        c.Locals("user"),
	})
}

func StudentDetailPage(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := auth.CanViewStudent(c, studentID); err != nil {
		return err
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.Render("students/detail", fiber.Map{
		"Title":       student.FullName() + " - " + config.SiteName(),
		"CurrentPage": "students",
		"student":     student,
		"user":        c.Locals("user"),
	})
}
