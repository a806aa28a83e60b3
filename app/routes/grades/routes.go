package grades

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	grades := app.Group("/grades")
	grades.Use(auth.AuthMiddleware)
	grades.Get("/", GradesPage)

	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	teacher := auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher)
	api.Post("/", auth.RequireUserType(models.UserTypeTeacher), CreateGradeAPI)
	api.Put("/:id", teacher, UpdateGradeAPI)
	api.Delete("/:id", teacher, DeleteGradeAPI)
}

func GradesPage(c *fiber.Ctx) error {
	db := config.GetDB()

	var grades []*models.Grade
	switch auth.CurrentUserType(c) {
	case models.UserTypeTeacher:
		teacher, err := auth.RequireOwnTeacher(c)
		if err != nil {
			return err
		}
		grades, _ = database.GetGradesByTeacher(db, teacher.ID, 50)
	case models.UserTypeStudent:
		student, err := auth.RequireOwnStudent(c)
		if err != nil {
			return err
		}
		if term, terr := database.GetCurrentTerm(db); terr == nil {
			grades, _ = database.GetGradesByStudentAndTerm(db, student.ID, term.ID, 0)
		}
	}
	if grades == nil {
		grades = []*models.Grade{}
	}

	return c.Render("grades/index", fiber.Map{
		"Title":       "Grades - " + config.SiteName(),
		"CurrentPage": "grades",
		"grades":      grades,
		"user":        c.Locals("user"),
	})
}
