package subjects

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	subjects := app.Group("/subjects")
	subjects.Use(auth.AuthMiddleware)
	subjects.Use(auth.RequireUserType(models.UserTypeAdmin, models.UserTypeTeacher))
	subjects.Get("/", SubjectsPage)

	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	api.Post("/", admin, CreateSubjectAPI)
	api.Put("/:id", admin, UpdateSubjectAPI)
	api.Delete("/:id", admin, DeleteSubjectAPI)
}

func SubjectsPage(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		subjects = []*models.Subject{}
	}

	return c.Render("subjects/index", fiber.Map{
		"Title":       "Subjects - " + config.SiteName(),
		"CurrentPage": "subjects",
		"subjects":    subjects,
		"user":        c.Locals("user"),
	})
}
