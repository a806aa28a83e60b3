package teachers

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App) {
	teachers := app.Group("/teachers")
	teachers.Use(auth.AuthMiddleware)
	teachers.Use(auth.RequireUserType(models.UserTypeAdmin))
	teachers.Get("/", TeachersPage)

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	api.Get("/", admin, GetTeachersAPI)
	api.Get("/:id", admin, GetTeacherAPI)
	api.Post("/", admin, CreateTeacherAPI)
	api.Put("/:id", admin, UpdateTeacherAPI)
	api.Delete("/:id", admin, DeactivateTeacherAPI)
	api.Put("/:id/subjects", admin, SetTeacherSubjectsAPI)
}

func TeachersPage(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		teachers = []*models.Teacher{}
	}

	return c.Render("teachers/index", fiber.Map{
		"Title":       "Teachers - " + config.SiteName(),
		"CurrentPage": "teachers",
		"teachers":    teachers,
		"user":        c.Locals("user"),
	})
}
