package parents

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupParentsRoutes(app *fiber.App) {
	parents := app.Group("/parents")
	parents.Use(auth.AuthMiddleware)
	parents.Use(auth.RequireUserType(models.UserTypeAdmin))
	parents.Get("/", ParentsPage)

	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	api.Get("/", admin, GetParentsAPI)
	api.Get("/:id", GetParentAPI)
	api.Get("/:id/children", GetChildrenAPI)
	api.Post("/", admin, CreateParentAPI)
	api.Post("/:id/children", admin, AddChildAPI)
	api.Delete("/:id/children/:studentId", admin, RemoveChildAPI)
}

func ParentsPage(c *fiber.Ctx) error {
	parents, err := database.GetAllParents(config.GetDB())
	if err != nil {
		parents = []*models.Parent{}
	}

	return c.Render("parents/index", fiber.Map{
		"Title":       "Parents - " + config.SiteName(),
		"CurrentPage": "parents",
		"parents":     parents,
		"user":        c.Locals("user"),
	})
}
