package events

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App) {
	// Public
	app.Get("/events", EventsPage)
	app.Get("/api/events", GetUpcomingEventsAPI)

	// Admin management
	admin := auth.RequireUserType(models.UserTypeAdmin)
	manage := app.Group("/api/admin/events", auth.AuthMiddleware, admin)
	manage.Get("/", GetAllEventsAPI)
	manage.Get("/:id", GetEventAPI)
	manage.Post("/", CreateEventAPI)
	manage.Put("/:id", UpdateEventAPI)
	manage.Delete("/:id", DeleteEventAPI)
}

func EventsPage(c *fiber.Ctx) error {
	events, err := database.GetUpcomingEvents(config.GetDB(), 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load events")
	}
	return c.Render("events/index", fiber.Map{
		"Title":  "School Events",
		"Events": events,
	})
}
