package dashboard

import (
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)

	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
	api.Get("/student", GetStudentDashboardAPI)
	api.Get("/teacher", GetTeacherDashboardAPI)
	api.Get("/parent", GetParentDashboardAPI)
}
