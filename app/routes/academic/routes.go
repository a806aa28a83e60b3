package academic

import (
	"database/sql"

	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the academic year and term routes
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireUserType(models.UserTypeAdmin)

	// Academic Year routes
	app.Get("/api/academic-years", auth.AuthMiddleware, GetAllAcademicYearsHandler(db))
	app.Get("/api/academic-years/:id", auth.AuthMiddleware, GetAcademicYearHandler(db))
	app.Post("/api/academic-years", auth.AuthMiddleware, admin, CreateAcademicYearHandler(db))
	app.Put("/api/academic-years/:id", auth.AuthMiddleware, admin, UpdateAcademicYearHandler(db))
	app.Delete("/api/academic-years/:id", auth.AuthMiddleware, admin, DeleteAcademicYearHandler(db))

	// Term routes
	app.Get("/api/terms", auth.AuthMiddleware, GetAllTermsHandler(db))
	app.Get("/api/terms/current", auth.AuthMiddleware, GetCurrentTermHandler(db))
	app.Get("/api/terms/:id", auth.AuthMiddleware, GetTermHandler(db))
	app.Post("/api/terms", auth.AuthMiddleware, admin, CreateTermHandler(db))
	app.Put("/api/terms/:id", auth.AuthMiddleware, admin, UpdateTermHandler(db))
	app.Delete("/api/terms/:id", auth.AuthMiddleware, admin, DeleteTermHandler(db))
	app.Put("/api/terms/:id/set-current", auth.AuthMiddleware, admin, SetCurrentTermHandler(db))

	// Terms by Academic Year
	app.Get("/api/academic-years/:academicYearId/terms", auth.AuthMiddleware, GetTermsByAcademicYearHandler(db))

	// Serve the academic settings page
	app.Get("/settings/academic", auth.AuthMiddleware, admin, AcademicSettingsPageHandler(db))
}

// AcademicSettingsPageHandler serves the academic settings page
func AcademicSettingsPageHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get user from context (set by auth middleware)
		user := c.Locals("user").(*models.User)

		// Get all academic years
		academicYears, err := database.GetAllAcademicYears(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load academic years: "+err.Error())
		}

		// Get all terms
		terms, err := database.GetAllTerms(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load terms: "+err.Error())
		}

		data := fiber.Map{
			"AcademicYears": academicYears,
			"Terms":         terms,
			"CurrentPage":   "academic",
			"Title":         "Academic Settings",
			"FirstName":     user.FirstName,
			"LastName":      user.LastName,
			"Email":         user.Email,
			"user":          user,
		}

		return c.Render("academic/settings", data)
	}
}
