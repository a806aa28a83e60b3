package settings

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	admin := auth.RequireUserType(models.UserTypeAdmin)

	app.Get("/settings", auth.AuthMiddleware, admin, SettingsPage)

	api := app.Group("/api/settings", auth.AuthMiddleware, admin)
	api.Get("/", GetSettingsAPI)
	api.Put("/", UpdateSettingsAPI)
}

func SettingsPage(c *fiber.Ctx) error {
	settings, err := database.EnsurePortalSettings(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load settings")
	}
	return c.Render("settings/index", fiber.Map{
		"Title":    "Portal Settings",
		"Settings": settings,
	})
}

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.EnsurePortalSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

// UpdateSettingsAPI edits the single settings row. Absent fields keep
// their current values.
func UpdateSettingsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	settings, err := database.EnsurePortalSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	type UpdateRequest struct {
		SchoolYearStartMonth        *int                 `json:"school_year_start_month"`
		GradingScale                *models.GradingScale `json:"grading_scale"`
		AttendanceRequired          *bool                `json:"attendance_required"`
		ParentAccessEnabled         *bool                `json:"parent_access_enabled"`
		AssignmentSubmissionEnabled *bool                `json:"assignment_submission_enabled"`
		CommunicationEnabled        *bool                `json:"communication_enabled"`
		ReportGenerationEnabled     *bool                `json:"report_generation_enabled"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.SchoolYearStartMonth != nil {
		if err := validation.Var(*req.SchoolYearStartMonth, "min=1,max=12"); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "School year start month must be between 1 and 12"})
		}
		settings.SchoolYearStartMonth = *req.SchoolYearStartMonth
	}
	if req.GradingScale != nil {
		settings.GradingScale = *req.GradingScale
	}
	if req.AttendanceRequired != nil {
		settings.AttendanceRequired = *req.AttendanceRequired
	}
	if req.ParentAccessEnabled != nil {
		settings.ParentAccessEnabled = *req.ParentAccessEnabled
	}
	if req.AssignmentSubmissionEnabled != nil {
		settings.AssignmentSubmissionEnabled = *req.AssignmentSubmissionEnabled
	}
	if req.CommunicationEnabled != nil {
		settings.CommunicationEnabled = *req.CommunicationEnabled
	}
	if req.ReportGenerationEnabled != nil {
		settings.ReportGenerationEnabled = *req.ReportGenerationEnabled
	}

	if err := database.UpdatePortalSettings(db, settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.JSON(settings)
}
