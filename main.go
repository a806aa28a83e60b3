package main

import (
	"encoding/json"
	"log"
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/routes/academic"
	"stmarys-portal/app/routes/assignments"
	"stmarys-portal/app/routes/attendance"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/routes/classes"
	"stmarys-portal/app/routes/dashboard"
	"stmarys-portal/app/routes/events"
	"stmarys-portal/app/routes/gallery"
	"stmarys-portal/app/routes/grades"
	"stmarys-portal/app/routes/messages"
	"stmarys-portal/app/routes/news"
	"stmarys-portal/app/routes/pages"
	"stmarys-portal/app/routes/parents"
	"stmarys-portal/app/routes/reports"
	"stmarys-portal/app/routes/settings"
	"stmarys-portal/app/routes/students"
	"stmarys-portal/app/routes/subjects"
	"stmarys-portal/app/routes/teachers"
	"stmarys-portal/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - St. Mary's School",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - St. Mary's School",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - St. Mary's School",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - St. Mary's School",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - St. Mary's School",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// The portal settings row must exist before any toggle is checked
	if _, err := database.EnsurePortalSettings(config.GetDB()); err != nil {
		log.Fatal("Failed to initialize portal settings:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile("./static/favicon.ico")
	})

	// Public website
	pages.SetupPageRoutes(app)
	news.SetupNewsRoutes(app)
	gallery.SetupGalleryRoutes(app)
	events.SetupEventRoutes(app)

	// Portal
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	parents.SetupParentsRoutes(app)
	classes.SetupClassesRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	academic.RegisterRoutes(app, config.GetDB())
	assignments.SetupAssignmentsRoutes(app)
	grades.SetupGradesRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	reports.SetupReportRoutes(app)
	messages.SetupMessageRoutes(app)
	settings.SetupSettingsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
