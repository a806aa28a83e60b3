package pages

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes registers the public website pages.
func SetupPageRoutes(app *fiber.App) {
	app.Get("/", HomePage)
	app.Get("/about", AboutPage)
	app.Get("/academics", AcademicsPage)
	app.Get("/admissions", AdmissionsPage)
	app.Get("/contact", ContactPage)
	app.Post("/api/contact", SubmitContactAPI)

	admin := auth.RequireUserType(models.UserTypeAdmin)
	manage := app.Group("/api/admin/contact", auth.AuthMiddleware, admin)
	manage.Get("/", GetContactMessagesAPI)
	manage.Post("/:id/read", MarkContactMessageReadAPI)
}

func HomePage(c *fiber.Ctx) error {
	db := config.GetDB()

	news, err := database.GetPublishedArticles(db, "", 4)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page")
	}
	featured, err := database.GetFeaturedArticles(db, 3)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page")
	}
	events, err := database.GetUpcomingEvents(db, 3)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page")
	}

	return c.Render("pages/home", fiber.Map{
		"Title":    "St. Mary's School",
		"News":     news,
		"Featured": featured,
		"Events":   events,
	})
}

func AboutPage(c *fiber.Ctx) error {
	return c.Render("pages/about", fiber.Map{
		"Title": "About Us",
	})
}

func AcademicsPage(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page")
	}
	return c.Render("pages/academics", fiber.Map{
		"Title":   "Academics",
		"Classes": classes,
	})
}

func AdmissionsPage(c *fiber.Ctx) error {
	return c.Render("pages/admissions", fiber.Map{
		"Title": "Admissions",
	})
}

func ContactPage(c *fiber.Ctx) error {
	return c.Render("pages/contact", fiber.Map{
		"Title": "Contact Us",
	})
}

func SubmitContactAPI(c *fiber.Ctx) error {
	type ContactRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := validation.Var(req.Name, "required,min=1,max=100"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}
	if err := validation.Var(req.Email, "required,email"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email address is required"})
	}
	if err := validation.Var(req.Message, "required,min=1"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Message is required"})
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := database.CreateContactMessage(config.GetDB(), message); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Thank you, we will get back to you soon"})
}

func GetContactMessagesAPI(c *fiber.Ctx) error {
	messages, err := database.GetContactMessages(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(messages)
}

func MarkContactMessageReadAPI(c *fiber.Ctx) error {
	if err := database.MarkContactMessageRead(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark message"})
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}
