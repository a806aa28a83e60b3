package messages

import (
	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	app.Get("/messages", auth.AuthMiddleware, MessagesPage)
	app.Get("/messages/:id", auth.AuthMiddleware, MessageDetailPage)

	api := app.Group("/api/messages", auth.AuthMiddleware)
	api.Get("/", GetInboxAPI)
	api.Get("/sent", GetSentMessagesAPI)
	api.Get("/unread-count", GetUnreadCountAPI)
	api.Get("/:id", GetMessageAPI)
	api.Post("/", SendMessageAPI)
	api.Post("/:id/read", MarkMessageReadAPI)
}

func MessagesPage(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)

	inbox, err := database.GetInbox(db, userID, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load messages")
	}
	sent, err := database.GetSentMessages(db, userID, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load messages")
	}

	return c.Render("messages/index", fiber.Map{
		"Title": "Messages",
		"Inbox": inbox,
		"Sent":  sent,
	})
}

func MessageDetailPage(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)
	messageID := c.Params("id")

	message, err := database.GetCommunicationByID(db, messageID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}

	if message.SenderID != userID {
		ok, err := database.IsRecipient(db, messageID, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load message")
		}
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this resource")
		}
		// Opening a message counts as reading it
		if err := database.MarkMessageRead(db, messageID, userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load message")
		}
	}

	return c.Render("messages/detail", fiber.Map{
		"Title":   message.Subject,
		"Message": message,
	})
}
