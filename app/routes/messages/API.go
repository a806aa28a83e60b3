package messages

import (
	"strconv"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/routes/auth"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetInboxAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit, _ := strconv.Atoi(c.Query("limit"))

	inbox, err := database.GetInbox(config.GetDB(), userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(inbox)
}

func GetSentMessagesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit, _ := strconv.Atoi(c.Query("limit"))

	sent, err := database.GetSentMessages(config.GetDB(), userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(sent)
}

func GetUnreadCountAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	count, err := database.CountUnreadMessages(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch unread count"})
	}
	return c.JSON(fiber.Map{"unread": count})
}

func GetMessageAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)
	messageID := c.Params("id")

	message, err := database.GetCommunicationByID(db, messageID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
	}

	if message.SenderID != userID {
		ok, err := database.IsRecipient(db, messageID, userID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch message"})
		}
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "You don't have permission to access this resource"})
		}
	}
	return c.JSON(message)
}

// SendMessageAPI creates a communication. Broadcasts are reserved for
// admins and ignore the recipient list; everyone else must name at
// least one recipient.
func SendMessageAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	settings, err := database.EnsurePortalSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load portal settings"})
	}
	if !settings.CommunicationEnabled {
		return c.Status(403).JSON(fiber.Map{"error": "Messaging is currently disabled"})
	}

	type SendRequest struct {
		Subject        string   `json:"subject"`
		Message        string   `json:"message"`
		MessageType    string   `json:"message_type"`
		Priority       string   `json:"priority"`
		AttachmentPath string   `json:"attachment_path"`
		IsBroadcast    bool     `json:"is_broadcast"`
		RecipientIDs   []string `json:"recipient_ids"`
	}
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := validation.Var(req.Subject, "required,min=1,max=200"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Subject is required"})
	}
	if err := validation.Var(req.Message, "required"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Message body is required"})
	}

	if req.IsBroadcast && auth.CurrentUserType(c) != models.UserTypeAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Only administrators can broadcast"})
	}
	if !req.IsBroadcast && len(req.RecipientIDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "At least one recipient is required"})
	}

	messageType := models.MessageType(req.MessageType)
	if req.MessageType == "" {
		messageType = models.GeneralMsg
	}
	priority := models.PriorityLevel(req.Priority)
	if req.Priority == "" {
		priority = models.MediumPriority
	}

	message := &models.Communication{
		SenderID:       c.Locals("user_id").(string),
		MessageType:    messageType,
		Priority:       priority,
		Subject:        req.Subject,
		Message:        req.Message,
		AttachmentPath: req.AttachmentPath,
		IsBroadcast:    req.IsBroadcast,
	}

	recipients := req.RecipientIDs
	if req.IsBroadcast {
		recipients = nil
	}
	if err := database.CreateCommunication(db, message, recipients); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}
	return c.Status(201).JSON(message)
}

func MarkMessageReadAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Locals("user_id").(string)
	messageID := c.Params("id")

	ok, err := database.IsRecipient(db, messageID, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark message"})
	}
	if !ok {
		return c.Status(403).JSON(fiber.Map{"error": "You don't have permission to access this resource"})
	}

	if err := database.MarkMessageRead(db, messageID, userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark message"})
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}
