package events

import (
	"strconv"
	"time"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
	"stmarys-portal/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetUpcomingEventsAPI(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := database.GetUpcomingEvents(config.GetDB(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	return c.JSON(events)
}

func GetAllEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetAllEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	return c.JSON(events)
}

func GetEventAPI(c *fiber.Ctx) error {
	event, err := database.GetEventByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
	}
	return c.JSON(event)
}

type eventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Location    string  `json:"location"`
	TermID      *string `json:"term_id"`
	IsPublished bool    `json:"is_published"`
}

func (r *eventRequest) apply(e *models.Event) error {
	if err := validation.Var(r.Title, "required,min=1,max=200"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Title is required")
	}

	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid start date")
	}
	end := start
	if r.EndDate != "" {
		end, err = time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid end date")
		}
	}
	if end.Before(start) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must not be before start date")
	}

	e.Title = r.Title
	e.Description = r.Description
	e.StartDate = start
	e.EndDate = end
	e.Location = r.Location
	e.TermID = r.TermID
	e.IsPublished = r.IsPublished
	return nil
}

func CreateEventAPI(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	var event models.Event
	if err := req.apply(&event); err != nil {
		return err
	}
	if err := database.CreateEvent(config.GetDB(), &event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event"})
	}
	return c.Status(201).JSON(event)
}

func UpdateEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	event, err := database.GetEventByID(db, c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
	}

	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.apply(event); err != nil {
		return err
	}
	if err := database.UpdateEvent(db, event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update event"})
	}
	return c.JSON(event)
}

func DeleteEventAPI(c *fiber.Ctx) error {
	if err := database.DeleteEvent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}
