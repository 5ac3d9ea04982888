package events

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"campus-connect/app/config"
	"campus-connect/app/metrics"
	"campus-connect/app/models"
	"campus-connect/app/services"
)

// parseEventDate converts the API's YYYY-MM-DD form into local midnight.
func parseEventDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// GetEventsAPI returns all events. Read failures degrade to an empty
// list rather than an error response.
func GetEventsAPI(c *fiber.Ctx) error {
	store := services.NewEventStore(config.GetDB())
	events := store.ListEvents()
	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}

type eventRequest struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	Classroom        string `json:"classroom"`
	RegistrationLink string `json:"registration_link"`
}

// CreateEventAPI creates a new event
func CreateEventAPI(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event title is required"})
	}
	if req.Date == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event date is required"})
	}
	date, err := parseEventDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Please provide a valid date"})
	}
	if req.Type == "" {
		req.Type = string(models.EventAcademic)
	}
	if !models.IsAuthoredEventType(req.Type) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid event type"})
	}

	event := &models.Event{
		Title:            req.Title,
		Date:             date,
		StartTime:        strings.TrimSpace(req.StartTime),
		EndTime:          strings.TrimSpace(req.EndTime),
		Type:             req.Type,
		Description:      req.Description,
		Classroom:        req.Classroom,
		RegistrationLink: req.RegistrationLink,
	}

	store := services.NewEventStore(config.GetDB())
	if _, err := store.CreateEvent(event); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create event",
		})
	}
	metrics.EventsCreated.Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

type eventPatchRequest struct {
	Title            *string `json:"title"`
	Date             *string `json:"date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	Type             *string `json:"type"`
	Description      *string `json:"description"`
	Classroom        *string `json:"classroom"`
	RegistrationLink *string `json:"registration_link"`
}

// UpdateEventAPI merges the supplied fields into an existing event
func UpdateEventAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid event ID"})
	}

	var req eventPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	patch := &models.EventPatch{
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Description:      req.Description,
		Classroom:        req.Classroom,
		RegistrationLink: req.RegistrationLink,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event title is required"})
		}
		patch.Title = &title
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Please provide a valid date"})
		}
		patch.Date = &date
	}
	if req.Type != nil {
		if !models.IsAuthoredEventType(*req.Type) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid event type"})
		}
		patch.Type = req.Type
	}

	store := services.NewEventStore(config.GetDB())
	if err := store.UpdateEvent(id, patch); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update event",
		})
	}
	metrics.EventsUpdated.Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event updated successfully",
	})
}

// DeleteEventAPI deletes an event
func DeleteEventAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid event ID"})
	}

	store := services.NewEventStore(config.GetDB())
	if err := store.DeleteEvent(id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete event",
		})
	}
	metrics.EventsDeleted.Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}

// CleanupEventsAPI removes all events dated before today and reports how
// many were deleted
func CleanupEventsAPI(c *fiber.Ctx) error {
	store := services.NewEventStore(config.GetDB())
	deleted, err := store.CleanupPastEvents()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to clean up past events",
		})
	}
	metrics.EventsCleaned.Add(float64(deleted))

	return c.JSON(fiber.Map{
		"success": true,
		"deleted": deleted,
	})
}
