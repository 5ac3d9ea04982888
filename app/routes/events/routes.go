package events

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/app/routes/auth"
)

// SetupEventsRoutes sets up the events API. Reads require a session;
// every mutating route additionally requires the admin role.
func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEventsAPI)
	api.Post("/", auth.AdminOnly, CreateEventAPI)
	api.Put("/:id", auth.AdminOnly, UpdateEventAPI)
	api.Delete("/:id", auth.AdminOnly, DeleteEventAPI)
	api.Post("/cleanup", auth.AdminOnly, CleanupEventsAPI)
}
