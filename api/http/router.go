package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pranathimaddineni/portfolio/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, upload *handlers.UploadHandler, chat *handlers.ChatHandler) {
	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Post("/upload", upload.Upload)
	api.Post("/chat", chat.Chat)
}

// RegisterFallback installs the catch-all JSON 404. Must be registered last.
func RegisterFallback(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})
}
