package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pranathimaddineni/portfolio/pkg/health"
)

// HealthHandler serves the liveness probe the UI polls before enabling upload.
type HealthHandler struct{ svc *health.Service }

func NewHealthHandler(svc *health.Service) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check with provider-credential status.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"message":   "Server is running",
		"hasApiKey": h.svc.Ready(ctx) == nil,
	})
}
