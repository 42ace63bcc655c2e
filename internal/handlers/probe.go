package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"croprec/internal/crop"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	service *crop.Service
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(service *crop.Service) *ProbeHandler {
	return &ProbeHandler{service: service}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the model can serve predictions.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.service.Ready(c.Context()); err != nil {
		slog.Warn("readiness check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "model unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
