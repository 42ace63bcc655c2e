package api

import (
	"github.com/gofiber/fiber/v3"

	"croprec/internal/crop"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonPredictionError maps a failed prediction to an error envelope. Input
// failures are the caller's fault; everything else is ours.
func jsonPredictionError(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if crop.KindOf(err) == crop.KindInput {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"error":   "prediction failed",
		"kind":    crop.KindOf(err),
		"details": err.Error(),
	})
}
