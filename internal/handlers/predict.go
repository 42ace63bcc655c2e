package handlers

import (
	"github.com/gofiber/fiber/v3"

	"croprec/internal/config"
	"croprec/internal/crop"
)

// PredictHandler serves the measurement form and its predictions.
type PredictHandler struct {
	service *crop.Service
	cfg     *config.Config
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(service *crop.Service, cfg *config.Config) *PredictHandler {
	return &PredictHandler{service: service, cfg: cfg}
}

// Index renders the measurement form.
func (h *PredictHandler) Index(c fiber.Ctx) error {
	return c.Render("index", page(h.cfg, "Recommend a crop", fiber.Map{
		"Fields": FormFields(),
	}))
}

// Predict runs a prediction on the submitted form and renders the result.
// Any failure is returned as a JSON error payload.
func (h *PredictHandler) Predict(c fiber.Ctx) error {
	raw := formFeatures(c)

	name, err := h.service.Predict(c.Context(), raw)
	if err != nil {
		return predictionError(c, err)
	}

	return c.Render("result", page(h.cfg, "Recommendation", fiber.Map{
		"Prediction": name,
		"Features":   raw,
	}))
}

// formFeatures collects submitted fields. Only the first value of a repeated
// field is kept.
func formFeatures(c fiber.Ctx) crop.RawFeatureSet {
	raw := crop.RawFeatureSet{}

	if form, err := c.MultipartForm(); err == nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}
		return raw
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if _, seen := raw[k]; !seen {
			raw[k] = string(value)
		}
	})
	return raw
}
