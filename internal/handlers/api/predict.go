package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"croprec/internal/crop"
)

// PredictHandler serves predictions via JSON API.
type PredictHandler struct {
	service *crop.Service
}

// NewPredictHandler creates a new API predict handler.
func NewPredictHandler(service *crop.Service) *PredictHandler {
	return &PredictHandler{service: service}
}

// PredictResponse is the payload of a successful prediction.
type PredictResponse struct {
	Crop  crop.CropName  `json:"crop"`
	Label crop.CropLabel `json:"label"`
}

// Predict accepts a JSON object of measurements keyed by form field name.
// Values may be numbers or numeric strings.
func (h *PredictHandler) Predict(c fiber.Ctx) error {
	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	raw, err := toRawFeatures(body)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.service.Recommend(c.Context(), raw)
	if err != nil {
		return jsonPredictionError(c, err)
	}

	return jsonSuccess(c, PredictResponse{Crop: rec.Name, Label: rec.Label})
}

// Crops lists every crop the model can recommend.
func (h *PredictHandler) Crops(c fiber.Ctx) error {
	return jsonSuccess(c, crop.Crops())
}

func toRawFeatures(body map[string]any) (crop.RawFeatureSet, error) {
	raw := make(crop.RawFeatureSet, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case float64:
			raw[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			raw[key] = v
		default:
			return nil, fmt.Errorf("field %q must be a number or a numeric string", key)
		}
	}
	return raw, nil
}
