package handlers

import (
	"github.com/gofiber/fiber/v3"

	"croprec/internal/config"
	"croprec/internal/crop"
)

// PredictionFailedMessage is the error shown for every failed prediction.
const PredictionFailedMessage = "An error occurred during prediction."

// FormField describes one input of the measurement form.
type FormField struct {
	Name  string
	Label string
	Unit  string
}

var fieldLabels = map[string]FormField{
	crop.FieldTemperature: {Label: "Temperature", Unit: "°C"},
	crop.FieldHumidity:    {Label: "Humidity", Unit: "%"},
	crop.FieldPH:          {Label: "pH"},
	crop.FieldNitrogen:    {Label: "Nitrogen", Unit: "kg/ha"},
	crop.FieldPhosphorus:  {Label: "Phosphorus", Unit: "kg/ha"},
	crop.FieldPotassium:   {Label: "Potassium", Unit: "kg/ha"},
	crop.FieldRainfall:    {Label: "Rainfall", Unit: "mm"},
}

// FormFields returns the measurement form inputs in display order.
func FormFields() []FormField {
	names := crop.FeatureNames()
	fields := make([]FormField, 0, len(names))
	for _, name := range names {
		f := fieldLabels[name]
		f.Name = name
		if f.Label == "" {
			f.Label = name
		}
		fields = append(fields, f)
	}
	return fields
}

// predictionError returns the uniform JSON error payload.
// Uses 200 status; failures are reported in the body, not the status code.
func predictionError(c fiber.Ctx, err error) error {
	return c.JSON(fiber.Map{
		"error":   PredictionFailedMessage,
		"details": err.Error(),
	})
}

// page builds the template data for a crop page, adding the site branding
// the layout renders.
func page(cfg *config.Config, title string, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
