package crop

import (
	"fmt"
	"strconv"
	"strings"
)

// RawFeatureSet holds measurements keyed by form field name.
type RawFeatureSet map[string]string

// ModelFeatureSet holds the same measurements keyed by model column name.
type ModelFeatureSet map[string]string

// Form field names in the order the form presents them.
const (
	FieldTemperature = "temperature"
	FieldHumidity    = "humidity"
	FieldPH          = "ph"
	FieldNitrogen    = "nitrogen"
	FieldPhosphorus  = "phosphorus"
	FieldPotassium   = "potassium"
	FieldRainfall    = "rainfall"
)

var fieldOrder = []string{
	FieldTemperature,
	FieldHumidity,
	FieldPH,
	FieldNitrogen,
	FieldPhosphorus,
	FieldPotassium,
	FieldRainfall,
}

var renameMapping = map[string]string{
	FieldTemperature: "Temperature",
	FieldHumidity:    "Humidity",
	FieldPH:          "pH_Value",
	FieldNitrogen:    "Nitrogen",
	FieldPhosphorus:  "Phosphorus",
	FieldPotassium:   "Potassium",
	FieldRainfall:    "Rainfall",
}

// FeatureNames returns the recognized form field names.
func FeatureNames() []string {
	names := make([]string, len(fieldOrder))
	copy(names, fieldOrder)
	return names
}

// ModelFeatureName returns the model column name for a form field.
func ModelFeatureName(field string) (string, bool) {
	name, ok := renameMapping[field]
	return name, ok
}

// Rename maps form field names to model column names.
// Keys outside the mapping are kept verbatim. When a raw key already carries
// a model column name and the mapped field is present too, the mapped field wins.
func Rename(raw RawFeatureSet) ModelFeatureSet {
	out := make(ModelFeatureSet, len(raw))
	for key, value := range raw {
		if _, mapped := renameMapping[key]; mapped {
			continue
		}
		out[key] = value
	}
	for key, value := range raw {
		if name, ok := renameMapping[key]; ok {
			out[name] = value
		}
	}
	return out
}

// Parse converts every value into a float64.
func (f ModelFeatureSet) Parse() (map[string]float64, error) {
	row := make(map[string]float64, len(f))
	for key, value := range f {
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		row[key] = v
	}
	return row, nil
}
