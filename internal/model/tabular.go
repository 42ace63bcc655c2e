package model

import (
	"fmt"
	"sort"
	"strings"
)

// Columns lays out a row in the column order the model was fitted with.
// Every fitted column must be present and no other column is accepted.
func Columns(row map[string]float64, features []string) ([]float32, error) {
	known := make(map[string]bool, len(features))
	var missing []string
	values := make([]float32, len(features))

	for i, name := range features {
		known[name] = true
		v, ok := row[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		values[i] = float32(v)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: columns are missing: %s", ErrMissingFeature, strings.Join(missing, ", "))
	}

	var unknown []string
	for name := range row {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: feature names unseen at fit time: %s", ErrUnknownFeature, strings.Join(unknown, ", "))
	}

	return values, nil
}
