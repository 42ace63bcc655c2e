package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata describes the exported model graph.
type Metadata struct {
	InputName  string   `yaml:"input_name"`
	OutputName string   `yaml:"output_name"`
	Features   []string `yaml:"features"` // Column order the model was fitted with
}

// DefaultFeatures is the column order of the crop recommendation dataset.
var DefaultFeatures = []string{
	"Nitrogen",
	"Phosphorus",
	"Potassium",
	"Temperature",
	"Humidity",
	"pH_Value",
	"Rainfall",
}

// DefaultMetadata returns the metadata of a scikit-learn classifier exported
// with skl2onnx.
func DefaultMetadata() *Metadata {
	features := make([]string, len(DefaultFeatures))
	copy(features, DefaultFeatures)
	return &Metadata{
		InputName:  "float_input",
		OutputName: "output_label",
		Features:   features,
	}
}

// LoadMetadata loads the YAML metadata file next to the model.
// Returns the defaults without error if the file doesn't exist.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMetadata(), nil
		}
		return nil, fmt.Errorf("failed to read model metadata: %w", err)
	}

	meta := DefaultMetadata()
	if err := yaml.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("failed to parse model metadata: %w", err)
	}

	if meta.InputName == "" || meta.OutputName == "" {
		return nil, fmt.Errorf("model metadata %s: input_name and output_name are required", path)
	}
	if len(meta.Features) == 0 {
		return nil, fmt.Errorf("model metadata %s: features must not be empty", path)
	}

	seen := make(map[string]bool, len(meta.Features))
	for _, f := range meta.Features {
		if seen[f] {
			return nil, fmt.Errorf("model metadata %s: duplicate feature %q", path, f)
		}
		seen[f] = true
	}

	return meta, nil
}
