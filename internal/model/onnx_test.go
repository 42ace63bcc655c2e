package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"croprec/internal/config"
)

// testdata/argmax.onnx returns the 1-based index of the largest column, so a
// row's label is known without a trained estimator.
func newTestONNXClassifier(t *testing.T) *ONNXClassifier {
	t.Helper()
	lib := os.Getenv("ONNXRUNTIME_LIB")
	if lib == "" {
		t.Skip("ONNXRUNTIME_LIB not set")
	}

	c, err := NewONNXClassifier(filepath.Join("testdata", "argmax.onnx"), DefaultMetadata(), lib)
	if err != nil {
		t.Fatalf("NewONNXClassifier() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func testRow(overrides map[string]float64) map[string]float64 {
	r := map[string]float64{
		"Nitrogen": 1, "Phosphorus": 1, "Potassium": 1, "Temperature": 1,
		"Humidity": 1, "pH_Value": 1, "Rainfall": 1,
	}
	for k, v := range overrides {
		r[k] = v
	}
	return r
}

func TestONNXClassifier_Predict(t *testing.T) {
	c := newTestONNXClassifier(t)

	tests := []struct {
		name string
		row  map[string]float64
		want int
	}{
		{"nitrogen column", testRow(map[string]float64{"Nitrogen": 90}), 1},
		{"humidity column", testRow(map[string]float64{"Humidity": 80}), 5},
		{"rainfall column", testRow(map[string]float64{"Rainfall": 200, "Humidity": 80}), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Predict(context.Background(), tt.row)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestONNXClassifier_ColumnErrors(t *testing.T) {
	c := newTestONNXClassifier(t)

	missing := testRow(nil)
	delete(missing, "pH_Value")
	if _, err := c.Predict(context.Background(), missing); !errors.Is(err, ErrMissingFeature) {
		t.Errorf("Predict(missing) error = %v, want ErrMissingFeature", err)
	}

	if _, err := c.Predict(context.Background(), testRow(map[string]float64{"Soil": 3})); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("Predict(unknown) error = %v, want ErrUnknownFeature", err)
	}
}

func TestONNXClassifier_CanceledContext(t *testing.T) {
	c := newTestONNXClassifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Predict(ctx, testRow(nil)); !errors.Is(err, context.Canceled) {
		t.Errorf("Predict() error = %v, want context.Canceled", err)
	}
}

func TestONNXClassifier_PingAfterClose(t *testing.T) {
	c := newTestONNXClassifier(t)

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Ping(context.Background()); !errors.Is(err, ErrModelNotFound) {
		t.Errorf("Ping() after Close error = %v, want ErrModelNotFound", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestLoad_ONNX(t *testing.T) {
	lib := os.Getenv("ONNXRUNTIME_LIB")
	if lib == "" {
		t.Skip("ONNXRUNTIME_LIB not set")
	}

	dir := t.TempDir()
	fixture, err := os.ReadFile(filepath.Join("testdata", "argmax.onnx"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "crop_recommendation_model.onnx"), fixture, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(context.Background(), &config.Config{
		ModelBackend:      config.BackendONNX,
		ModelDir:          dir,
		ModelFile:         "crop_recommendation_model.onnx",
		ModelMetadataFile: "crop_recommendation_model.yaml",
		ONNXRuntimeLib:    lib,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer c.Close()

	got, err := c.Predict(context.Background(), testRow(map[string]float64{"Potassium": 40}))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 3 {
		t.Errorf("Predict() = %d, want 3", got)
	}
}
