// Package model loads the trained crop classifier behind a small interface.
package model

import (
	"context"
	"fmt"
	"os"

	"croprec/internal/config"
)

// Classifier is a loaded model backend.
type Classifier interface {
	Predict(ctx context.Context, row map[string]float64) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// CheckArtifact fails with ErrModelNotFound when the model file is absent.
func CheckArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: model file '%s' not found, please ensure the model is located correctly", ErrModelNotFound, path)
		}
		return fmt.Errorf("failed to stat model file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: '%s' is a directory", ErrModelNotFound, path)
	}
	return nil
}

// Load builds the configured backend. The model is loaded once; callers own
// the returned classifier and must Close it on shutdown.
//
// The onnx backend fails with ErrModelNotFound when the artifact file is
// absent. The remote backend has no local file; for it ErrModelNotFound means
// the model server failed its health check.
func Load(ctx context.Context, cfg *config.Config) (Classifier, error) {
	switch cfg.ModelBackend {
	case config.BackendONNX:
		path := cfg.ModelPath()
		if err := CheckArtifact(path); err != nil {
			return nil, err
		}

		metadata, err := LoadMetadata(cfg.MetadataPath())
		if err != nil {
			return nil, err
		}

		return NewONNXClassifier(path, metadata, cfg.ONNXRuntimeLib)

	case config.BackendRemote:
		remote := NewRemoteClassifier(cfg.ModelServiceURL, cfg.ModelServiceTimeout)
		if err := remote.Ping(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelNotFound, err)
		}
		return remote, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.ModelBackend)
	}
}

// Artifact names the loaded model for logs and metrics.
func Artifact(cfg *config.Config) string {
	if cfg.IsRemoteModel() {
		return cfg.ModelServiceURL
	}
	return cfg.ModelPath()
}
