// Package crop maps agronomic measurements to a recommended crop using a
// pre-trained classifier.
package crop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"croprec/internal/metrics"
)

// Classifier is the trained model. Predict receives one row keyed by model
// column name and returns the predicted class index.
type Classifier interface {
	Predict(ctx context.Context, row map[string]float64) (int, error)
}

// Pinger is implemented by classifiers that can report their availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service resolves crop recommendations. It is safe for concurrent use as
// long as the classifier is.
type Service struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewService creates a prediction service around a loaded classifier.
func NewService(classifier Classifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{classifier: classifier, logger: logger}
}

// Predict renames the raw measurements, runs the classifier and resolves the
// predicted label. Failures are returned as *PredictionError.
func (s *Service) Predict(ctx context.Context, raw RawFeatureSet) (CropName, error) {
	rec, err := s.Recommend(ctx, raw)
	if err != nil {
		return "", err
	}
	return rec.Name, nil
}

// Recommend is Predict returning the label alongside the crop name.
func (s *Service) Recommend(ctx context.Context, raw RawFeatureSet) (Crop, error) {
	id := uuid.New()
	start := time.Now()

	s.logger.Debug("received input data", "prediction_id", id, "features", raw)

	rec, err := s.recommend(ctx, id, raw)
	if err != nil {
		kind := KindOf(err)
		metrics.RecordPrediction(string(kind), "", time.Since(start))
		s.logger.Error("prediction failed", "prediction_id", id, "kind", kind, "error", err)
		return Crop{}, err
	}

	metrics.RecordPrediction(metrics.OutcomeSuccess, string(rec.Name), time.Since(start))
	s.logger.Info("prediction served", "prediction_id", id, "crop", rec.Name, "duration", time.Since(start))
	return rec, nil
}

func (s *Service) recommend(ctx context.Context, id uuid.UUID, raw RawFeatureSet) (Crop, error) {
	features := Rename(raw)
	s.logger.Debug("renamed features", "prediction_id", id, "features", features)

	row, err := features.Parse()
	if err != nil {
		return Crop{}, &PredictionError{Kind: KindInput, Err: err}
	}

	label, err := s.classifier.Predict(ctx, row)
	if err != nil {
		return Crop{}, &PredictionError{Kind: KindModel, Err: fmt.Errorf("model prediction failed: %w", err)}
	}

	name, err := Lookup(CropLabel(label))
	if err != nil {
		return Crop{}, &PredictionError{Kind: KindLabel, Err: err}
	}
	return Crop{Label: CropLabel(label), Name: name}, nil
}

// Ready reports whether the classifier can serve predictions.
func (s *Service) Ready(ctx context.Context) error {
	if p, ok := s.classifier.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
