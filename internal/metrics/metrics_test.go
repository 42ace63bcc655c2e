package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordPrediction_BeforeInitIsNoop(t *testing.T) {
	if recorder != nil {
		t.Skip("recorder already initialized by another test")
	}
	RecordPrediction(OutcomeSuccess, "Rice", time.Millisecond)
	if recorder != nil {
		t.Error("RecordPrediction created a recorder without Init")
	}
}

func TestInitAndRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(reg, "onnx", "crop_recommendation_model.onnx")

	RecordPrediction(OutcomeSuccess, "Rice", 5*time.Millisecond)
	RecordPrediction(OutcomeSuccess, "Rice", 5*time.Millisecond)
	RecordPrediction("model", "", time.Millisecond)

	if got := testutil.ToFloat64(recorder.predictions.WithLabelValues(OutcomeSuccess, "Rice")); got != 2 {
		t.Errorf("success/Rice count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(recorder.predictions.WithLabelValues("model", "")); got != 1 {
		t.Errorf("model failure count = %v, want 1", got)
	}

	// The model info gauge is collected on the registry it was registered with.
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "croprec_model_info" {
			found = true
			if len(mf.GetMetric()) != 1 || mf.GetMetric()[0].GetGauge().GetValue() != 1 {
				t.Errorf("croprec_model_info = %v, want a single gauge of 1", mf.GetMetric())
			}
		}
	}
	if !found {
		t.Error("croprec_model_info not gathered")
	}

	// A second Init must not panic on duplicate registration.
	Init(reg, "remote", "other")
}
