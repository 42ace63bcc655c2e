package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prediction outcome for a served recommendation. Failures use the error kind.
const OutcomeSuccess = "success"

var (
	modelInfoDesc = prometheus.NewDesc(
		"croprec_model_info",
		"Loaded crop model, labelled by backend and artifact",
		[]string{"backend", "artifact"},
		nil,
	)
)

// ModelCollector is a custom Prometheus collector that reports the loaded
// model on each scrape.
type ModelCollector struct {
	backend  string
	artifact string
}

// Describe sends the metric descriptor to the channel.
func (c *ModelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- modelInfoDesc
}

// Collect emits a constant gauge describing the loaded model.
func (c *ModelCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		modelInfoDesc,
		prometheus.GaugeValue,
		1,
		c.backend,
		c.artifact,
	)
}

// Recorder holds the prediction instruments.
type Recorder struct {
	predictions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors on the given registerer.
// Must be called once at startup; later calls are ignored.
func Init(reg prometheus.Registerer, backend, artifact string) {
	recorderOnce.Do(func() {
		r := &Recorder{
			predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "croprec_predictions_total",
				Help: "Total crop predictions by outcome and crop",
			}, []string{"outcome", "crop"}),
			duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "croprec_prediction_duration_seconds",
				Help:    "Crop prediction latency by outcome",
				Buckets: prometheus.DefBuckets,
			}, []string{"outcome"}),
		}
		reg.MustRegister(r.predictions, r.duration, &ModelCollector{backend: backend, artifact: artifact})
		recorder = r
	})
}

// RecordPrediction records a prediction outcome. It is a no-op before Init.
func RecordPrediction(outcome, crop string, elapsed time.Duration) {
	if recorder == nil {
		return
	}
	recorder.predictions.WithLabelValues(outcome, crop).Inc()
	recorder.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
