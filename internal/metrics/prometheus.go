package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

const namespace = "predictor"

type Metrics struct {
	registry *prometheus.Registry

	predictionsTotal *prometheus.CounterVec
	predictionErrors *prometheus.CounterVec
	predictLatency   prometheus.Histogram
	confidence       prometheus.Histogram
	artifactsLoaded  prometheus.Gauge
	httpRequests     *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Get returns the process-wide metrics set.
func Get() *Metrics {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New builds an isolated metrics set on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		predictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions served, by predicted label.",
		}, []string{"label"}),
		predictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      "Prediction requests that did not produce a result, by reason.",
		}, []string{"reason"}),
		predictLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent scaling and classifying one vector.",
			Buckets:   prometheus.ExponentialBuckets(0.000005, 4, 8),
		}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_confidence",
			Help:      "Probability assigned to the predicted label.",
			Buckets:   prometheus.LinearBuckets(0.5, 0.05, 10),
		}),
		artifactsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "artifacts_loaded",
			Help:      "1 when scaler and classifier loaded at startup, 0 otherwise.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "method", "status"}),
	}

	reg.MustRegister(
		m.predictionsTotal,
		m.predictionErrors,
		m.predictLatency,
		m.confidence,
		m.artifactsLoaded,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObservePrediction(result models.PredictionResult, elapsed time.Duration) {
	m.predictionsTotal.WithLabelValues(result.Label.String()).Inc()
	m.predictLatency.Observe(elapsed.Seconds())
	m.confidence.Observe(result.Confidence)
}

func (m *Metrics) IncPredictionErrors(reason string) {
	m.predictionErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) SetArtifactsLoaded(loaded bool) {
	if loaded {
		m.artifactsLoaded.Set(1)
		return
	}
	m.artifactsLoaded.Set(0)
}

func (m *Metrics) IncHTTPRequest(route, method string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
