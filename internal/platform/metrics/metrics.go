package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsStarted   prometheus.Counter
	RegistrationsCompleted prometheus.Counter
	ValidationFailures     *prometheus.CounterVec
	RequestDuration        *prometheus.HistogramVec
	ScrapeDuration         prometheus.Histogram
	SchemaFieldsExtracted  prometheus.Gauge
	LocationLookups        *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udyam_registrations_started_total",
			Help: "Step 1 registrations persisted.",
		}),
		RegistrationsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udyam_registrations_completed_total",
			Help: "Step 2 registrations persisted (workflow complete).",
		}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udyam_validation_failures_total",
			Help: "Field validation failures at step submission.",
		}, []string{"field"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "udyam_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ScrapeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "udyam_schema_scrape_duration_seconds",
			Help:    "Duration of one extraction run against the portal.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		SchemaFieldsExtracted: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "udyam_schema_fields_extracted",
			Help: "Fields in the most recently published schema.",
		}),
		LocationLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udyam_location_lookups_total",
			Help: "PIN-code lookups by outcome (hit, fetched, miss, error).",
		}, []string{"outcome"}),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, method string, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveValidationFailures bumps the failure counter for each offending field.
func (m *Metrics) ObserveValidationFailures(fields map[string]string) {
	for field := range fields {
		m.ValidationFailures.WithLabelValues(field).Inc()
	}
}
