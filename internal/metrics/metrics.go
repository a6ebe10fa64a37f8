package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for FieldFlow
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	RowsImportedTotal    prometheus.CounterVec
	TicketsCreatedTotal  prometheus.CounterVec
	LEMsGeneratedTotal   prometheus.Counter
	ImportRunsTotal      prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldflow_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fieldflow_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fieldflow_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		RowsImportedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldflow_rows_imported_total",
				Help: "Normalized line-item rows committed by bulk import, by kind",
			},
			[]string{"kind"},
		),
		TicketsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldflow_tickets_created_total",
				Help: "Ticket headers created, by source (manual or import)",
			},
			[]string{"source"},
		),
		LEMsGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fieldflow_lems_generated_total",
				Help: "LEM billing bundles generated",
			},
		),
		ImportRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldflow_import_runs_total",
				Help: "Bulk import runs by outcome",
			},
			[]string{"outcome"},
		),
	}
}
