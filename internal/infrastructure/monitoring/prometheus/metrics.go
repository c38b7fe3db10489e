// Package prometheus registers and exposes the engine's operational metrics.
// A Metrics bundle is constructed once at startup and injected into the
// application services; handlers expose the backing registry on /metrics.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultDurationBuckets covers the expected latency range of in-memory
// analysis operations, from sub-millisecond scans to multi-second all-pairs
// comparisons over large corpora.
var DefaultDurationBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Metrics holds every metric the engine emits.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP layer.
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Analysis operations.
	SearchesTotal       prometheus.Counter
	SearchDuration      prometheus.Histogram
	SearchResultCount   prometheus.Histogram
	ComparisonsTotal    prometheus.Counter
	ComparisonDuration  prometheus.Histogram
	ExtractionsTotal    prometheus.Counter
	ExtractionDuration  prometheus.Histogram
	ArgumentsExtracted  prometheus.Counter

	// State.
	DocumentsStored prometheus.Gauge
	ConceptsTotal   prometheus.Gauge
	RegistryEdits   *prometheus.CounterVec

	// Failures, labelled by error code.
	ErrorsTotal *prometheus.CounterVec
}

// NewMetrics constructs a Metrics bundle backed by its own registry so tests
// can create bundles independently without duplicate-registration panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "arbilens",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration.",
			Buckets:   DefaultDurationBuckets,
		}, []string{"method", "path"}),

		SearchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "searches_total",
			Help:      "Total concept-expanded searches executed.",
		}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbilens",
			Name:      "search_duration_seconds",
			Help:      "Search execution time.",
			Buckets:   DefaultDurationBuckets,
		}),
		SearchResultCount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbilens",
			Name:      "search_result_count",
			Help:      "Number of results returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		ComparisonsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "comparisons_total",
			Help:      "Total document-pair comparisons executed.",
		}),
		ComparisonDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbilens",
			Name:      "comparison_duration_seconds",
			Help:      "All-pairs comparison execution time.",
			Buckets:   DefaultDurationBuckets,
		}),
		ExtractionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "argument_extractions_total",
			Help:      "Total argument-mining runs.",
		}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbilens",
			Name:      "argument_extraction_duration_seconds",
			Help:      "Argument-mining execution time.",
			Buckets:   DefaultDurationBuckets,
		}),
		ArgumentsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "arguments_extracted_total",
			Help:      "Total candidate arguments produced by the miner.",
		}),

		DocumentsStored: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "arbilens",
			Name:      "documents_stored",
			Help:      "Documents currently held in the in-memory store.",
		}),
		ConceptsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "arbilens",
			Name:      "concepts_registered",
			Help:      "Concepts currently held in the registry.",
		}),
		RegistryEdits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "concept_registry_edits_total",
			Help:      "Registry mutations by operation and outcome.",
		}, []string{"op", "outcome"}),

		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbilens",
			Name:      "errors_total",
			Help:      "Errors surfaced to callers, labelled by error code.",
		}, []string{"code"}),
	}
}

// Handler returns an http.Handler that serves the bundle's registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the backing registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one completed HTTP request.
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
