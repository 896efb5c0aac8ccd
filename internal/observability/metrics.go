package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one generator run.
// The CLI is single-shot, so nothing serves these over HTTP; they feed the
// end-of-run summary and give the tests something concrete to assert on.
type Metrics struct {
	StudiesConsidered prometheus.Counter
	StudiesAttempted  prometheus.Counter
	StudiesSucceeded  prometheus.Counter
	SourceErrors      prometheus.Counter

	RecordsRetained prometheus.Counter
	RecordsDropped  prometheus.Counter
	MarkersBuilt    *prometheus.CounterVec // label: taxon
	DemoFallback    prometheus.Gauge

	FetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all generator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		StudiesConsidered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "studies_considered_total",
			Help:      "Studies returned by the Movebank listing after filtering.",
		}),
		StudiesAttempted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "studies_attempted_total",
			Help:      "Studies actually queried for event records.",
		}),
		StudiesSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "studies_succeeded_total",
			Help:      "Studies that yielded at least one valid record.",
		}),
		SourceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "source_errors_total",
			Help:      "Failed Movebank requests (transport, status, or decode).",
		}),
		RecordsRetained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "records_retained_total",
			Help:      "Valid event records kept for rendering.",
		}),
		RecordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "records_dropped_total",
			Help:      "Event records dropped for missing or out-of-range coordinates.",
		}),
		MarkersBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trackmap",
			Name:      "markers_built_total",
			Help:      "Markers rendered, by taxon.",
		}, []string{"taxon"}),
		DemoFallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trackmap",
			Name:      "demo_fallback",
			Help:      "1 when the built-in demonstration dataset was used.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trackmap",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a single Movebank request.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
	}

	prometheus.MustRegister(
		m.StudiesConsidered,
		m.StudiesAttempted,
		m.StudiesSucceeded,
		m.SourceErrors,
		m.RecordsRetained,
		m.RecordsDropped,
		m.MarkersBuilt,
		m.DemoFallback,
		m.FetchDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		StudiesConsidered: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "studies_considered_total"}),
		StudiesAttempted:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "studies_attempted_total"}),
		StudiesSucceeded:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "studies_succeeded_total"}),
		SourceErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "source_errors_total"}),
		RecordsRetained:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "records_retained_total"}),
		RecordsDropped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trackmap", Name: "records_dropped_total"}),
		MarkersBuilt:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "trackmap", Name: "markers_built_total"}, []string{"taxon"}),
		DemoFallback:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "trackmap", Name: "demo_fallback"}),
		FetchDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "trackmap", Name: "fetch_duration_seconds"}),
	}
}
