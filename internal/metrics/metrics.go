// Package metrics exposes Prometheus instrumentation for a run.
//
// Each run owns its own registry so that several apps (in tests, say) never
// collide on collector registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "routecycle"

// Metrics holds the collectors updated during ingestion and search.
type Metrics struct {
	registry *prometheus.Registry

	Lines          prometheus.Counter
	LinesSkipped   prometheus.Counter
	Graphs         prometheus.Gauge
	GraphsSearched prometheus.Counter
	GraphsPruned   prometheus.Counter
	LongestCycle   prometheus.Gauge
	SearchDuration prometheus.Histogram
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Lines: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_total",
			Help:      "Input lines read, blank lines included.",
		}),
		LinesSkipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_skipped_total",
			Help:      "Malformed input lines skipped.",
		}),
		Graphs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graphs",
			Help:      "Graphs currently held in the registry.",
		}),
		GraphsSearched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_searched_total",
			Help:      "Graphs handed to the cycle search.",
		}),
		GraphsPruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_pruned_total",
			Help:      "Graph searches cut short by the length bound.",
		}),
		LongestCycle: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "longest_cycle_length",
			Help:      "Length of the longest cycle found so far.",
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent searching a single graph.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
