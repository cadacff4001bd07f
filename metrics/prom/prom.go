// Package prom provides a Prometheus-backed catalook.MetricsCollector.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hanbitlee/catalook"
	"github.com/hanbitlee/catalook/engine"
)

// Collector implements catalook.MetricsCollector with Prometheus metrics.
type Collector struct {
	loads          prometheus.Counter
	loadRows       prometheus.Counter
	loadMalformed  prometheus.Counter
	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	searchMatches  prometheus.Histogram
	resolves       *prometheus.CounterVec
}

var _ catalook.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. Passing
// prometheus.DefaultRegisterer is the common case.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalook_loads_total",
			Help: "Catalog loads performed.",
		}),
		loadRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalook_load_rows_total",
			Help: "Rows ingested across all catalog loads.",
		}),
		loadMalformed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalook_load_malformed_cells_total",
			Help: "Malformed cells reported across all catalog loads.",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalook_searches_total",
			Help: "Search operations by mode and status.",
		}, []string{"mode", "status"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalook_search_duration_seconds",
			Help:    "Search latency by mode.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"mode"}),
		searchMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalook_search_matches",
			Help:    "Match counts of successful searches.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalook_scan_resolves_total",
			Help: "Scan disambiguations by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.loads,
		c.loadRows,
		c.loadMalformed,
		c.searches,
		c.searchDuration,
		c.searchMatches,
		c.resolves,
	)
	return c
}

// RecordLoad implements catalook.MetricsCollector.
func (c *Collector) RecordLoad(rows, malformed int, _ time.Duration) {
	c.loads.Inc()
	c.loadRows.Add(float64(rows))
	c.loadMalformed.Add(float64(malformed))
}

// RecordSearch implements catalook.MetricsCollector.
func (c *Collector) RecordSearch(mode engine.Mode, matches int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.searches.WithLabelValues(mode.String(), status).Inc()
	c.searchDuration.WithLabelValues(mode.String()).Observe(duration.Seconds())
	if err == nil {
		c.searchMatches.Observe(float64(matches))
	}
}

// RecordResolve implements catalook.MetricsCollector.
func (c *Collector) RecordResolve(_ int, ok bool) {
	outcome := "recognized"
	if !ok {
		outcome = "unrecognized"
	}
	c.resolves.WithLabelValues(outcome).Inc()
}
