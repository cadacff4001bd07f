package catalook

import (
	"sync/atomic"
	"time"

	"github.com/hanbitlee/catalook/engine"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement it to integrate with monitoring systems; the metrics/prom
// subpackage provides a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordLoad is called after each catalog load. rows is the ingested
	// row count, malformed the number of reported bad cells.
	RecordLoad(rows, malformed int, duration time.Duration)

	// RecordSearch is called after each search operation, including ones
	// rejected by validation (err != nil, matches 0).
	RecordSearch(mode engine.Mode, matches int, duration time.Duration, err error)

	// RecordResolve is called after each scan disambiguation. ok is false
	// when no barcode was recognized.
	RecordResolve(candidates int, ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration)                  {}
func (NoopMetricsCollector) RecordSearch(engine.Mode, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordResolve(int, bool)                             {}

// BasicMetricsCollector provides simple in-memory metrics collection, useful
// for debugging without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadRows         atomic.Int64
	LoadMalformed    atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchMatches    atomic.Int64
	SearchTotalNanos atomic.Int64
	ResolveCount     atomic.Int64
	ResolveMisses    atomic.Int64
}

func (m *BasicMetricsCollector) RecordLoad(rows, malformed int, _ time.Duration) {
	m.LoadCount.Add(1)
	m.LoadRows.Add(int64(rows))
	m.LoadMalformed.Add(int64(malformed))
}

func (m *BasicMetricsCollector) RecordSearch(_ engine.Mode, matches int, duration time.Duration, err error) {
	m.SearchCount.Add(1)
	m.SearchTotalNanos.Add(int64(duration))
	if err != nil {
		m.SearchErrors.Add(1)
		return
	}
	m.SearchMatches.Add(int64(matches))
}

func (m *BasicMetricsCollector) RecordResolve(_ int, ok bool) {
	m.ResolveCount.Add(1)
	if !ok {
		m.ResolveMisses.Add(1)
	}
}
