// Package catalook provides an embedded, in-memory product catalog lookup
// engine.
//
// A Session owns exactly one searchable catalog index, one bounded history
// ledger, and the last match result. The catalog is rebuilt wholesale from
// raw tabular rows on every Load and swapped in atomically: in-flight
// searches see either the old index in full or the new one in full, never a
// mix. There is no persistent storage; everything lives in memory for the
// lifetime of the Session.
//
// Queries come in two modes with a shared two-tier match policy (exact
// first, substring fallback), optionally narrowed by categorical/range
// filters and reordered by a stable sort key. Noisy scanner output is
// reduced to one canonical barcode by the scan package and fed back in as an
// ordinary barcode query.
//
// # Quick start
//
//	s := catalook.New()
//
//	rows, _ := loader.ReadCSV(file)
//	report, err := s.Load(ctx, rows)
//	if err != nil {
//	    return err
//	}
//
//	res, err := s.Search(ctx, catalook.Query{
//	    Mode: engine.ModeBarcode,
//	    Text: "8801-2345-67890",
//	})
//
// Validation failures (bad barcode characters, too-short name queries) are
// typed recoverable results, never panics; see the engine package for the
// error taxonomy.
package catalook

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hanbitlee/catalook/catalog"
	"github.com/hanbitlee/catalook/engine"
	"github.com/hanbitlee/catalook/history"
	"github.com/hanbitlee/catalook/scan"
)

// Query is one lookup request.
type Query struct {
	// Mode selects the derived key to match against.
	Mode engine.Mode
	// Text is the raw query text; it is normalized internally.
	Text string
	// Filters optionally narrow the search before matching.
	Filters *engine.Filters
	// Sort optionally reorders the result after matching.
	Sort engine.SortKey
	// Origin is a free-text source tag recorded on the history entry
	// (e.g. "camera", "live"). Empty for manual queries.
	Origin string
}

// Session is the explicit context object for one lookup session. It replaces
// ambient globals: create one, Load a catalog into it, query it, and let it
// go. Searches may run concurrently; Load swaps a freshly built immutable
// index through a single atomic reference.
type Session struct {
	index   atomic.Pointer[catalog.Index]
	last    atomic.Pointer[engine.Result]
	ledger  *history.Ledger
	recent  *scan.RecentBuffer
	schema  catalog.Schema
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Session. Queries before the first successful Load
// fail with ErrNoCatalogLoaded.
func New(optFns ...Option) *Session {
	opts := applyOptions(optFns)

	return &Session{
		ledger:  history.New(opts.historyCapacity),
		recent:  scan.NewRecentBuffer(opts.recentCapacity),
		schema:  catalog.NewSchema(opts.synonyms),
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// Load builds a new index from raw rows and swaps it in atomically,
// replacing any previous catalog wholesale. Malformed cells are reported,
// not fatal; Load fails only on structural misuse, never on row content.
func (s *Session) Load(ctx context.Context, rows []catalog.Row) (*catalog.BuildReport, error) {
	start := time.Now()

	idx, report := catalog.Build(rows, func(o *catalog.BuildOptions) {
		o.Schema = s.schema
	})
	s.index.Store(idx)

	duration := time.Since(start)
	s.metrics.RecordLoad(report.Rows, len(report.Malformed), duration)
	s.logger.LogLoad(ctx, report.Rows, len(report.Malformed))
	return report, nil
}

// Loaded reports whether a catalog has been loaded.
func (s *Session) Loaded() bool {
	return s.index.Load() != nil
}

// Search executes q against the current index and records a history entry.
//
// Validation failures execute no search and record no entry. A query that
// validates but matches nothing is a success with an empty result. The
// result also becomes LastResult.
func (s *Session) Search(ctx context.Context, q Query) (engine.Result, error) {
	start := time.Now()

	idx := s.index.Load()
	if idx == nil {
		s.logger.LogSearch(ctx, q.Mode, 0, ErrNoCatalogLoaded)
		return engine.Result{}, ErrNoCatalogLoaded
	}

	withOpts := func(o *engine.SearchOptions) {
		o.Filters = q.Filters
		o.Sort = q.Sort
	}

	var (
		res engine.Result
		err error
	)
	switch q.Mode {
	case engine.ModeBarcode:
		res, err = engine.SearchByBarcode(idx, q.Text, withOpts)
	case engine.ModeName:
		res, err = engine.SearchByName(idx, q.Text, withOpts)
	default:
		err = ErrUnknownMode
	}

	duration := time.Since(start)
	s.metrics.RecordSearch(q.Mode, res.Len(), duration, err)
	s.logger.LogSearch(ctx, q.Mode, res.Len(), err)
	if err != nil {
		return engine.Result{}, err
	}

	s.ledger.Record(history.Entry{
		Time:               time.Now(),
		Mode:               q.Mode,
		RawQuery:           q.Text,
		Origin:             q.Origin,
		MatchCount:         res.Len(),
		RepresentativeName: representativeName(res),
	})
	s.last.Store(&res)

	return res, nil
}

// List returns every record of the current catalog in build order,
// optionally filtered and sorted. It records no history entry.
func (s *Session) List(optFns ...func(o *engine.SearchOptions)) (engine.Result, error) {
	idx := s.index.Load()
	if idx == nil {
		return engine.Result{}, ErrNoCatalogLoaded
	}
	return engine.List(idx, optFns...), nil
}

// ResolveScan reduces one capture event's raw candidates to a canonical
// barcode and remembers it in the recent-scan buffer. ok is false when no
// barcode was recognized.
func (s *Session) ResolveScan(ctx context.Context, candidates []string) (string, bool) {
	barcode, ok := scan.Resolve(candidates)
	if ok {
		s.recent.Push(barcode)
	}
	s.metrics.RecordResolve(len(candidates), ok)
	s.logger.LogResolve(ctx, len(candidates), barcode, ok)
	return barcode, ok
}

// SearchScan resolves candidates and, when a barcode is recognized, issues a
// barcode search for it tagged with origin. ok is false when no barcode was
// recognized; no search is executed and no history entry is recorded.
func (s *Session) SearchScan(ctx context.Context, candidates []string, origin string) (res engine.Result, barcode string, ok bool, err error) {
	barcode, ok = s.ResolveScan(ctx, candidates)
	if !ok {
		return engine.Result{}, "", false, nil
	}

	res, err = s.Search(ctx, Query{
		Mode:   engine.ModeBarcode,
		Text:   barcode,
		Origin: origin,
	})
	if err != nil {
		return engine.Result{}, barcode, true, err
	}
	return res, barcode, true, nil
}

// RecentScans returns the most recent distinct resolved barcodes, newest
// first.
func (s *Session) RecentScans() []string {
	return s.recent.Values()
}

// History returns the recorded queries, newest first.
func (s *Session) History() []history.Entry {
	return s.ledger.List()
}

// ClearHistory empties the ledger.
func (s *Session) ClearHistory() {
	s.ledger.Clear()
}

// Repeat re-issues the original (mode, raw text) of history entry n
// (0 = newest) through the engine, producing a new history entry. Entries
// are never edited in place.
func (s *Session) Repeat(ctx context.Context, n int) (engine.Result, error) {
	e, ok := s.ledger.At(n)
	if !ok {
		return engine.Result{}, ErrNoSuchEntry
	}
	return s.Search(ctx, Query{
		Mode:   e.Mode,
		Text:   e.RawQuery,
		Origin: e.Origin,
	})
}

// LastResult returns the result of the most recent successful Search, for
// redisplay without re-querying.
func (s *Session) LastResult() (engine.Result, bool) {
	res := s.last.Load()
	if res == nil {
		return engine.Result{}, false
	}
	return *res, true
}

func representativeName(res engine.Result) string {
	if res.Len() == 0 {
		return ""
	}
	return res.Records[0].Name
}
