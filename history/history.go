// Package history keeps a bounded, most-recent-first record of executed
// queries and their outcomes.
//
// Entries are immutable once recorded: repeating an old query produces a new
// entry rather than editing one in place. The ledger evicts from the tail
// (oldest first) when its capacity is exceeded.
package history

import (
	"sync"
	"time"

	"github.com/hanbitlee/catalook/engine"
)

// DefaultCapacity bounds the ledger unless configured otherwise.
const DefaultCapacity = 20

// Entry is one executed query and its outcome. Immutable after Record.
type Entry struct {
	Time       time.Time
	Mode       engine.Mode
	RawQuery   string
	Origin     string // optional source tag, e.g. "camera" or "live"
	MatchCount int
	// RepresentativeName is the raw name of the first matched record, empty
	// on zero matches. Kept so a history row can be rendered without
	// re-running the query.
	RepresentativeName string
}

// Ledger is an append-only, size-bounded query log, newest first. Safe for
// concurrent use.
type Ledger struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// New creates a Ledger with the given capacity; capacity <= 0 uses
// DefaultCapacity.
func New(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{capacity: capacity}
}

// Record prepends e and truncates to capacity by dropping the oldest
// entries.
func (l *Ledger) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = e

	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// List returns a copy of the entries, newest first.
func (l *Ledger) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns the entry at position i (0 = newest).
func (l *Ledger) At(i int) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}

// Capacity returns the configured bound.
func (l *Ledger) Capacity() int { return l.capacity }
