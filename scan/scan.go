// Package scan disambiguates noisy barcode-scanner output.
//
// A decoder produces several raw text candidates per capture event, often
// with framing noise or non-barcode text mixed in. Resolve reduces one
// candidate set to a single canonical barcode; RecentBuffer supports
// "latest wins" redisplay for continuous capture without re-resolving
// history. Pixel decoding itself is an external collaborator behind the
// Decoder interface.
package scan

import (
	"context"
	"errors"
	"sync"

	"github.com/hanbitlee/catalook/normalize"
)

// ErrDecoderUnavailable is returned by the unavailable Decoder variant.
var ErrDecoderUnavailable = errors.New("barcode decoder unavailable")

// Resolve reduces the raw candidates of one capture event to a single
// canonical barcode.
//
// Each candidate is collapsed to its digit run; candidates without digits are
// discarded, and the longest surviving digit string wins, ties broken by
// first-seen order. ok is false when no candidate survives: a normal negative
// outcome ("no barcode recognized"), not an error — the caller should prompt
// a retry.
func Resolve(candidates []string) (barcode string, ok bool) {
	var best string
	for _, c := range candidates {
		digits := normalize.Barcode(c)
		if digits == "" {
			continue
		}
		if len(digits) > len(best) {
			best = digits
		}
	}
	return best, best != ""
}

// Decoder is the capability interface for an external barcode decoder. One
// Decode call corresponds to one capture event and returns the raw decoded
// strings, possibly none.
//
// Optional decode libraries are modeled as an explicit "not available"
// variant (Unavailable) rather than exception-style feature detection;
// callers branch on Available before offering capture paths.
type Decoder interface {
	// Available reports whether the decoder can produce candidates.
	Available() bool
	// Decode returns the raw decoded text strings for one capture event.
	Decode(ctx context.Context) ([]string, error)
}

// Unavailable returns a Decoder that reports no capability. reason is for
// user feedback (e.g. which optional dependency is missing).
func Unavailable(reason string) Decoder {
	return unavailableDecoder{reason: reason}
}

type unavailableDecoder struct {
	reason string
}

func (unavailableDecoder) Available() bool { return false }

func (d unavailableDecoder) Decode(context.Context) ([]string, error) {
	if d.reason != "" {
		return nil, errors.New("barcode decoder unavailable: " + d.reason)
	}
	return nil, ErrDecoderUnavailable
}

// DefaultRecentCapacity is the capture buffer depth.
const DefaultRecentCapacity = 5

// RecentBuffer keeps the most recent distinct decoded values, newest first,
// deduplicated by exact text equality. A value already present is left where
// it is rather than moved to the front. Safe for concurrent use: continuous
// capture pushes from the decode path while the caller reads.
type RecentBuffer struct {
	mu       sync.Mutex
	capacity int
	values   []string
}

// NewRecentBuffer creates a buffer with the given capacity; capacity <= 0
// uses DefaultRecentCapacity.
func NewRecentBuffer(capacity int) *RecentBuffer {
	if capacity <= 0 {
		capacity = DefaultRecentCapacity
	}
	return &RecentBuffer{capacity: capacity}
}

// Push inserts v at the front unless it is already buffered, then truncates
// to capacity by dropping the oldest values.
func (b *RecentBuffer) Push(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.values {
		if existing == v {
			return
		}
	}
	b.values = append([]string{v}, b.values...)
	if len(b.values) > b.capacity {
		b.values = b.values[:b.capacity]
	}
}

// Latest returns the newest buffered value.
func (b *RecentBuffer) Latest() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.values) == 0 {
		return "", false
	}
	return b.values[0], true
}

// Values returns a copy of the buffered values, newest first.
func (b *RecentBuffer) Values() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.values))
	copy(out, b.values)
	return out
}

// Len returns the number of buffered values.
func (b *RecentBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.values)
}
