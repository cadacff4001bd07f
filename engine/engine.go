// Package engine executes barcode and name queries against a catalog index.
//
// Both query modes follow the same two-tier match policy: prefer exact key
// equality, fall back to substring containment only when the exact tier
// yields nothing. There is no fuzzy (edit-distance) matching; substring
// containment is the matching guarantee, not an oversight.
//
// For a fixed index and query the result set and its order are fully
// determined: relative order is always index build order unless an explicit
// sort key is applied.
package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hanbitlee/catalook/catalog"
	"github.com/hanbitlee/catalook/normalize"
)

// Mode selects which derived key a query runs against.
type Mode uint8

const (
	// ModeBarcode matches against the digits-only barcode key.
	ModeBarcode Mode = iota + 1
	// ModeName matches against the whitespace-free, case-folded name key.
	ModeName
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeBarcode:
		return "barcode"
	case ModeName:
		return "name"
	default:
		return "unknown"
	}
}

// Tier identifies which tier of the match policy produced a result.
type Tier uint8

const (
	// TierNone means the query matched nothing (or was empty).
	TierNone Tier = iota
	// TierExact means full-key equality.
	TierExact
	// TierSubstring means containment fallback.
	TierSubstring
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// MinNameQueryLen is the minimum trimmed rune count for a name query.
const MinNameQueryLen = 2

// Result is an ordered set of matched records. Order is index build order
// unless a sort key was applied.
type Result struct {
	Records []catalog.Record
	Tier    Tier
}

// Len returns the number of matched records.
func (r Result) Len() int { return len(r.Records) }

// SearchOptions narrows and orders a search. The zero value means no
// filtering and no sorting.
type SearchOptions struct {
	// Filters are applied before the match tiers run; a row excluded by a
	// filter can never appear in either tier.
	Filters *Filters
	// Sort reorders the result after matching. SortNone keeps build order.
	Sort SortKey
}

// SearchByBarcode runs a barcode query against the index.
//
// The raw query must contain only digits, hyphens, and whitespace (full-width
// forms included); anything else is a *ErrInvalidQuerySyntax, distinguishing
// malformed input from input that simply matches nothing. An empty normalized
// query returns the empty result with no error: "no query entered yet".
// Exact matches on the normalized key win outright; the substring tier is
// consulted only when the exact tier is empty.
func SearchByBarcode(idx *catalog.Index, raw string, optFns ...func(o *SearchOptions)) (Result, error) {
	if err := validateBarcodeQuery(raw); err != nil {
		return Result{}, err
	}

	opts := applySearchOptions(optFns)

	q := normalize.Barcode(raw)
	if q == "" {
		return Result{}, nil
	}

	allowed := compileFilters(idx, opts.Filters)

	exact := collect(idx, allowed, func(i int) bool {
		return idx.NormalizedBarcode(i) == q
	})
	if len(exact) > 0 {
		return finish(exact, TierExact, opts.Sort), nil
	}

	sub := collect(idx, allowed, func(i int) bool {
		return strings.Contains(idx.NormalizedBarcode(i), q)
	})
	if len(sub) == 0 {
		return Result{}, nil
	}
	return finish(sub, TierSubstring, opts.Sort), nil
}

// SearchByName runs a name query against the index.
//
// The trimmed query must be at least MinNameQueryLen runes, else
// *ErrQueryTooShort. Names only have the substring tier: full exact name
// queries are rare in practice, so containment is the single policy.
func SearchByName(idx *catalog.Index, raw string, optFns ...func(o *SearchOptions)) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(trimmed); n < MinNameQueryLen {
		return Result{}, &ErrQueryTooShort{Length: n, Min: MinNameQueryLen}
	}

	opts := applySearchOptions(optFns)

	q := normalize.Name(raw)
	if q == "" {
		return Result{}, nil
	}

	allowed := compileFilters(idx, opts.Filters)

	sub := collect(idx, allowed, func(i int) bool {
		return strings.Contains(idx.NormalizedName(i), q)
	})
	if len(sub) == 0 {
		return Result{}, nil
	}
	return finish(sub, TierSubstring, opts.Sort), nil
}

// List returns every record in build order. This is the "search everything"
// operation: building an index from N rows and listing it returns the rows in
// their original order.
func List(idx *catalog.Index, optFns ...func(o *SearchOptions)) Result {
	opts := applySearchOptions(optFns)

	allowed := compileFilters(idx, opts.Filters)
	all := collect(idx, allowed, func(int) bool { return true })
	if len(all) == 0 {
		return Result{}
	}
	return finish(all, TierExact, opts.Sort)
}

func applySearchOptions(optFns []func(o *SearchOptions)) SearchOptions {
	var opts SearchOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// collect gathers records in build order whose ordinal passes both the
// compiled filter bitmap and the match predicate. allowed == nil means
// unfiltered.
func collect(idx *catalog.Index, allowed *roaring.Bitmap, match func(i int) bool) []catalog.Record {
	var out []catalog.Record
	for i := 0; i < idx.Len(); i++ {
		if allowed != nil && !allowed.Contains(uint32(i)) {
			continue
		}
		if match(i) {
			out = append(out, idx.Record(i))
		}
	}
	return out
}

func finish(records []catalog.Record, tier Tier, key SortKey) Result {
	SortRecords(records, key)
	return Result{Records: records, Tier: tier}
}

// validateBarcodeQuery rejects runes outside the scanner alphabet. Width
// folding in the Normalizer accepts the full-width forms, so they are allowed
// here too.
func validateBarcodeQuery(raw string) error {
	for pos, r := range raw {
		switch {
		case r >= '0' && r <= '9':
		case r >= '０' && r <= '９':
		case r == '-' || r == '－':
		case unicode.IsSpace(r):
		default:
			return &ErrInvalidQuerySyntax{Rune: r, Pos: pos}
		}
	}
	return nil
}
