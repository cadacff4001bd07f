package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hanbitlee/catalook/catalog"
)

// SortKey selects the post-search ordering. SortNone (the zero value) keeps
// index build order.
type SortKey uint8

const (
	SortNone SortKey = iota
	SortPriceAsc
	SortPriceDesc
	SortNameAsc
	SortQuantityAsc
	SortQuantityDesc
)

// String returns a stable name for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "none"
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortNameAsc:
		return "name-asc"
	case SortQuantityAsc:
		return "quantity-asc"
	case SortQuantityDesc:
		return "quantity-desc"
	default:
		return "unknown"
	}
}

// ParseSortKey maps a stable name back to its key. Unrecognized names return
// SortNone, matching the unknown-key-is-a-no-op contract.
func ParseSortKey(s string) SortKey {
	switch s {
	case "price-asc":
		return SortPriceAsc
	case "price-desc":
		return SortPriceDesc
	case "name-asc":
		return SortNameAsc
	case "quantity-asc":
		return SortQuantityAsc
	case "quantity-desc":
		return SortQuantityDesc
	default:
		return SortNone
	}
}

// SortRecords stably sorts records in place by the given key; ties preserve
// prior relative order. An unknown key is a no-op, not an error. Nil numeric
// fields sort as 0, the same policy range filters use.
func SortRecords(records []catalog.Record, key SortKey) {
	var less func(a, b catalog.Record) bool

	switch key {
	case SortPriceAsc:
		less = func(a, b catalog.Record) bool {
			return numberOrZero(a.UnitPrice) < numberOrZero(b.UnitPrice)
		}
	case SortPriceDesc:
		less = func(a, b catalog.Record) bool {
			return numberOrZero(a.UnitPrice) > numberOrZero(b.UnitPrice)
		}
	case SortNameAsc:
		// Korean collation rather than byte order, so 가 sorts before 나
		// regardless of encoding details.
		c := collate.New(language.Korean)
		less = func(a, b catalog.Record) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}
	case SortQuantityAsc:
		less = func(a, b catalog.Record) bool {
			return numberOrZero(a.UnitsPerCase) < numberOrZero(b.UnitsPerCase)
		}
	case SortQuantityDesc:
		less = func(a, b catalog.Record) bool {
			return numberOrZero(a.UnitsPerCase) > numberOrZero(b.UnitsPerCase)
		}
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}
