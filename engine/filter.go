package engine

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hanbitlee/catalook/catalog"
)

// Range is an inclusive numeric interval. Nil bounds are open.
type Range struct {
	Min *float64
	Max *float64
}

// Contains reports whether v falls within the range.
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Filters narrows a search before the match tiers run. Each filter is
// independently optional (nil/empty means no constraint) and filters compose
// by logical AND. A record with a nil value for a numeric filtered field is
// treated as 0 for range comparison.
type Filters struct {
	// Storage is a whitelist of storage-condition values.
	Storage []string
	// Price constrains the unit price.
	Price *Range
	// Quantity constrains the units-per-case count.
	Quantity *Range
}

func (f *Filters) empty() bool {
	return f == nil || (len(f.Storage) == 0 && f.Price == nil && f.Quantity == nil)
}

// compileFilters turns the filter set into a bitmap of admissible row
// ordinals. nil means every ordinal is admissible. The storage whitelist
// unions posting lists from the index; the numeric ranges intersect in.
func compileFilters(idx *catalog.Index, f *Filters) *roaring.Bitmap {
	if f.empty() {
		return nil
	}

	allowed := idx.AllRows()

	if len(f.Storage) > 0 {
		storage := roaring.New()
		for _, v := range f.Storage {
			storage.Or(idx.StoragePostings(v))
		}
		allowed.And(storage)
	}

	if f.Price != nil || f.Quantity != nil {
		numeric := roaring.New()
		for i := 0; i < idx.Len(); i++ {
			rec := idx.Record(i)
			if f.Price.Contains(numberOrZero(rec.UnitPrice)) &&
				f.Quantity.Contains(numberOrZero(rec.UnitsPerCase)) {
				numeric.Add(uint32(i))
			}
		}
		allowed.And(numeric)
	}

	return allowed
}

// ApplyFilters filters a plain record slice, preserving relative order. It is
// the slice-level counterpart of the pre-search narrowing and uses the same
// nil-counts-as-zero policy.
func ApplyFilters(records []catalog.Record, f *Filters) []catalog.Record {
	if f.empty() {
		return records
	}

	var out []catalog.Record
	for _, rec := range records {
		if len(f.Storage) > 0 && !containsString(f.Storage, rec.StorageCondition) {
			continue
		}
		if !f.Price.Contains(numberOrZero(rec.UnitPrice)) {
			continue
		}
		if !f.Quantity.Contains(numberOrZero(rec.UnitsPerCase)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func numberOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
