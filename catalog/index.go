package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hanbitlee/catalook/normalize"
)

// ErrMalformedNumber is the cause recorded when a numeric cell cannot be
// parsed. The field is nulled and ingestion continues.
var ErrMalformedNumber = errors.New("malformed number")

// RowError records a non-fatal problem with a single cell during Build.
// A bad cell nulls the affected field; it never aborts the build.
type RowError struct {
	Row   int    // zero-based row ordinal in the input
	Field string // canonical column name
	Value string // offending cell text
	cause error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: field %q: %v: %q", e.Row, e.Field, e.cause, e.Value)
}

func (e *RowError) Unwrap() error { return e.cause }

// BuildReport summarizes a Build: how many rows were ingested and which cells
// were malformed. Malformed cells are informational; the rows they belong to
// are still present in the index with the bad fields nulled.
type BuildReport struct {
	Rows      int
	Malformed []*RowError
}

// BuildOptions configures Build.
type BuildOptions struct {
	// Schema reconciles source field names. Defaults to DefaultSchema().
	Schema Schema
}

// Index is the searchable in-memory representation of one uploaded dataset.
//
// It owns the records plus, per record, the two derived normalized keys
// (digits-only barcode, whitespace-free case-folded name) computed eagerly at
// build time, and a posting-list index over storage conditions for filter
// compilation. An Index is immutable after Build and therefore safe for
// concurrent readers; a new upload produces a wholly new Index.
type Index struct {
	records  []Record
	barcodes []string // normalizedBarcode, 1:1 with records
	names    []string // normalizedName, 1:1 with records
	storage  map[string]*roaring.Bitmap
}

// Build constructs an Index from raw rows.
//
// Field reconciliation and key normalization happen here, once, so repeated
// queries are plain string comparisons. Missing recognized fields default to
// empty/nil and malformed numeric cells are nulled and reported; a subset of
// bad rows never aborts ingestion of the rest.
func Build(rows []Row, optFns ...func(o *BuildOptions)) (*Index, *BuildReport) {
	opts := BuildOptions{
		Schema: DefaultSchema(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Schema.synonyms == nil {
		opts.Schema = DefaultSchema()
	}

	idx := &Index{
		records:  make([]Record, 0, len(rows)),
		barcodes: make([]string, 0, len(rows)),
		names:    make([]string, 0, len(rows)),
		storage:  make(map[string]*roaring.Bitmap),
	}
	report := &BuildReport{Rows: len(rows)}

	for i, raw := range rows {
		row := opts.Schema.Reconcile(raw)

		rec := Record{
			Barcode:          row[ColBarcode],
			ERPCode:          strings.TrimSpace(row[ColERPCode]),
			Name:             row[ColName],
			TaxCategory:      strings.TrimSpace(row[ColTaxCategory]),
			BestByDate:       strings.TrimSpace(row[ColBestByDate]),
			StorageCondition: strings.TrimSpace(row[ColStorageCondition]),
		}
		rec.UnitsPerCase = parseNumber(i, ColUnitsPerCase, row, report)
		rec.UnitPrice = parseNumber(i, ColUnitPrice, row, report)
		rec.TaxInclusivePrice = parseNumber(i, ColTaxInclusivePrice, row, report)
		rec.PalletBoxCount = parseNumber(i, ColPalletBoxCount, row, report)

		ord := uint32(len(idx.records))
		idx.records = append(idx.records, rec)
		idx.barcodes = append(idx.barcodes, normalize.Barcode(rec.Barcode))
		idx.names = append(idx.names, normalize.Name(rec.Name))

		if rec.StorageCondition != "" {
			bm, ok := idx.storage[rec.StorageCondition]
			if !ok {
				bm = roaring.New()
				idx.storage[rec.StorageCondition] = bm
			}
			bm.Add(ord)
		}
	}

	return idx, report
}

// parseNumber parses a numeric cell, tolerating thousands separators and
// surrounding whitespace. Empty cells are nil without a report entry;
// unparseable cells are nil with one.
func parseNumber(row int, field string, r Row, report *BuildReport) *float64 {
	raw, ok := r[field]
	if !ok {
		return nil
	}
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		report.Malformed = append(report.Malformed, &RowError{
			Row:   row,
			Field: field,
			Value: raw,
			cause: ErrMalformedNumber,
		})
		return nil
	}
	return &v
}

// Len returns the number of records in the index.
func (idx *Index) Len() int { return len(idx.records) }

// Record returns the record at build ordinal i.
func (idx *Index) Record(i int) Record { return idx.records[i] }

// Records returns the backing record slice in build order. The slice must be
// treated as read-only.
func (idx *Index) Records() []Record { return idx.records }

// NormalizedBarcode returns the derived barcode key for ordinal i.
func (idx *Index) NormalizedBarcode(i int) string { return idx.barcodes[i] }

// NormalizedName returns the derived name key for ordinal i.
func (idx *Index) NormalizedName(i int) string { return idx.names[i] }

// StoragePostings returns a copy of the posting list for a storage condition
// value, or an empty bitmap when the value never occurs.
func (idx *Index) StoragePostings(value string) *roaring.Bitmap {
	if bm, ok := idx.storage[value]; ok {
		return bm.Clone()
	}
	return roaring.New()
}

// AllRows returns a fresh bitmap containing every row ordinal.
func (idx *Index) AllRows() *roaring.Bitmap {
	bm := roaring.New()
	if len(idx.records) > 0 {
		bm.AddRange(0, uint64(len(idx.records)))
	}
	return bm
}
