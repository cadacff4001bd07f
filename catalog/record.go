// Package catalog holds the product records and the immutable searchable
// index built from an uploaded tabular dataset.
//
// The catalog is rebuilt wholesale on every load: Build produces a fresh
// Index, the caller swaps it in, and the previous one is discarded. Nothing
// here touches disk or network.
package catalog

import "strconv"

// Canonical column names. These are the headers of the source spreadsheets;
// alternate spellings are reconciled through the synonym table in Schema.
const (
	ColBarcode           = "바코드"
	ColERPCode           = "SAP코드"
	ColName              = "제품명"
	ColUnitsPerCase      = "입수"
	ColUnitPrice         = "출고가"
	ColTaxInclusivePrice = "포함가(면세 시 제외)"
	ColTaxCategory       = "면세/과세 구분"
	ColPalletBoxCount    = "PLT 박스수"
	ColBestByDate        = "소비기한"
	ColStorageCondition  = "보관조건"
)

// Columns returns the canonical field order used for rendering and export.
// The optional columns come last.
func Columns() []string {
	return []string{
		ColBarcode,
		ColERPCode,
		ColName,
		ColUnitsPerCase,
		ColUnitPrice,
		ColTaxInclusivePrice,
		ColTaxCategory,
		ColPalletBoxCount,
		ColBestByDate,
		ColStorageCondition,
	}
}

// Record is a single product row. Records are immutable once loaded; nothing
// in the engine mutates them after Build. Nil numeric fields mean the value
// was absent or unparseable in the source.
type Record struct {
	Barcode           string
	ERPCode           string
	Name              string
	UnitsPerCase      *float64
	UnitPrice         *float64
	TaxInclusivePrice *float64
	TaxCategory       string
	PalletBoxCount    *float64
	BestByDate        string
	StorageCondition  string
}

// Values returns the record's fields as strings in canonical column order.
// Nil numerics render as the empty string.
func (r Record) Values() []string {
	return []string{
		r.Barcode,
		r.ERPCode,
		r.Name,
		formatNumber(r.UnitsPerCase),
		formatNumber(r.UnitPrice),
		formatNumber(r.TaxInclusivePrice),
		r.TaxCategory,
		formatNumber(r.PalletBoxCount),
		r.BestByDate,
		r.StorageCondition,
	}
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
