// Package export renders match results for external consumption.
//
// The engine exposes matched records in canonical field order; this package
// turns them into CSV or JSON byte streams, optionally compressed. It is a
// collaborator at the module boundary: nothing inside the Session depends on
// it.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/hanbitlee/catalook/catalog"
)

// Headers returns the canonical column headers.
func Headers() []string {
	return catalog.Columns()
}

// Rows renders records as string cells in canonical column order, one slice
// per record. Nil numerics render as the empty string.
func Rows(records []catalog.Record) [][]string {
	out := make([][]string, len(records))
	for i, rec := range records {
		out[i] = rec.Values()
	}
	return out
}

// WriteCSV writes records to w as CSV with the canonical header row.
func WriteCSV(w io.Writer, records []catalog.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers()); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}
	for _, row := range Rows(records) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}
	return nil
}

// jsonRecord is the export shape of one record. Nil numerics serialize as
// JSON null, matching the nullable source fields.
type jsonRecord struct {
	Barcode           string   `json:"barcode"`
	ERPCode           string   `json:"erpCode,omitempty"`
	Name              string   `json:"name"`
	UnitsPerCase      *float64 `json:"unitsPerCase"`
	UnitPrice         *float64 `json:"unitPrice"`
	TaxInclusivePrice *float64 `json:"taxInclusivePrice"`
	TaxCategory       string   `json:"taxCategory,omitempty"`
	PalletBoxCount    *float64 `json:"palletBoxCount"`
	BestByDate        string   `json:"bestByDate,omitempty"`
	StorageCondition  string   `json:"storageCondition,omitempty"`
}

// WriteJSON writes records to w as a JSON array in canonical field order.
func WriteJSON(w io.Writer, records []catalog.Record) error {
	out := make([]jsonRecord, len(records))
	for i, rec := range records {
		out[i] = jsonRecord{
			Barcode:           rec.Barcode,
			ERPCode:           rec.ERPCode,
			Name:              rec.Name,
			UnitsPerCase:      rec.UnitsPerCase,
			UnitPrice:         rec.UnitPrice,
			TaxInclusivePrice: rec.TaxInclusivePrice,
			TaxCategory:       rec.TaxCategory,
			PalletBoxCount:    rec.PalletBoxCount,
			BestByDate:        rec.BestByDate,
			StorageCondition:  rec.StorageCondition,
		}
	}

	enc := gojson.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	return nil
}
