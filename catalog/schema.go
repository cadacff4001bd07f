package catalog

import "strings"

// Row is one raw row from an external tabular loader: a mapping of source
// field name to cell text. Field presence is not guaranteed.
type Row map[string]string

// Schema reconciles source field names with the canonical columns. The
// mapping is applied once at build time; unrecognized fields are dropped and
// recognized-but-absent fields default to empty/nil.
type Schema struct {
	synonyms map[string]string
}

// defaultSynonyms maps common alternate spellings to canonical columns.
// Keys are matched after trimming surrounding whitespace.
var defaultSynonyms = map[string]string{
	"상품명":    ColName,
	"품명":     ColName,
	"단가":     ColUnitPrice,
	"출고단가":   ColUnitPrice,
	"SAP":    ColERPCode,
	"sap코드":  ColERPCode,
	"박스입수":   ColUnitsPerCase,
	"PLT박스수": ColPalletBoxCount,
	"유통기한":   ColBestByDate,
	"보관":     ColStorageCondition,
}

// DefaultSchema returns a Schema with the built-in synonym table.
func DefaultSchema() Schema {
	return NewSchema(nil)
}

// NewSchema returns a Schema with the built-in synonym table merged with the
// given overrides. Overrides win on conflict. A nil map is allowed.
func NewSchema(overrides map[string]string) Schema {
	synonyms := make(map[string]string, len(defaultSynonyms)+len(overrides))
	for raw, canonical := range defaultSynonyms {
		synonyms[raw] = canonical
	}
	for raw, canonical := range overrides {
		synonyms[raw] = canonical
	}
	return Schema{synonyms: synonyms}
}

// Canonical resolves a source field name to its canonical column. ok is false
// when the name is neither canonical nor a known synonym.
func (s Schema) Canonical(raw string) (string, bool) {
	name := strings.TrimSpace(raw)

	for _, col := range Columns() {
		if name == col {
			return col, true
		}
	}

	if canonical, ok := s.synonyms[name]; ok {
		return canonical, true
	}
	return "", false
}

// Reconcile maps a raw row onto canonical columns. Unrecognized fields are
// dropped. When several source fields resolve to the same column, the
// canonical spelling wins if present; between synonyms the winner is
// unspecified.
func (s Schema) Reconcile(row Row) Row {
	out := make(Row, len(row))
	for raw, value := range row {
		canonical, ok := s.Canonical(raw)
		if !ok {
			continue
		}
		if _, exists := out[canonical]; exists && strings.TrimSpace(raw) != canonical {
			continue
		}
		out[canonical] = value
	}
	return out
}
