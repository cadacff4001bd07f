package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hanbitlee/catalook/catalog"
)

// ReadCSV parses CSV input. The first record is the header; every following
// record becomes one raw row keyed by header cell. Records are allowed to
// vary in length: short records leave fields absent, long ones drop the
// excess.
func ReadCSV(r io.Reader) ([]catalog.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loader: csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	return rowsFromTable(header, records[1:]), nil
}
