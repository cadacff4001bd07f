package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hanbitlee/catalook/catalog"
)

// ReadXLSX parses the first sheet of an XLSX workbook. The first row is the
// header; every following row becomes one raw row keyed by header cell.
func ReadXLSX(r io.Reader) ([]catalog.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("loader: xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("loader: xlsx: sheet %q: %w", sheets[0], err)
	}
	if len(table) == 0 {
		return nil, nil
	}

	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(h)
	}

	return rowsFromTable(header, table[1:]), nil
}
