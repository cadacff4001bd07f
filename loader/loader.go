// Package loader reads tabular catalog sources into raw rows for
// catalog.Build.
//
// Supported formats are CSV and XLSX, selected by file extension. Loaders
// only produce raw rows: field-name reconciliation, normalization, and
// validation all happen downstream at build time, so a loader never fails on
// row content, only on structurally unreadable input.
package loader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hanbitlee/catalook/blobstore"
	"github.com/hanbitlee/catalook/catalog"
)

// Read parses r into raw rows, choosing the format from name's extension.
// ".csv" and ".xlsx" are recognized; anything else is an error.
func Read(r io.Reader, name string) ([]catalog.Row, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", path.Ext(name))
	}
}

// Load opens the named source from the store and parses it.
func Load(ctx context.Context, store blobstore.Store, name string) ([]catalog.Row, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return Read(rc, name)
}

// LoadAll fetches and parses several sources concurrently and concatenates
// their rows in argument order, so the merged build order is deterministic
// regardless of fetch timing. Any single failure fails the whole load: a
// partially merged catalog would silently drop products.
func LoadAll(ctx context.Context, store blobstore.Store, names []string) ([]catalog.Row, error) {
	perSource := make([][]catalog.Row, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			rows, err := Load(gctx, store, name)
			if err != nil {
				return fmt.Errorf("loader: %q: %w", name, err)
			}
			perSource[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []catalog.Row
	for _, rows := range perSource {
		merged = append(merged, rows...)
	}
	return merged, nil
}

// rowsFromTable converts a header row plus data rows into raw rows. Cells
// beyond the header width are dropped; short rows leave the remaining fields
// absent. Fully empty rows are skipped.
func rowsFromTable(header []string, data [][]string) []catalog.Row {
	rows := make([]catalog.Row, 0, len(data))
	for _, cells := range data {
		empty := true
		row := make(catalog.Row, len(header))
		for i, cell := range cells {
			if i >= len(header) {
				break
			}
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			row[header[i]] = cell
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
