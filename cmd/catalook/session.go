package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanbitlee/catalook"
	"github.com/hanbitlee/catalook/catalog"
	"github.com/hanbitlee/catalook/engine"
	"github.com/hanbitlee/catalook/export"
	"github.com/hanbitlee/catalook/loader"
)

// openSession builds a Session and loads the configured catalog files into
// it. Every subcommand starts here; the process owns exactly one session.
func openSession(ctx context.Context) (*catalook.Session, *catalog.BuildReport, error) {
	names := viper.GetStringSlice("catalog")
	if len(names) == 0 {
		return nil, nil, errors.New("no catalog files configured (use --catalog)")
	}

	rows, err := loader.LoadAll(ctx, newStore(), names)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}

	s := catalook.New(catalook.WithLogger(newLogger()))
	report, err := s.Load(ctx, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return s, report, nil
}

func addQueryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("storage", nil, "Keep only these storage conditions (repeatable, OR-combined)")
	f.Float64("price-min", 0, "Minimum unit price")
	f.Float64("price-max", 0, "Maximum unit price")
	f.Float64("qty-min", 0, "Minimum units per case")
	f.Float64("qty-max", 0, "Maximum units per case")
	f.String("sort", "none", "Result order: none, price-asc, price-desc, name-asc, quantity-asc, quantity-desc")
	f.StringP("format", "f", "table", "Output format: table, csv, or json")
}

// queryFlags translates the shared flag set into engine filter and sort
// values. Unset range bounds stay nil so they do not constrain.
func queryFlags(cmd *cobra.Command) (*engine.Filters, engine.SortKey, error) {
	f := cmd.Flags()

	filters := &engine.Filters{}
	filters.Storage, _ = f.GetStringSlice("storage")
	filters.Price = rangeFlags(cmd, "price-min", "price-max")
	filters.Quantity = rangeFlags(cmd, "qty-min", "qty-max")

	name, _ := f.GetString("sort")
	key := engine.ParseSortKey(name)
	if key == engine.SortNone && name != "none" && name != "" {
		return nil, 0, fmt.Errorf("unknown sort key %q", name)
	}
	return filters, key, nil
}

func rangeFlags(cmd *cobra.Command, minName, maxName string) *engine.Range {
	r := &engine.Range{}
	if cmd.Flags().Changed(minName) {
		v, _ := cmd.Flags().GetFloat64(minName)
		r.Min = &v
	}
	if cmd.Flags().Changed(maxName) {
		v, _ := cmd.Flags().GetFloat64(maxName)
		r.Max = &v
	}
	if r.Min == nil && r.Max == nil {
		return nil
	}
	return r
}

func printRecords(w io.Writer, records []catalog.Record, format string) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, records)
	case "json":
		return export.WriteJSON(w, records)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(catalog.Columns(), "\t"))
		for _, r := range records {
			fmt.Fprintln(tw, strings.Join(r.Values(), "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
