package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanbitlee/catalook"
	"github.com/hanbitlee/catalook/engine"
)

func searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by barcode or product name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			mode, err := parseMode(modeName)
			if err != nil {
				return err
			}
			filters, sortKey, err := queryFlags(cmd)
			if err != nil {
				return err
			}

			s, _, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			res, err := s.Search(cmd.Context(), catalook.Query{
				Mode:    mode,
				Text:    args[0],
				Filters: filters,
				Sort:    sortKey,
			})
			if err != nil {
				return err
			}

			if res.Len() == 0 {
				fmt.Fprintln(os.Stderr, "No matches.")
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			return printRecords(os.Stdout, res.Records, format)
		},
	}

	cmd.Flags().StringP("mode", "m", "barcode", "Query mode: barcode or name")
	addQueryFlags(cmd)
	return cmd
}

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the full catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, sortKey, err := queryFlags(cmd)
			if err != nil {
				return err
			}

			s, _, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			res, err := s.List(func(o *engine.SearchOptions) {
				o.Filters = filters
				o.Sort = sortKey
			})
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			return printRecords(os.Stdout, res.Records, format)
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func parseMode(s string) (engine.Mode, error) {
	switch s {
	case "barcode":
		return engine.ModeBarcode, nil
	case "name":
		return engine.ModeName, nil
	default:
		return 0, fmt.Errorf("unknown query mode %q", s)
	}
}
