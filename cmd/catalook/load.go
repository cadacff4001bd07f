package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the catalog and report ingest statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Loaded %d rows (%d malformed cells)\n", report.Rows, len(report.Malformed))
			for _, m := range report.Malformed {
				fmt.Fprintf(os.Stderr, "  row %d, %s: %q\n", m.Row, m.Field, m.Value)
			}
			return nil
		},
	}
}
