package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func scanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <candidate>...",
		Short: "Resolve raw scanner candidates to one barcode and look it up",
		Long: `Resolve raw scanner candidates to one barcode and look it up.

Each argument is one decoder candidate as emitted by a barcode scanner,
possibly with checksum digits, separators, or stray text. The longest run
of digits wins and is searched as an exact barcode query.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			res, barcode, ok, err := s.SearchScan(cmd.Context(), args, "cli")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "No barcode recognized.")
				return nil
			}

			fmt.Fprintf(os.Stderr, "Resolved barcode: %s\n", barcode)
			if res.Len() == 0 {
				fmt.Fprintln(os.Stderr, "No matches.")
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			return printRecords(os.Stdout, res.Records, format)
		},
	}

	cmd.Flags().StringP("format", "f", "table", "Output format: table, csv, or json")
	return cmd
}
