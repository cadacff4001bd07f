package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanbitlee/catalook/export"
)

func exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the loaded catalog as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			compress, _ := cmd.Flags().GetString("compress")
			outPath, _ := cmd.Flags().GetString("out")

			s, _, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.List()
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			cw, err := export.NewWriter(out, export.Compression(compress))
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				err = export.WriteCSV(cw, res.Records)
			case "json":
				err = export.WriteJSON(cw, res.Records)
			default:
				err = fmt.Errorf("unknown export format %q", format)
			}
			if err != nil {
				cw.Close()
				return err
			}
			return cw.Close()
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", "csv", "Export format: csv or json")
	f.String("compress", "none", "Compression: none, gzip, zstd, or lz4")
	f.StringP("out", "o", "", "Output file (default: stdout)")
	return cmd
}
