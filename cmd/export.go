package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/taxlens/internal/report"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-category totals and the estimate as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}
	res, err := in.estimate()
	if err != nil {
		return err
	}

	return writeOutput(flagOutput, func(w io.Writer) error {
		return report.WriteCategoryCSV(w, report.Export{
			Year:       in.table.Year(),
			Status:     in.status,
			Categories: in.summary.ByCategory,
			Result:     res,
		})
	})
}

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(path) //nolint:gosec // path is the user's --output flag
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", path)
	}
	return nil
}
