package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/taxlens/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagMarkdown  bool
	flagHTML      bool
	flagRaw       bool
	flagStyle     string
	flagWidth     int
	flagReportOut string
	flagPageLines int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Paginated text, markdown or HTML report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Markdown report rendered for the terminal")
	reportCmd.Flags().BoolVar(&flagHTML, "html", false, "Standalone HTML report")
	reportCmd.Flags().BoolVar(&flagRaw, "raw", false, "With --markdown, print the markdown source")
	reportCmd.Flags().StringVar(&flagStyle, "style", "dark", "Markdown style: dark, light, notty, ...")
	reportCmd.Flags().IntVar(&flagWidth, "width", 80, "Markdown word wrap width")
	reportCmd.Flags().IntVar(&flagPageLines, "page-lines", report.LinesPerPage, "Lines per text page")
	reportCmd.Flags().StringVarP(&flagReportOut, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}
	res, err := in.estimate()
	if err != nil {
		return err
	}

	r := report.Report{
		GeneratedAt: time.Now(),
		Year:        in.table.Year(),
		Status:      in.status,
		Summary:     in.summary,
		Result:      res,
		Suggestions: in.advisor.Recommend(in.ledger.Rows),
	}

	if flagHTML {
		return writeOutput(flagReportOut, func(w io.Writer) error {
			return report.WriteHTML(w, r)
		})
	}
	if !flagMarkdown {
		if flagPageLines <= 0 {
			return fmt.Errorf("--page-lines must be positive, got %d", flagPageLines)
		}
		return writeOutput(flagReportOut, func(w io.Writer) error {
			return report.WriteText(w, report.Paginate(report.Lines(r), flagPageLines))
		})
	}

	md := report.Markdown(r)
	if !flagRaw {
		if md, err = report.RenderMarkdown(md, flagStyle, flagWidth); err != nil {
			return err
		}
	}
	return writeOutput(flagReportOut, func(w io.Writer) error {
		_, err := io.WriteString(w, md)
		return err
	})
}
