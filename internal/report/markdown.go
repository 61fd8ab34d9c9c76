package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown returns the report as a markdown document.
func Markdown(r Report) string {
	res := r.Result
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.title())
	fmt.Fprintf(&b, "_Generated %s. Educational estimate only._\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## Estimate (%d, %s)\n\n", r.Year, r.Status)
	b.WriteString("| Field | Amount |\n|---|---:|\n")
	row := func(k, v string) { fmt.Fprintf(&b, "| %s | %s |\n", k, v) }
	row("Adjusted gross income", res.AdjustedGrossIncome.StringFixed(2))
	row("Deduction ("+string(res.DeductionType)+")", res.DeductionUsed.StringFixed(2))
	row("Standard deduction", res.StandardDeduction.StringFixed(2))
	row("Taxable income", res.TaxableIncome.StringFixed(2))
	row("**Estimated federal tax**", "**"+res.EstimatedFederalTax.StringFixed(2)+"**")
	b.WriteString("\n")

	b.WriteString("## Ledger\n\n")
	fmt.Fprintf(&b, "- Total income: %s\n", r.Summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "- Total expenses: %s\n", r.Summary.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "- Net: %s\n\n", r.Summary.Net().StringFixed(2))

	if len(r.Summary.ByCategory) > 0 {
		b.WriteString("| Category | Amount |\n|---|---:|\n")
		for _, c := range r.Summary.ByCategory {
			row(escapeCell(c.Category), c.Amount.StringFixed(2))
		}
		b.WriteString("\n")
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "- **%s**: %s\n", s.Category, s.Text)
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders md for a terminal of the given width using the
// named glamour style ("dark", "light", "notty", ...).
func RenderMarkdown(md, style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
