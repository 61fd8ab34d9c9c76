package report

import (
	"fmt"
	"io"
	"strings"
)

// LinesPerPage fits a US Letter page at 16pt line spacing.
const LinesPerPage = 42

// Lines returns the report body as "key: value" lines.
func Lines(r Report) []string {
	res := r.Result
	lines := []string{
		r.title(),
		"Generated: " + r.GeneratedAt.Format("2006-01-02 15:04"),
		"",
		fmt.Sprintf("Tax Year: %d", r.Year),
		"Filing Status: " + r.Status.String(),
		"Adjusted Gross Income: " + res.AdjustedGrossIncome.StringFixed(2),
		"Deduction Type: " + string(res.DeductionType),
		"Deduction Used: " + res.DeductionUsed.StringFixed(2),
		"Standard Deduction: " + res.StandardDeduction.StringFixed(2),
		"Taxable Income: " + res.TaxableIncome.StringFixed(2),
		"Estimated Federal Tax: " + res.EstimatedFederalTax.StringFixed(2),
		"",
		"Total Income: " + r.Summary.TotalIncome.StringFixed(2),
		"Total Expenses: " + r.Summary.TotalExpenses.StringFixed(2),
		"Net: " + r.Summary.Net().StringFixed(2),
	}

	if len(r.Summary.ByCategory) > 0 {
		lines = append(lines, "", "Expenses by Category")
		for _, c := range r.Summary.ByCategory {
			lines = append(lines, c.Category+": "+c.Amount.StringFixed(2))
		}
	}
	if len(r.Suggestions) > 0 {
		lines = append(lines, "", "Suggestions")
		for _, s := range r.Suggestions {
			lines = append(lines, s.String())
		}
	}
	return lines
}

// Paginate splits lines into pages of at most perPage lines. An empty input
// still yields one empty page.
func Paginate(lines []string, perPage int) [][]string {
	if perPage <= 0 {
		perPage = LinesPerPage
	}
	if len(lines) == 0 {
		return [][]string{{}}
	}
	pages := make([][]string, 0, (len(lines)+perPage-1)/perPage)
	for len(lines) > 0 {
		n := min(perPage, len(lines))
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	return pages
}

// WriteText writes pages separated by form feeds, each ending with a
// "Page n of m" footer.
func WriteText(w io.Writer, pages [][]string) error {
	var b strings.Builder
	for i, page := range pages {
		if i > 0 {
			b.WriteString("\f")
		}
		for _, line := range page {
			b.WriteString(line)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nPage %d of %d\n", i+1, len(pages))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
