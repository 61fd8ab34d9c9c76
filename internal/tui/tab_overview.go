package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/tax"
	"github.com/theirongolddev/taxlens/internal/tui/components"
	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary

	var b strings.Builder
	taxValue, taxNote := "n/a", ""
	if a.err == nil {
		taxValue = cli.FormatMoney(a.result.EstimatedFederalTax)
		taxNote = cli.FormatPercent(tax.EffectiveRate(a.result.TaxableIncome, a.brackets)) + " of taxable"
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatMoney(s.TotalIncome), Color: t.Green},
		{Label: "Expenses", Value: cli.FormatMoney(s.TotalExpenses), Note: fmt.Sprintf("%d categories", len(s.ByCategory))},
		{Label: "Net", Value: cli.FormatMoney(s.Net())},
		{Label: "Estimated tax", Value: taxValue, Note: taxNote, Color: t.Red},
	}, cw))
	b.WriteString("\n")

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(components.ContentCard("Estimate", errStyle.Render(a.err.Error()), cw))
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Estimate", a.estimateBody(), halves[0]),
		components.ContentCard("Brackets", a.bracketBody(components.CardInnerWidth(halves[1])), halves[1]),
	}))

	if len(a.sources) > 0 || a.dropped > 0 {
		b.WriteString("\n")
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		line := fmt.Sprintf(" %d rows from %s", len(a.rows), strings.Join(a.sources, ", "))
		if a.dropped > 0 {
			line += fmt.Sprintf(" · %d dropped (non-numeric amount)", a.dropped)
		}
		b.WriteString(dim.Render(line))
	}
	return b.String()
}

func (a App) estimateBody() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	res := a.result
	rows := []struct {
		label, value string
	}{
		{"Filing status", a.status.String()},
		{"Adjusted gross income", cli.FormatMoney(res.AdjustedGrossIncome)},
		{"Standard deduction", cli.FormatMoney(res.StandardDeduction)},
		{"Deduction used", fmt.Sprintf("%s (%s)", cli.FormatMoney(res.DeductionUsed), res.DeductionType)},
		{"Expenses subtracted", cli.FormatMoney(a.summary.TotalExpenses)},
		{"Taxable income", cli.FormatMoney(res.TaxableIncome)},
		{"Marginal rate", cli.FormatPercent(tax.MarginalRate(res.TaxableIncome, a.brackets))},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", r.label)), valueStyle.Render(r.value))
	}
	fmt.Fprintf(&b, "%s %s", labelStyle.Render(fmt.Sprintf("%-22s", "Estimated federal tax")), accentStyle.Render(cli.FormatMoney(res.EstimatedFederalTax)))
	return b.String()
}

func (a App) bracketBody(innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	if len(a.shares) == 0 {
		return labelStyle.Render("No taxable income.")
	}

	var lines []string
	for _, sh := range a.shares {
		span := cli.FormatMoney(sh.Bracket.Lower) + "+"
		if !sh.Bracket.IsUnbounded() {
			span = cli.FormatMoney(sh.Bracket.Lower) + " - " + cli.FormatMoney(sh.Bracket.Upper.Decimal)
		}
		line := fmt.Sprintf("%s %s  %s",
			labelStyle.Render(fmt.Sprintf("%4s", cli.FormatRate(sh.Bracket.Rate))),
			valueStyle.Render(cli.FormatMoney(sh.Tax)),
			labelStyle.Render(span))
		if lipgloss.Width(line) > innerW {
			line = fmt.Sprintf("%s %s",
				labelStyle.Render(fmt.Sprintf("%4s", cli.FormatRate(sh.Bracket.Rate))),
				valueStyle.Render(cli.FormatMoney(sh.Tax)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
