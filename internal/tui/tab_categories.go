package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/tui/components"
	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	s := a.summary

	if len(s.ByCategory) == 0 {
		return components.ContentCard("Expenses by category",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("No expense rows."), cw)
	}

	inner := components.CardInnerWidth(cw)
	labelW := 0
	for _, c := range s.ByCategory {
		labelW = max(labelW, lipgloss.Width(c.Category))
	}
	labelW = min(labelW, 24)
	amountW := 14
	barW := max(inner-labelW-amountW-7, 10)

	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	var b strings.Builder
	for i, c := range s.ByCategory {
		pct := 0.0
		if s.TotalExpenses.IsPositive() {
			pct = c.Amount.Div(s.TotalExpenses).InexactFloat64()
		}
		b.WriteString(components.ShareBar(c.Category, pct, labelW, barW))
		b.WriteString(amountStyle.Render(fmt.Sprintf(" %*s", amountW, cli.FormatMoney(c.Amount))))
		if i < len(s.ByCategory)-1 {
			b.WriteString("\n")
		}
	}

	title := fmt.Sprintf("Expenses by category · %s total", cli.FormatMoney(s.TotalExpenses))
	return components.ContentCard(title, b.String(), cw)
}
