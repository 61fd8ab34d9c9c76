package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/tui/components"
	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

func (a App) renderSuggestionsTab(cw int) string {
	t := theme.Active
	catStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(components.CardInnerWidth(cw) - 2)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, s := range a.suggestions {
		b.WriteString(catStyle.Render("• " + s.Category))
		b.WriteString("\n")
		b.WriteString("  " + strings.ReplaceAll(textStyle.Render(s.Text), "\n", "\n  "))
		if i < len(a.suggestions)-1 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Educational estimate only. Not tax advice."))

	return components.ContentCard("Deduction suggestions", b.String(), cw)
}
