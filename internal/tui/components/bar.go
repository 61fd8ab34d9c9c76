package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

// ShareBar renders "label ████░░░░ 42%" for a 0-1 share. Shares outside the
// range are clamped.
func ShareBar(label string, pct float64, labelW, barW int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(barW))
	if pct > 0 && filled == 0 {
		filled = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	filledStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) + " " +
		filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barW-filled)) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
