package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with left-aligned hints and
// right-aligned state.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left = " " + left
	right += " "
	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
