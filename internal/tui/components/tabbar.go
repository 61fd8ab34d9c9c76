package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: '1'},
	{Name: "Categories", Key: '2'},
	{Name: "Suggestions", Key: '3'},
}

// tabLabel is the visible text of a tab: "Name" when active, "Name[k]"
// otherwise.
func tabLabel(tab Tab, active bool) string {
	if active {
		return tab.Name
	}
	return tab.Name + "[" + string(tab.Key) + "]"
}

// TabVisualWidth returns the rendered width of a tab including padding.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active)) + 2
}

// RenderTabBar renders the tab bar with the given active index. Tabs are
// separated by one column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tabLabel(tab, true)))
		} else {
			parts = append(parts, inactiveStyle.Render(tabLabel(tab, false)))
		}
	}

	bar := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
