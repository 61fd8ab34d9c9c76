// Package tui provides the interactive Bubble Tea dashboard for taxlens.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/advisor"
	"github.com/theirongolddev/taxlens/internal/ledger"
	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"
	"github.com/theirongolddev/taxlens/internal/tui/components"
	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

// Options configures a dashboard.
type Options struct {
	Table        *tax.Table
	Advisor      *advisor.Advisor
	Rows         []model.Row
	Sources      []string
	Dropped      int
	Status       tax.FilingStatus
	ForceItemize bool
	Itemized     *decimal.Decimal
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	table    *tax.Table
	advisor  *advisor.Advisor
	rows     []model.Row
	sources  []string
	dropped  int
	itemized *decimal.Decimal

	// Derived once from rows
	summary     model.Summary
	suggestions []advisor.Suggestion

	// Toggles, recomputed on change
	status       tax.FilingStatus
	forceItemize bool
	result       model.TaxResult
	brackets     []tax.Bracket
	shares       []tax.BracketShare
	err          error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	keys      keyMap
	help      help.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a dashboard over the given ledger rows.
func NewApp(opts Options) App {
	if opts.Table == nil {
		opts.Table = tax.Default2024()
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.New(advisor.Default)
	}
	if !opts.Status.Valid() {
		opts.Status = tax.Single
	}

	a := App{
		table:        opts.Table,
		advisor:      opts.Advisor,
		rows:         opts.Rows,
		sources:      opts.Sources,
		dropped:      opts.Dropped,
		itemized:     opts.Itemized,
		status:       opts.Status,
		forceItemize: opts.ForceItemize,
		keys:         newKeyMap(),
		help:         help.New(),
	}
	a.summary = ledger.Summarize(a.rows)
	a.suggestions = a.advisor.Recommend(a.rows)
	a.recompute()
	return a
}

// recompute re-runs the estimate for the current toggles.
func (a *App) recompute() {
	req := tax.Request{
		Status:        a.status,
		TotalIncome:   a.summary.TotalIncome,
		TotalExpenses: a.summary.TotalExpenses,
		ForceItemize:  a.forceItemize,
		ItemizedTotal: a.itemized,
	}
	a.result, a.err = a.table.Estimate(req)
	a.brackets, a.shares = nil, nil
	if a.err == nil {
		a.brackets, _ = a.table.Brackets(a.status)
		a.shares, _ = a.table.Breakdown(req)
	}
}

// Status returns the filing status currently shown.
func (a App) Status() tax.FilingStatus { return a.status }

// ForceItemize reports whether the itemized deduction is forced.
func (a App) ForceItemize() bool { return a.forceItemize }

// Result returns the estimate currently shown.
func (a App) Result() (model.TaxResult, error) { return a.result, a.err }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			a.help.ShowAll = false
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.NextTab):
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case key.Matches(msg, a.keys.PrevTab):
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case key.Matches(msg, a.keys.Status):
			a.status = a.status.Next()
			a.recompute()
		case key.Matches(msg, a.keys.Itemize):
			a.forceItemize = !a.forceItemize
			a.recompute()
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  taxlens needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	body := titleStyle.Render("◈ Keyboard Shortcuts") + "\n\n" +
		a.help.View(a.keys) + "\n\n" +
		dimStyle.Render("Press any key to close")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, a.width)

	mode := "Standard"
	if a.forceItemize {
		mode = "Itemized (forced)"
	}
	right := fmt.Sprintf("%s · %s · %d", a.status, mode, a.table.Year())
	statusBar := components.RenderStatusBar(a.width, a.help.View(a.keys), right)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderCategoriesTab(cw)
	case 2:
		content = a.renderSuggestionsTab(cw)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
