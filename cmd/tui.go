package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxlens/internal/tui"
	"github.com/theirongolddev/taxlens/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd.Context())
	if err != nil {
		return err
	}
	theme.SetActive(in.cfg.Appearance.Theme)

	// Background styling needs a color profile even when stdout isn't
	// detected as a terminal.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Table:        in.table,
		Advisor:      in.advisor,
		Rows:         in.ledger.Rows,
		Sources:      in.paths,
		Dropped:      in.ledger.Dropped,
		Status:       in.status,
		ForceItemize: in.cfg.Deductions.ForceItemize,
		Itemized:     in.itemized,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
