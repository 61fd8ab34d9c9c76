package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/taxlens/internal/config"
	"github.com/theirongolddev/taxlens/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Existing file values only; flags and env are not persisted.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	values := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	if err := values.Apply(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `taxlens setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
