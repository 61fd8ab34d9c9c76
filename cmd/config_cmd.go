package cmd

import (
	"fmt"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Filing status: %s\n", cfg.General.FilingStatus)
	if cfg.General.Ledger != "" {
		fmt.Printf("    Ledger:        %s\n", cfg.General.Ledger)
	} else {
		fmt.Println("    Ledger:        not set")
	}
	fmt.Println()

	fmt.Println("  [Deductions]")
	fmt.Printf("    Force itemize:  %v\n", cfg.Deductions.ForceItemize)
	if v := cfg.ItemizedTotal(); v != nil {
		fmt.Printf("    Itemized total: %s\n", cli.FormatMoney(*v))
	} else {
		fmt.Println("    Itemized total: not set")
	}
	fmt.Println()

	fmt.Println("  [Tables]")
	if cfg.Tables.BracketsFile != "" {
		fmt.Printf("    Brackets file: %s\n", cfg.Tables.BracketsFile)
	} else {
		fmt.Println("    Brackets file: built-in 2024")
	}
	for name, amt := range cfg.Tables.StandardDeduction {
		fmt.Printf("    Standard deduction (%s): $%.2f\n", name, amt)
	}
	fmt.Println()

	fmt.Println("  [Advice]")
	fmt.Printf("    Hints: %d\n", len(cfg.Advisor().Hints()))
	fmt.Println()

	fmt.Println("  [History]")
	fmt.Printf("    Enabled: %v\n", cfg.History.Enabled)
	fmt.Printf("    Path:    %s\n", cfg.HistoryPath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `taxlens setup` to reconfigure.")
	return nil
}
