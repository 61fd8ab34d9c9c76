// Package cmd implements the taxlens CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/taxlens/internal/advisor"
	"github.com/theirongolddev/taxlens/internal/config"
	"github.com/theirongolddev/taxlens/internal/ledger"
	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagLedgers   []string
	flagStatus    string
	flagItemize   bool
	flagItemized  string
	flagBrackets  string
	flagQuiet     bool
	flagVerbose   bool
	flagNoHistory bool
)

// errNoLedger is returned by commands that need a ledger when none is set.
var errNoLedger = errors.New("no ledger given: pass --ledger or set general.ledger in the config")

var rootCmd = &cobra.Command{
	Use:   "taxlens",
	Short: "Progressive tax estimates from a ledger CSV",
	Long: "Estimate federal income tax from a categorized income/expense ledger.\n" +
		"Educational approximation only: no credits, no AMT, no state tax.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		slog.SetDefault(newLogger(os.Stderr))
	},
	RunE: runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&flagLedgers, "ledger", "f", nil, "Ledger CSV file (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&flagStatus, "status", "s", "", "Filing status: single, mfj, hoh")
	rootCmd.PersistentFlags().BoolVar(&flagItemize, "itemize", false, "Use the itemized total even when the standard deduction is larger")
	rootCmd.PersistentFlags().StringVar(&flagItemized, "itemized", "", "Itemized deduction total")
	rootCmd.PersistentFlags().StringVar(&flagBrackets, "brackets", "", "Bracket table file (.json or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Don't record this estimate")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case flagVerbose:
		level = slog.LevelDebug
	case flagQuiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With("component", "cli")
}

// loadConfig reads .env, the config file and TAXLENS_* variables, then
// applies command-line flags on top.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	if flagStatus != "" {
		cfg.General.FilingStatus = flagStatus
	}
	if flagBrackets != "" {
		cfg.Tables.BracketsFile = flagBrackets
	}
	if flagItemize {
		cfg.Deductions.ForceItemize = true
	}
	if flagNoHistory {
		cfg.History.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// inputs is everything an estimate needs, resolved from config and flags.
type inputs struct {
	cfg      config.Config
	table    *tax.Table
	advisor  *advisor.Advisor
	status   tax.FilingStatus
	itemized *decimal.Decimal
	paths    []string
	ledger   *ledger.LoadResult
	summary  model.Summary
}

func (in *inputs) request() tax.Request {
	return tax.Request{
		Status:        in.status,
		TotalIncome:   in.summary.TotalIncome,
		TotalExpenses: in.summary.TotalExpenses,
		ForceItemize:  in.cfg.Deductions.ForceItemize,
		ItemizedTotal: in.itemized,
	}
}

func (in *inputs) estimate() (model.TaxResult, error) {
	return in.table.Estimate(in.request())
}

// loadTaxInputs resolves config, table and filing status without reading
// a ledger.
func loadTaxInputs() (*inputs, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	table, err := cfg.TaxTable()
	if err != nil {
		return nil, err
	}
	status, err := cfg.FilingStatus()
	if err != nil {
		return nil, err
	}

	itemized := cfg.ItemizedTotal()
	if flagItemized != "" {
		v, err := parseMoneyFlag(flagItemized)
		if err != nil {
			return nil, fmt.Errorf("--itemized: %w", err)
		}
		itemized = &v
	}

	return &inputs{
		cfg:      cfg,
		table:    table,
		advisor:  cfg.Advisor(),
		status:   status,
		itemized: itemized,
	}, nil
}

// loadInputs is the shared loading path of every command that reads a
// ledger.
func loadInputs(ctx context.Context) (*inputs, error) {
	in, err := loadTaxInputs()
	if err != nil {
		return nil, err
	}

	in.paths = flagLedgers
	if len(in.paths) == 0 && in.cfg.General.Ledger != "" {
		in.paths = []string{in.cfg.General.Ledger}
	}
	if len(in.paths) == 0 {
		return nil, errNoLedger
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %d ledger file(s)...\n", len(in.paths))
	}
	in.ledger, err = ledger.LoadFiles(ctx, in.paths)
	if err != nil {
		return nil, err
	}
	for _, f := range in.ledger.Files {
		slog.Debug("parsed ledger", "path", f.Source, "rows", len(f.Rows), "dropped", f.Dropped)
	}
	if in.ledger.Dropped > 0 {
		slog.Warn("dropped ledger rows without a usable amount", "count", in.ledger.Dropped)
	}
	in.summary = ledger.Summarize(in.ledger.Rows)
	return in, nil
}

func parseMoneyFlag(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", s)
	}
	return v, nil
}
