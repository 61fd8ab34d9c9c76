package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/config"
	"github.com/theirongolddev/taxlens/internal/tax"
	"github.com/theirongolddev/taxlens/internal/tui/theme"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	FilingStatus string
	Ledger       string
	ForceItemize bool
	Itemized     string
	Theme        string
	History      bool
}

// SetupValuesFrom prefills the form from cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	v := SetupValues{
		FilingStatus: tax.Single.String(),
		Ledger:       cfg.General.Ledger,
		ForceItemize: cfg.Deductions.ForceItemize,
		Theme:        cfg.Appearance.Theme,
		History:      cfg.History.Enabled,
	}
	if s, err := cfg.FilingStatus(); err == nil {
		v.FilingStatus = s.String()
	}
	if cfg.Deductions.ItemizedTotal != nil {
		v.Itemized = strconv.FormatFloat(*cfg.Deductions.ItemizedTotal, 'f', -1, 64)
	}
	return v
}

// Apply writes the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) error {
	status, err := tax.ParseFilingStatus(v.FilingStatus)
	if err != nil {
		return err
	}
	cfg.General.FilingStatus = status.String()
	cfg.General.Ledger = strings.TrimSpace(v.Ledger)
	cfg.Deductions.ForceItemize = v.ForceItemize
	cfg.Deductions.ItemizedTotal = nil
	if s := strings.TrimSpace(v.Itemized); s != "" {
		f, err := parseItemized(s)
		if err != nil {
			return err
		}
		cfg.Deductions.ItemizedTotal = &f
	}
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	cfg.History.Enabled = v.History
	return nil
}

func parseItemized(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	if err != nil {
		return 0, fmt.Errorf("itemized total %q is not a number", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("itemized total must not be negative")
	}
	return d.InexactFloat64(), nil
}

// NewSetupForm builds the first-run setup form bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	statusOpts := make([]huh.Option[string], 0, len(tax.Statuses))
	for _, s := range tax.Statuses {
		statusOpts = append(statusOpts, huh.NewOption(s.String(), s.String()))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to taxlens").
				Description("A few defaults for your estimates. Run `taxlens setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Filing status").
				Options(statusOpts...).
				Value(&v.FilingStatus),
			huh.NewInput().
				Title("Default ledger CSV").
				Description("Needs Type, Category and Amount columns. Leave empty to pass --ledger each time.").
				Value(&v.Ledger).
				Validate(validateLedgerPath),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Itemized deduction total").
				Description("Leave empty if you don't itemize.").
				Value(&v.Itemized).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := parseItemized(strings.TrimSpace(s))
					return err
				}),
			huh.NewConfirm().
				Title("Always use the itemized total?").
				Value(&v.ForceItemize),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewConfirm().
				Title("Keep a history of estimates?").
				Value(&v.History),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateLedgerPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
