package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/advisor"
	"github.com/theirongolddev/taxlens/internal/tax"
)

// ErrInvalid is wrapped by the error Validate returns.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if _, err := tax.ParseFilingStatus(c.General.FilingStatus); err != nil {
		problems = append(problems, fmt.Sprintf("general.filing_status %q: must be one of single, mfj, hoh", c.General.FilingStatus))
	}
	if v := c.Deductions.ItemizedTotal; v != nil {
		if p := checkAmount(*v); p != "" {
			problems = append(problems, fmt.Sprintf("deductions.itemized_total %v: %s", *v, p))
		}
	}
	for name, amt := range c.Tables.StandardDeduction {
		if _, err := tax.ParseFilingStatus(name); err != nil {
			problems = append(problems, fmt.Sprintf("tables.standard_deduction: unknown filing status %q", name))
		}
		if p := checkAmount(amt); p != "" {
			problems = append(problems, fmt.Sprintf("tables.standard_deduction.%s %v: %s", name, amt, p))
		}
	}
	if f := c.Tables.BracketsFile; f != "" {
		if _, err := os.Stat(f); err != nil {
			problems = append(problems, fmt.Sprintf("tables.brackets_file %s: %v", f, err))
		}
	}
	for i, h := range c.Advice.Hints {
		if strings.TrimSpace(h.Category) == "" || strings.TrimSpace(h.Text) == "" {
			problems = append(problems, fmt.Sprintf("advice.hints[%d]: category and text are required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// checkAmount describes what is wrong with a configured money amount, or
// returns "" when it is usable.
func checkAmount(v float64) string {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return "must be a finite number"
	case v < 0:
		return "must not be negative"
	}
	return ""
}

// FilingStatus parses the configured filing status.
func (c Config) FilingStatus() (tax.FilingStatus, error) {
	return tax.ParseFilingStatus(c.General.FilingStatus)
}

// ItemizedTotal returns the configured itemized deduction, nil when unset
// or not a finite number.
func (c Config) ItemizedTotal() *decimal.Decimal {
	v := c.Deductions.ItemizedTotal
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

// TaxTable builds the 2024 table with the configured bracket file and
// standard deduction overrides applied.
func (c Config) TaxTable() (*tax.Table, error) {
	t := tax.Default2024()

	if len(c.Tables.StandardDeduction) > 0 {
		overrides := make(map[tax.FilingStatus]decimal.Decimal, len(c.Tables.StandardDeduction))
		for name, amt := range c.Tables.StandardDeduction {
			status, err := tax.ParseFilingStatus(name)
			if err != nil {
				return nil, fmt.Errorf("tables.standard_deduction: %w", err)
			}
			if p := checkAmount(amt); p != "" {
				return nil, fmt.Errorf("tables.standard_deduction.%s: %s", name, p)
			}
			overrides[status] = decimal.NewFromFloat(amt)
		}
		var err error
		if t, err = t.WithStandardDeductions(overrides); err != nil {
			return nil, fmt.Errorf("tables.standard_deduction: %w", err)
		}
	}

	if c.Tables.BracketsFile != "" {
		loaded, err := tax.LoadTable(c.Tables.BracketsFile, t)
		if err != nil {
			return nil, err
		}
		t = loaded
	}
	return t, nil
}

// Advisor returns an advisor over the configured hints, or the built-in
// table when none are configured.
func (c Config) Advisor() *advisor.Advisor {
	if len(c.Advice.Hints) == 0 {
		return advisor.New(advisor.Default)
	}
	return advisor.New(c.Advice.Hints)
}
