// Package advisor turns the expense categories of a ledger into deduction
// suggestions. It is rule-based and has no notion of real tax law.
package advisor

import (
	"strings"

	"github.com/theirongolddev/taxlens/internal/model"
)

// Hint is advisory text shown when a ledger has expenses in Category.
type Hint struct {
	Category string `toml:"category"`
	Text     string `toml:"text"`
}

// Suggestion is one line of advice.
type Suggestion struct {
	Category string
	Text     string
}

func (s Suggestion) String() string {
	return s.Category + ": " + s.Text
}

// Category names the fallbacks key on.
const (
	RetirementCategory = "Retirement"
	HealthCategory     = "Health"
	GeneralCategory    = "General"
)

// Default is the built-in hint table, in display order.
var Default = []Hint{
	{"Home Office", "Home office costs may be deductible if used regularly and exclusively for business."},
	{"Vehicle", "Consider standard mileage vs. actual expenses; track business miles."},
	{"Charity", "Charitable donations may be itemized; keep receipts from qualified orgs."},
	{"Education", "Some education expenses may qualify for Lifetime Learning Credit (limits apply)."},
	{"Health", "HSA contributions can be tax-advantaged if eligible."},
	{"Retirement", "IRA/401(k) contributions may reduce taxable income (limits apply)."},
	{"Supplies", "Ordinary & necessary business supplies are generally deductible."},
	{"Utilities", "Portions used for business could be deductible depending on context."},
}

var (
	retirementFallback = Suggestion{RetirementCategory, "Consider starting/boosting IRA/401(k) contributions."}
	healthFallback     = Suggestion{HealthCategory, "Consider HSA contributions if eligible."}
	generalFallback    = Suggestion{GeneralCategory, "Track itemizable categories (Charity, Medical, Taxes) to compare vs. standard deduction."}
)

// Advisor matches ledger categories against a fixed hint table.
// It is immutable and safe for concurrent use.
type Advisor struct {
	hints []Hint
}

// New returns an advisor over a copy of hints. Hints with a blank category
// or text are skipped.
func New(hints []Hint) *Advisor {
	a := &Advisor{hints: make([]Hint, 0, len(hints))}
	for _, h := range hints {
		h.Category = strings.TrimSpace(h.Category)
		h.Text = strings.TrimSpace(h.Text)
		if h.Category == "" || h.Text == "" {
			continue
		}
		a.hints = append(a.hints, h)
	}
	return a
}

// Hints returns a copy of the advisor's table.
func (a *Advisor) Hints() []Hint {
	return append([]Hint(nil), a.hints...)
}

// Recommend returns one suggestion per hint whose category has at least one
// expense row, in table order. A retirement suggestion follows when the
// ledger has no Retirement expenses, then an HSA suggestion when it has no
// Health expenses. The general suggestion is returned only if nothing else
// applies.
func (a *Advisor) Recommend(rows []model.Row) []Suggestion {
	present := make(map[string]bool)
	for _, r := range rows {
		if r.Kind == model.Expense {
			present[r.Category] = true
		}
	}

	var out []Suggestion
	for _, h := range a.hints {
		if present[h.Category] {
			out = append(out, Suggestion{Category: h.Category, Text: h.Text})
		}
	}
	if !present[RetirementCategory] {
		out = append(out, retirementFallback)
	}
	if !present[HealthCategory] {
		out = append(out, healthFallback)
	}
	if len(out) == 0 {
		out = append(out, generalFallback)
	}
	return out
}

var defaultAdvisor = New(Default)

// Recommend runs the default hint table over rows.
func Recommend(rows []model.Row) []Suggestion {
	return defaultAdvisor.Recommend(rows)
}
