package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
)

// Request carries the inputs of one estimate.
type Request struct {
	Status        FilingStatus
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	// ForceItemize uses ItemizedTotal (or zero) even when the standard
	// deduction is larger.
	ForceItemize bool
	// ItemizedTotal is nil when the user entered no itemized amount.
	ItemizedTotal *decimal.Decimal
}

// EstimateTax resolves the deduction and taxable income for req and computes
// the tax with brackets. Results are rounded to cents; intermediate values
// are not.
//
// Expenses are subtracted from AGI in addition to the deduction. This is
// not how federal tax works but is the model taxlens implements.
func EstimateTax(req Request, standard decimal.Decimal, brackets []Bracket) model.TaxResult {
	agi, deduction, kind, taxable := resolve(req, standard)
	owed := ComputeTax(taxable, brackets)

	return model.TaxResult{
		AdjustedGrossIncome: agi.Round(2),
		DeductionUsed:       deduction.Round(2),
		DeductionType:       kind,
		StandardDeduction:   standard.Round(2),
		TaxableIncome:       taxable.Round(2),
		EstimatedFederalTax: owed.Round(2),
	}
}

// resolve picks the deduction and returns AGI and taxable income at full
// precision.
func resolve(req Request, standard decimal.Decimal) (agi, deduction decimal.Decimal, kind model.DeductionType, taxable decimal.Decimal) {
	itemized := decimal.Zero
	if req.ItemizedTotal != nil {
		itemized = *req.ItemizedTotal
	}

	deduction, kind = standard, model.Standard
	if req.ForceItemize || itemized.GreaterThan(standard) {
		deduction, kind = itemized, model.Itemized
	}

	agi = decimal.Max(decimal.Zero, req.TotalIncome)
	taxable = decimal.Max(decimal.Zero, agi.Sub(deduction).Sub(req.TotalExpenses))
	return agi, deduction, kind, taxable
}

// Estimate looks up the standard deduction and schedule for req.Status and
// runs EstimateTax. Statuses without a standard deduction fail with
// ErrUnknownFilingStatus and statuses without a schedule with ErrNoBrackets.
func (t *Table) Estimate(req Request) (model.TaxResult, error) {
	standard, ok := t.StandardDeduction(req.Status)
	if !ok {
		return model.TaxResult{}, &StatusError{Status: req.Status, Year: t.year}
	}
	brackets, err := t.Brackets(req.Status)
	if err != nil {
		return model.TaxResult{}, err
	}
	return EstimateTax(req, standard, brackets), nil
}

// StatusError reports a filing status the table has no standard deduction for.
type StatusError struct {
	Status FilingStatus
	Year   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("no %d standard deduction for %s", e.Year, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUnknownFilingStatus }

// Breakdown returns the per-bracket shares behind Estimate(req). Shares are
// computed on the unrounded taxable income, so their taxes sum to the
// estimate before it is rounded.
func (t *Table) Breakdown(req Request) ([]BracketShare, error) {
	standard, ok := t.StandardDeduction(req.Status)
	if !ok {
		return nil, &StatusError{Status: req.Status, Year: t.year}
	}
	brackets, err := t.Brackets(req.Status)
	if err != nil {
		return nil, err
	}
	_, _, _, taxable := resolve(req, standard)
	return Breakdown(taxable, brackets), nil
}
