// Package tax computes simplified U.S. federal income tax estimates from
// progressive bracket schedules.
package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedBrackets is returned when a bracket schedule violates the
// ordering or range rules checked by ValidateBrackets.
var ErrMalformedBrackets = errors.New("malformed bracket schedule")

// Bracket is one [Lower, Upper) span of a progressive schedule taxed at Rate.
// An invalid Upper means the bracket has no upper bound.
type Bracket struct {
	Lower decimal.Decimal
	Upper decimal.NullDecimal
	Rate  decimal.Decimal
}

// Bounded returns a bracket covering [lower, upper).
func Bounded(lower, upper, rate float64) Bracket {
	return Bracket{
		Lower: decimal.NewFromFloat(lower),
		Upper: decimal.NewNullDecimal(decimal.NewFromFloat(upper)),
		Rate:  decimal.NewFromFloat(rate),
	}
}

// Unbounded returns a top bracket covering [lower, ∞).
func Unbounded(lower, rate float64) Bracket {
	return Bracket{
		Lower: decimal.NewFromFloat(lower),
		Rate:  decimal.NewFromFloat(rate),
	}
}

// IsUnbounded reports whether the bracket extends to infinity.
func (b Bracket) IsUnbounded() bool {
	return !b.Upper.Valid
}

// span returns the slice of income that falls inside the bracket, never
// negative.
func (b Bracket) span(income decimal.Decimal) decimal.Decimal {
	top := income
	if b.Upper.Valid && b.Upper.Decimal.LessThan(top) {
		top = b.Upper.Decimal
	}
	s := top.Sub(b.Lower)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

// ComputeTax returns the progressive tax owed on taxableIncome. Income at or
// below zero owes nothing. The result is not rounded.
func ComputeTax(taxableIncome decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	for _, b := range brackets {
		if !taxableIncome.GreaterThan(b.Lower) {
			continue
		}
		tax = tax.Add(b.span(taxableIncome).Mul(b.Rate))
	}

	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// BracketShare is the portion of an income taxed inside one bracket.
type BracketShare struct {
	Bracket Bracket
	Amount  decimal.Decimal
	Tax     decimal.Decimal
}

// Breakdown lists the brackets that contribute to the tax on taxableIncome.
// The sum of the shares' Tax equals ComputeTax for the same inputs.
func Breakdown(taxableIncome decimal.Decimal, brackets []Bracket) []BracketShare {
	if !taxableIncome.IsPositive() {
		return nil
	}

	var shares []BracketShare
	for _, b := range brackets {
		if !taxableIncome.GreaterThan(b.Lower) {
			continue
		}
		amt := b.span(taxableIncome)
		shares = append(shares, BracketShare{
			Bracket: b,
			Amount:  amt,
			Tax:     amt.Mul(b.Rate),
		})
	}
	return shares
}

// MarginalRate returns the rate applied to the last dollar of taxableIncome,
// or zero when nothing is taxable.
func MarginalRate(taxableIncome decimal.Decimal, brackets []Bracket) decimal.Decimal {
	rate := decimal.Zero
	for _, b := range brackets {
		if taxableIncome.GreaterThan(b.Lower) {
			rate = b.Rate
		}
	}
	return rate
}

// EffectiveRate returns tax divided by income, or zero for non-positive income.
func EffectiveRate(taxableIncome decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}
	return ComputeTax(taxableIncome, brackets).Div(taxableIncome)
}

// ValidateBrackets checks that the schedule starts at zero, is contiguous and
// ascending, has rates in [0, 1] and ends with a single unbounded bracket.
func ValidateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: no brackets", ErrMalformedBrackets)
	}

	one := decimal.NewFromInt(1)
	for i, b := range brackets {
		if b.Lower.IsNegative() {
			return fmt.Errorf("%w: bracket %d: negative lower bound %s", ErrMalformedBrackets, i, b.Lower)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d: rate %s outside [0, 1]", ErrMalformedBrackets, i, b.Rate)
		}
		if b.Upper.Valid && !b.Lower.LessThan(b.Upper.Decimal) {
			return fmt.Errorf("%w: bracket %d: lower bound %s not below upper bound %s",
				ErrMalformedBrackets, i, b.Lower, b.Upper.Decimal)
		}

		last := i == len(brackets)-1
		if !last && b.IsUnbounded() {
			return fmt.Errorf("%w: bracket %d: only the last bracket may be unbounded", ErrMalformedBrackets, i)
		}
		if last && !b.IsUnbounded() {
			return fmt.Errorf("%w: last bracket must be unbounded", ErrMalformedBrackets)
		}

		if i == 0 {
			if !b.Lower.IsZero() {
				return fmt.Errorf("%w: first bracket must start at 0, got %s", ErrMalformedBrackets, b.Lower)
			}
			continue
		}
		prev := brackets[i-1].Upper.Decimal
		switch {
		case b.Lower.GreaterThan(prev):
			return fmt.Errorf("%w: gap between %s and %s", ErrMalformedBrackets, prev, b.Lower)
		case b.Lower.LessThan(prev):
			return fmt.Errorf("%w: bracket %d overlaps the previous one", ErrMalformedBrackets, i)
		}
	}
	return nil
}
