package model

import "github.com/shopspring/decimal"

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Summary holds the ledger totals fed to the deduction resolver.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	// ByCategory is ordered by Amount descending, ties by first appearance.
	ByCategory []CategoryTotal
}

// Net returns income minus expenses. It can be negative.
func (s Summary) Net() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses)
}

// Category returns the total for a category and whether it was present.
func (s Summary) Category(name string) (decimal.Decimal, bool) {
	for _, c := range s.ByCategory {
		if c.Category == name {
			return c.Amount, true
		}
	}
	return decimal.Zero, false
}
