// Package model defines domain types for taxlens ledgers and estimates.
package model

import "github.com/shopspring/decimal"

// Kind classifies a ledger row.
type Kind string

const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// Row is one validated ledger line. Amount is never negative.
type Row struct {
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Line     int // 1-based line in the source file, 0 when built in code
}

// NewRow is a convenience constructor used by tests and callers that
// build ledgers in code.
func NewRow(kind Kind, category string, amount float64) Row {
	return Row{Kind: kind, Category: category, Amount: decimal.NewFromFloat(amount)}
}
