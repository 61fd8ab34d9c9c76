package model

import "github.com/shopspring/decimal"

// DeductionType records which deduction path the resolver took.
type DeductionType string

const (
	Standard DeductionType = "Standard"
	Itemized DeductionType = "Itemized"
)

// TaxResult is the outcome of one estimate. All amounts are rounded to
// cents and non-negative.
type TaxResult struct {
	AdjustedGrossIncome decimal.Decimal
	DeductionUsed       decimal.Decimal
	DeductionType       DeductionType
	StandardDeduction   decimal.Decimal
	TaxableIncome       decimal.Decimal
	EstimatedFederalTax decimal.Decimal
}
