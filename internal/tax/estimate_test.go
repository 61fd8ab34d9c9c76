package tax

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
)

func ptr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestEstimateTax_DeductionSelection(t *testing.T) {
	brackets := []Bracket{Unbounded(0, 0.1)}
	standard := d("14600")

	cases := []struct {
		name     string
		force    bool
		itemized *decimal.Decimal
		wantType model.DeductionType
		wantUsed string
	}{
		{"forced below standard", true, ptr("5000"), model.Itemized, "5000"},
		{"forced with nothing entered", true, nil, model.Itemized, "0"},
		{"itemized larger", false, ptr("20000"), model.Itemized, "20000"},
		{"tie goes to standard", false, ptr("14600"), model.Standard, "14600"},
		{"itemized smaller", false, ptr("9000"), model.Standard, "14600"},
		{"absent", false, nil, model.Standard, "14600"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := EstimateTax(Request{
				Status:        Single,
				TotalIncome:   d("60000"),
				ForceItemize:  tc.force,
				ItemizedTotal: tc.itemized,
			}, standard, brackets)
			if res.DeductionType != tc.wantType {
				t.Errorf("DeductionType = %s, want %s", res.DeductionType, tc.wantType)
			}
			if !res.DeductionUsed.Equal(d(tc.wantUsed)) {
				t.Errorf("DeductionUsed = %s, want %s", res.DeductionUsed, tc.wantUsed)
			}
			if !res.StandardDeduction.Equal(standard) {
				t.Errorf("StandardDeduction = %s, want %s", res.StandardDeduction, standard)
			}
		})
	}
}

func TestEstimateTax_ExpensesReduceTaxableIncome(t *testing.T) {
	res := EstimateTax(Request{
		Status:        Single,
		TotalIncome:   d("80000"),
		TotalExpenses: d("15400"),
	}, d("14600"), singleBrackets(t))

	if !res.AdjustedGrossIncome.Equal(d("80000")) {
		t.Errorf("AGI = %s, want 80000", res.AdjustedGrossIncome)
	}
	if !res.TaxableIncome.Equal(d("50000")) {
		t.Errorf("TaxableIncome = %s, want 50000", res.TaxableIncome)
	}
	if !res.EstimatedFederalTax.Equal(d("6053")) {
		t.Errorf("EstimatedFederalTax = %s, want 6053", res.EstimatedFederalTax)
	}
}

func TestEstimateTax_FloorsAtZero(t *testing.T) {
	res := EstimateTax(Request{
		Status:        Single,
		TotalIncome:   d("-2500"),
		TotalExpenses: d("100"),
	}, d("14600"), singleBrackets(t))

	if !res.AdjustedGrossIncome.IsZero() {
		t.Errorf("AGI = %s, want 0", res.AdjustedGrossIncome)
	}
	if !res.TaxableIncome.IsZero() {
		t.Errorf("TaxableIncome = %s, want 0", res.TaxableIncome)
	}
	if !res.EstimatedFederalTax.IsZero() {
		t.Errorf("EstimatedFederalTax = %s, want 0", res.EstimatedFederalTax)
	}
}

func TestEstimateTax_RoundsOnlyTheResult(t *testing.T) {
	brackets := []Bracket{Unbounded(0, 0.015)}
	res := EstimateTax(Request{
		Status:      Single,
		TotalIncome: d("1000.005"),
	}, decimal.Zero, brackets)

	if !res.TaxableIncome.Equal(d("1000.01")) {
		t.Errorf("TaxableIncome = %s, want 1000.01", res.TaxableIncome)
	}
	// 1000.005 * 0.015 = 15.000075 -> 15.00, computed before rounding income.
	if !res.EstimatedFederalTax.Equal(d("15")) {
		t.Errorf("EstimatedFederalTax = %s, want 15.00", res.EstimatedFederalTax)
	}
}

func TestTableEstimate(t *testing.T) {
	res, err := Default2024().Estimate(Request{
		Status:      MarriedFilingJointly,
		TotalIncome: d("100000"),
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	// taxable 70800: 23200*0.10 + 47600*0.12 = 2320 + 5712
	if !res.TaxableIncome.Equal(d("70800")) {
		t.Errorf("TaxableIncome = %s, want 70800", res.TaxableIncome)
	}
	if !res.EstimatedFederalTax.Equal(d("8032")) {
		t.Errorf("EstimatedFederalTax = %s, want 8032", res.EstimatedFederalTax)
	}
}

func TestTableEstimate_UnknownStatusFails(t *testing.T) {
	_, err := Default2024().Estimate(Request{Status: FilingStatus(42), TotalIncome: d("1000")})
	if !errors.Is(err, ErrUnknownFilingStatus) {
		t.Fatalf("err = %v, want ErrUnknownFilingStatus", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Year != 2024 {
		t.Fatalf("err = %#v, want *StatusError for 2024", err)
	}
}

func TestTableEstimate_MissingScheduleFails(t *testing.T) {
	tbl, err := NewTable(2024,
		map[FilingStatus][]Bracket{Single: {Unbounded(0, 0.1)}},
		map[FilingStatus]decimal.Decimal{Single: d("100"), HeadOfHousehold: d("200")},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	_, err = tbl.Estimate(Request{Status: HeadOfHousehold, TotalIncome: d("1000")})
	if !errors.Is(err, ErrNoBrackets) {
		t.Fatalf("err = %v, want ErrNoBrackets", err)
	}
}

func TestStandardDeduction(t *testing.T) {
	want := map[FilingStatus]string{
		Single:               "14600",
		MarriedFilingJointly: "29200",
		HeadOfHousehold:      "21900",
	}
	for status, amt := range want {
		got, ok := Default2024().StandardDeduction(status)
		if !ok || !got.Equal(d(amt)) {
			t.Errorf("StandardDeduction(%s) = %s, %v; want %s, true", status, got, ok, amt)
		}
	}
	if got, ok := Default2024().StandardDeduction(0); ok || !got.IsZero() {
		t.Errorf("StandardDeduction(0) = %s, %v; want 0, false", got, ok)
	}
}

func TestWithStandardDeductions_DoesNotMutateDefault(t *testing.T) {
	custom, err := Default2024().WithStandardDeductions(map[FilingStatus]decimal.Decimal{Single: d("1000")})
	if err != nil {
		t.Fatalf("WithStandardDeductions: %v", err)
	}
	if got, _ := custom.StandardDeduction(Single); !got.Equal(d("1000")) {
		t.Errorf("custom Single = %s, want 1000", got)
	}
	if got, _ := Default2024().StandardDeduction(Single); !got.Equal(d("14600")) {
		t.Errorf("default Single = %s, want 14600 (mutated)", got)
	}
}

func TestTableBreakdown_MatchesEstimate(t *testing.T) {
	// Sub-cent ledger totals: taxable income 50000.004 rounds to 50000.00,
	// but the tax is computed on the unrounded value.
	req := Request{
		Status:        Single,
		TotalIncome:   d("64600.009"),
		TotalExpenses: d("0.005"),
	}
	res, err := Default2024().Estimate(req)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	shares, err := Default2024().Breakdown(req)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	sum := decimal.Zero
	for _, sh := range shares {
		sum = sum.Add(sh.Tax)
	}
	if !sum.Round(2).Equal(res.EstimatedFederalTax) {
		t.Errorf("shares sum to %s, estimate is %s", sum.Round(2), res.EstimatedFederalTax)
	}
	if got := shares[len(shares)-1].Amount; !got.Equal(d("2850.004")) {
		t.Errorf("top share amount = %s, want 2850.004", got)
	}

	if _, err := Default2024().Breakdown(Request{Status: FilingStatus(9)}); !errors.Is(err, ErrUnknownFilingStatus) {
		t.Errorf("unknown status err = %v, want ErrUnknownFilingStatus", err)
	}
}
