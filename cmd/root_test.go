package cmd

import (
	"strings"
	"testing"

	"github.com/theirongolddev/taxlens/internal/cli"
	"github.com/theirongolddev/taxlens/internal/ledger"
	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"

	"github.com/shopspring/decimal"
)

func TestParseMoneyFlag(t *testing.T) {
	cases := map[string]string{
		"1200":       "1200",
		"$12,500.50": "12500.5",
		" 0 ":        "0",
	}
	for in, want := range cases {
		got, err := parseMoneyFlag(in)
		if err != nil {
			t.Fatalf("parseMoneyFlag(%q): %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("parseMoneyFlag(%q) = %s, want %s", in, got, want)
		}
	}
	for _, bad := range []string{"abc", "-5", ""} {
		if _, err := parseMoneyFlag(bad); err == nil {
			t.Errorf("parseMoneyFlag(%q) should fail", bad)
		}
	}
}

func TestInputsEstimate(t *testing.T) {
	itemized := decimal.NewFromInt(20000)
	in := &inputs{
		table:    tax.Default2024(),
		status:   tax.Single,
		itemized: &itemized,
		summary: ledger.Summarize([]model.Row{
			model.NewRow(model.Income, "Salary", 80000),
			model.NewRow(model.Expense, "Rent", 15400),
		}),
	}
	res, err := in.estimate()
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// 80000 - 20000 - 15400 = 44600 taxable
	if res.DeductionType != model.Itemized || !res.TaxableIncome.Equal(decimal.NewFromInt(44600)) {
		t.Errorf("result = %+v", res)
	}
}

func TestRenderBreakdown(t *testing.T) {
	brackets, err := tax.Default2024().Brackets(tax.Single)
	if err != nil {
		t.Fatal(err)
	}
	shares := tax.Breakdown(decimal.NewFromInt(50000), brackets)
	out := renderBreakdown(shares, cli.FormatMoney(decimal.NewFromInt(6053)))

	for _, want := range []string{"Bracket breakdown", "10%", "22%", "$2,850.00", "$6,053.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("breakdown missing %q", want)
		}
	}
	if strings.Contains(out, "24%") {
		t.Error("breakdown should stop at the 22% bracket")
	}
}

func TestResultFields(t *testing.T) {
	brackets, _ := tax.Default2024().Brackets(tax.Single)
	res := tax.EstimateTax(tax.Request{Status: tax.Single, TotalIncome: decimal.NewFromInt(64600)},
		decimal.NewFromInt(14600), brackets)
	fields := resultFields(model.Summary{TotalIncome: decimal.NewFromInt(64600)}, res, brackets)

	got := map[string]string{}
	for _, f := range fields {
		got[f.Label] = f.Value
	}
	if got["Estimated federal tax"] != "$6,053.00" {
		t.Errorf("tax field = %q", got["Estimated federal tax"])
	}
	if got["Marginal rate"] != "22.0%" {
		t.Errorf("marginal field = %q", got["Marginal rate"])
	}
	if got["Deduction used"] != "$14,600.00 (Standard)" {
		t.Errorf("deduction field = %q", got["Deduction used"])
	}
}
