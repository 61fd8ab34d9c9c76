package advisor

import (
	"testing"

	"github.com/theirongolddev/taxlens/internal/model"
)

func expenses(categories ...string) []model.Row {
	rows := make([]model.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, model.NewRow(model.Expense, c, 10))
	}
	return rows
}

func categories(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Category
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommend_CharityOnly(t *testing.T) {
	got := Recommend(expenses("Charity", "Charity"))
	want := []string{
		"Charity: Charitable donations may be itemized; keep receipts from qualified orgs.",
		"Retirement: Consider starting/boosting IRA/401(k) contributions.",
		"Health: Consider HSA contributions if eligible.",
	}
	if len(got) != len(want) {
		t.Fatalf("Recommend = %v, want %d suggestions", got, len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecommend_TableOrder(t *testing.T) {
	got := Recommend(expenses("Utilities", "Food", "Vehicle", "Retirement", "Home Office", "Health"))
	want := []string{"Home Office", "Vehicle", "Health", "Retirement", "Utilities"}
	if c := categories(got); !equal(c, want) {
		t.Errorf("categories = %v, want %v", c, want)
	}
}

func TestRecommend_EmptyLedger(t *testing.T) {
	got := Recommend(nil)
	want := []string{RetirementCategory, HealthCategory}
	if c := categories(got); !equal(c, want) {
		t.Errorf("categories = %v, want %v", c, want)
	}
}

func TestRecommend_IgnoresIncomeRows(t *testing.T) {
	rows := []model.Row{
		model.NewRow(model.Income, "Retirement", 500),
		model.NewRow(model.Income, "Charity", 500),
	}
	want := []string{RetirementCategory, HealthCategory}
	if c := categories(Recommend(rows)); !equal(c, want) {
		t.Errorf("categories = %v, want %v", c, want)
	}
}

func TestRecommend_GeneralFallback(t *testing.T) {
	a := New([]Hint{{"Charity", "Keep receipts."}})
	got := a.Recommend(expenses("Retirement", "Health", "Food"))
	if len(got) != 1 || got[0] != generalFallback {
		t.Fatalf("Recommend = %v, want only the general fallback", got)
	}

	// Default table covers Retirement and Health, so the fallback never fires.
	for _, s := range Recommend(expenses("Retirement", "Health")) {
		if s.Category == GeneralCategory {
			t.Errorf("unexpected general fallback: %v", s)
		}
	}
}

func TestNew_SkipsBlankHints(t *testing.T) {
	a := New([]Hint{{" ", "x"}, {"Pets", ""}, {" Pets ", " Vet bills. "}})
	hints := a.Hints()
	if len(hints) != 1 || hints[0] != (Hint{"Pets", "Vet bills."}) {
		t.Fatalf("Hints = %v", hints)
	}
	hints[0].Text = "changed"
	if a.Hints()[0].Text != "Vet bills." {
		t.Error("Hints returned a shared slice")
	}
}
