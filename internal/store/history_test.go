package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func openTemp(t *testing.T) (*History, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	h, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h, path
}

func entry(owed string) Entry {
	return Entry{
		CreatedAt: time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC),
		Year:      2024,
		Status:    tax.HeadOfHousehold,
		Ledgers:   []string{"a.csv", "b.csv"},
		Summary: model.Summary{
			TotalIncome:   d("80000.10"),
			TotalExpenses: d("580"),
			ByCategory: []model.CategoryTotal{
				{Category: "Rent", Amount: d("500")},
				{Category: "Food", Amount: d("80")},
			},
		},
		Result: model.TaxResult{
			AdjustedGrossIncome: d("80000.10"),
			DeductionUsed:       d("21900"),
			DeductionType:       model.Standard,
			StandardDeduction:   d("21900"),
			TaxableIncome:       d("57520.10"),
			EstimatedFederalTax: d(owed),
		},
	}
}

func TestHistory_SaveRecentRoundTrip(t *testing.T) {
	ctx := context.Background()
	h, _ := openTemp(t)

	id, err := h.Save(ctx, entry("6053.01"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want > 0", id)
	}

	got, err := h.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Recent) = %d, want 1", len(got))
	}
	e := got[0]
	if e.ID != id || e.Year != 2024 || e.Status != tax.HeadOfHousehold {
		t.Errorf("entry = %+v", e)
	}
	if !e.CreatedAt.Equal(time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", e.CreatedAt)
	}
	if len(e.Ledgers) != 2 || e.Ledgers[1] != "b.csv" {
		t.Errorf("Ledgers = %v", e.Ledgers)
	}
	if !e.Summary.TotalIncome.Equal(d("80000.10")) || !e.Result.EstimatedFederalTax.Equal(d("6053.01")) {
		t.Errorf("amounts = %s, %s", e.Summary.TotalIncome, e.Result.EstimatedFederalTax)
	}
	if e.Result.DeductionType != model.Standard {
		t.Errorf("DeductionType = %q, want Standard", e.Result.DeductionType)
	}
	if len(e.Summary.ByCategory) != 2 || e.Summary.ByCategory[0].Category != "Rent" || !e.Summary.ByCategory[1].Amount.Equal(d("80")) {
		t.Errorf("ByCategory = %v", e.Summary.ByCategory)
	}
}

func TestHistory_RecentNewestFirstAndLimit(t *testing.T) {
	ctx := context.Background()
	h, _ := openTemp(t)

	for _, v := range []string{"1", "2", "3"} {
		if _, err := h.Save(ctx, entry(v)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	got, err := h.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Recent) = %d, want 2", len(got))
	}
	if !got[0].Result.EstimatedFederalTax.Equal(d("3")) || !got[1].Result.EstimatedFederalTax.Equal(d("2")) {
		t.Errorf("order = %s, %s; want 3, 2", got[0].Result.EstimatedFederalTax, got[1].Result.EstimatedFederalTax)
	}

	trend, err := h.Trend(ctx, 2)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(trend) != 2 || !trend[0].Equal(d("2")) || !trend[1].Equal(d("3")) {
		t.Errorf("Trend = %v, want [2 3]", trend)
	}

	n, err := h.Count(ctx)
	if err != nil || n != 3 {
		t.Errorf("Count = %d, %v; want 3", n, err)
	}
}

func TestHistory_Delete(t *testing.T) {
	ctx := context.Background()
	h, _ := openTemp(t)

	id, err := h.Save(ctx, entry("10"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := h.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, _ := h.Count(ctx); n != 0 {
		t.Errorf("Count after delete = %d, want 0", n)
	}
	var orphans int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM estimate_categories").Scan(&orphans); err != nil {
		t.Fatal(err)
	}
	if orphans != 0 {
		t.Errorf("%d category rows survived delete", orphans)
	}
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	h, path := openTemp(t)
	if _, err := h.Save(ctx, entry("1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = h.Close()

	h2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = h2.Close() }()
	if n, err := h2.Count(ctx); err != nil || n != 1 {
		t.Errorf("Count after reopen = %d, %v; want 1", n, err)
	}
}

func TestSave_DefaultsCreatedAt(t *testing.T) {
	ctx := context.Background()
	h, _ := openTemp(t)

	e := entry("1")
	e.CreatedAt = time.Time{}
	before := time.Now().Add(-time.Second)
	if _, err := h.Save(ctx, e); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := h.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if got[0].CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want about now", got[0].CreatedAt)
	}
}
