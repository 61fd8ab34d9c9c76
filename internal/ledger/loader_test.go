package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadFiles_KeepsArgumentOrder(t *testing.T) {
	a := writeLedger(t, "a.csv", "Type,Category,Amount", "Income,Salary,100", "Expense,Food,x")
	b := writeLedger(t, "b.csv", "Type,Category,Amount", "Expense,Rent,40", "Expense,Food,2")
	c := writeLedger(t, "c.csv", "Type,Category,Amount", "Expense,Supplies,9")

	res, err := LoadFiles(context.Background(), []string{c, a, b})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("len(Files) = %d, want 3", len(res.Files))
	}
	if res.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", res.Dropped)
	}

	want := []string{"Supplies", "Salary", "Rent", "Food"}
	if len(res.Rows) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(res.Rows), len(want))
	}
	for i, cat := range want {
		if res.Rows[i].Category != cat {
			t.Errorf("Rows[%d].Category = %q, want %q", i, res.Rows[i].Category, cat)
		}
	}
}

func TestLoadFiles_FailsOnBadFile(t *testing.T) {
	good := writeLedger(t, "good.csv", "Type,Category,Amount", "Income,Salary,100")
	bad := writeLedger(t, "bad.csv", "Kind,Amount", "Income,100")

	_, err := LoadFiles(context.Background(), []string{good, bad})
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("err = %v, want ErrMissingColumns", err)
	}

	_, err = LoadFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFiles_Empty(t *testing.T) {
	res, err := LoadFiles(context.Background(), nil)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(res.Rows))
	}
}

func TestLoadFiles_CancelledContext(t *testing.T) {
	path := writeLedger(t, "a.csv", "Type,Category,Amount", "Income,Salary,100")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadFiles(ctx, []string{path}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
