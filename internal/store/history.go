// Package store keeps a SQLite history of past estimates.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
	"github.com/theirongolddev/taxlens/internal/tax"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Entry is one recorded estimate.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Year      int
	Status    tax.FilingStatus
	Ledgers   []string
	Summary   model.Summary
	Result    model.TaxResult
}

// History provides SQLite-backed estimate history.
type History struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path and
// migrates it to the current schema.
func Open(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	if err := Migrate(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Save records e and its category totals, returning the new entry ID.
// A zero CreatedAt is set to the current time.
func (h *History) Save(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	r := e.Result
	res, err := tx.ExecContext(ctx, `INSERT INTO estimates
		(created_at, tax_year, filing_status, ledgers, total_income, total_expenses,
		 agi, deduction_type, deduction_used, standard_deduction, taxable_income, estimated_tax)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.CreatedAt.UTC().Format(time.RFC3339Nano), e.Year, e.Status.String(), strings.Join(e.Ledgers, "\n"),
		e.Summary.TotalIncome, e.Summary.TotalExpenses,
		r.AdjustedGrossIncome, string(r.DeductionType), r.DeductionUsed, r.StandardDeduction,
		r.TaxableIncome, r.EstimatedFederalTax,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting estimate: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, c := range e.Summary.ByCategory {
		_, err = tx.ExecContext(ctx, `INSERT INTO estimate_categories
			(estimate_id, position, category, amount) VALUES (?, ?, ?, ?)`,
			id, i, c.Category, c.Amount,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting category %q: %w", c.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT
		id, created_at, tax_year, filing_status, ledgers, total_income, total_expenses,
		agi, deduction_type, deduction_used, standard_deduction, taxable_income, estimated_tax
		FROM estimates ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e                 Entry
			createdAt, status string
			ledgers, kind     string
		)
		err := rows.Scan(&e.ID, &createdAt, &e.Year, &status, &ledgers,
			&e.Summary.TotalIncome, &e.Summary.TotalExpenses,
			&e.Result.AdjustedGrossIncome, &kind, &e.Result.DeductionUsed,
			&e.Result.StandardDeduction, &e.Result.TaxableIncome, &e.Result.EstimatedFederalTax,
		)
		if err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		e.Status, _ = tax.ParseFilingStatus(status)
		e.Result.DeductionType = model.DeductionType(kind)
		if ledgers != "" {
			e.Ledgers = strings.Split(ledgers, "\n")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		cats, err := h.categories(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Summary.ByCategory = cats
	}
	return entries, nil
}

func (h *History) categories(ctx context.Context, id int64) ([]model.CategoryTotal, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT category, amount FROM estimate_categories
		WHERE estimate_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cats := []model.CategoryTotal{}
	for rows.Next() {
		var c model.CategoryTotal
		if err := rows.Scan(&c.Category, &c.Amount); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Count returns the number of recorded estimates.
func (h *History) Count(ctx context.Context) (int, error) {
	var count int
	err := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM estimates").Scan(&count)
	return count, err
}

// Delete removes an entry and its category totals.
func (h *History) Delete(ctx context.Context, id int64) error {
	_, err := h.db.ExecContext(ctx, "DELETE FROM estimates WHERE id = ?", id)
	return err
}

// Trend returns the estimated tax of the most recent entries, oldest first.
func (h *History) Trend(ctx context.Context, limit int) ([]decimal.Decimal, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT estimated_tax FROM
		(SELECT id, estimated_tax FROM estimates ORDER BY id DESC LIMIT ?) ORDER BY id`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []decimal.Decimal
	for rows.Next() {
		var v decimal.Decimal
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
