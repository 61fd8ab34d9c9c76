// Package ledger reads Type/Category/Amount CSV ledgers and summarizes them.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taxlens/internal/model"
)

// Column names a ledger header must contain. Matching is exact.
const (
	ColType     = "Type"
	ColCategory = "Category"
	ColAmount   = "Amount"
)

// RequiredColumns lists the header names every ledger must carry.
var RequiredColumns = []string{ColType, ColCategory, ColAmount}

// ErrMissingColumns is wrapped by MissingColumnsError.
var ErrMissingColumns = errors.New("ledger missing required columns")

// MissingColumnsError names the required columns absent from a header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("ledger missing columns: %s. Required: %s",
		strings.Join(e.Missing, ", "), strings.Join(RequiredColumns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// ParseResult holds the rows read from one ledger.
type ParseResult struct {
	Source string
	Rows   []model.Row
	// Dropped counts rows whose Amount was empty, non-numeric or negative.
	Dropped int
}

// ParseFile opens path and parses it as a ledger.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path) //nolint:gosec // ledger path is supplied by the user
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	pr, err := Parse(f)
	pr.Source = path
	return pr, err
}

// Parse reads a CSV ledger with a header row. Extra columns are ignored.
// A header without Type, Category and Amount fails with *MissingColumnsError.
func Parse(r io.Reader) (ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return ParseResult{}, &MissingColumnsError{Missing: RequiredColumns}
	}
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading ledger header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return ParseResult{}, err
	}

	var res ParseResult
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("reading ledger: %w", err)
		}
		line, _ := cr.FieldPos(0)

		amount, ok := parseAmount(cell(rec, idx[ColAmount]))
		if !ok {
			res.Dropped++
			continue
		}
		res.Rows = append(res.Rows, model.Row{
			Kind:     model.Kind(strings.TrimSpace(cell(rec, idx[ColType]))),
			Category: strings.TrimSpace(cell(rec, idx[ColCategory])),
			Amount:   amount,
			Line:     line,
		})
	}
	return res, nil
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return idx, nil
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// parseAmount coerces a cell to a non-negative decimal.
// e.g., "12.50" -> 12.50, "1e3" -> 1000, "abc" / "" / "-4" -> not ok
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
