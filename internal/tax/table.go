package tax

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoBrackets is returned when a table has no schedule for a status.
	ErrNoBrackets = errors.New("no bracket schedule for filing status")
	// ErrUnsupportedYear is returned for tax years without built-in constants.
	ErrUnsupportedYear = errors.New("unsupported tax year")
)

// Table holds the bracket schedules and standard deductions for one tax year.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	year     int
	brackets map[FilingStatus][]Bracket
	standard map[FilingStatus]decimal.Decimal
}

// NewTable validates every schedule and returns a table owning copies of the
// given maps.
func NewTable(year int, brackets map[FilingStatus][]Bracket, standard map[FilingStatus]decimal.Decimal) (*Table, error) {
	t := &Table{
		year:     year,
		brackets: make(map[FilingStatus][]Bracket, len(brackets)),
		standard: maps.Clone(standard),
	}
	if t.standard == nil {
		t.standard = make(map[FilingStatus]decimal.Decimal)
	}
	for status, schedule := range brackets {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownFilingStatus, int(status))
		}
		if err := ValidateBrackets(schedule); err != nil {
			return nil, fmt.Errorf("%s: %w", status, err)
		}
		t.brackets[status] = slices.Clone(schedule)
	}
	for status, amt := range t.standard {
		if amt.IsNegative() {
			return nil, fmt.Errorf("%s: negative standard deduction %s", status, amt)
		}
	}
	return t, nil
}

// Year returns the tax year the table describes.
func (t *Table) Year() int { return t.year }

// Brackets returns a copy of the schedule for status.
func (t *Table) Brackets(status FilingStatus) ([]Bracket, error) {
	schedule, ok := t.brackets[status]
	if !ok || len(schedule) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBrackets, status)
	}
	return slices.Clone(schedule), nil
}

// StandardDeduction returns the standard deduction for status. Unknown
// statuses report zero and false.
func (t *Table) StandardDeduction(status FilingStatus) (decimal.Decimal, bool) {
	amt, ok := t.standard[status]
	if !ok {
		return decimal.Zero, false
	}
	return amt, true
}

// WithStandardDeductions returns a copy of t with the given deductions
// replacing the built-in ones.
func (t *Table) WithStandardDeductions(overrides map[FilingStatus]decimal.Decimal) (*Table, error) {
	standard := maps.Clone(t.standard)
	maps.Copy(standard, overrides)
	return NewTable(t.year, t.brackets, standard)
}

// withBrackets returns a copy of t whose schedules are replaced.
func (t *Table) withBrackets(brackets map[FilingStatus][]Bracket) (*Table, error) {
	return NewTable(t.year, brackets, t.standard)
}

var default2024 = mustTable(NewTable(2024,
	map[FilingStatus][]Bracket{
		Single: {
			Bounded(0, 11600, 0.10),
			Bounded(11600, 47150, 0.12),
			Bounded(47150, 100525, 0.22),
			Bounded(100525, 191950, 0.24),
			Bounded(191950, 243725, 0.32),
			Bounded(243725, 609350, 0.35),
			Unbounded(609350, 0.37),
		},
		MarriedFilingJointly: {
			Bounded(0, 23200, 0.10),
			Bounded(23200, 94300, 0.12),
			Bounded(94300, 201050, 0.22),
			Bounded(201050, 383900, 0.24),
			Bounded(383900, 487450, 0.32),
			Bounded(487450, 731200, 0.35),
			Unbounded(731200, 0.37),
		},
		HeadOfHousehold: {
			Bounded(0, 16550, 0.10),
			Bounded(16550, 63100, 0.12),
			Bounded(63100, 100500, 0.22),
			Bounded(100500, 191950, 0.24),
			Bounded(191950, 243700, 0.32),
			Bounded(243700, 609350, 0.35),
			Unbounded(609350, 0.37),
		},
	},
	map[FilingStatus]decimal.Decimal{
		Single:               decimal.NewFromInt(14600),
		MarriedFilingJointly: decimal.NewFromInt(29200),
		HeadOfHousehold:      decimal.NewFromInt(21900),
	},
))

// Default2024 returns the built-in 2024 federal table.
func Default2024() *Table { return default2024 }

// ForYear returns the built-in table for year.
func ForYear(year int) (*Table, error) {
	switch year {
	case 0, 2024:
		return default2024, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedYear, year)
}

func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return t
}
