package tax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilingStatus is returned for filing statuses outside the
// supported set.
var ErrUnknownFilingStatus = errors.New("unknown filing status")

// FilingStatus selects a bracket schedule and a standard deduction.
type FilingStatus int

const (
	Single FilingStatus = iota + 1
	MarriedFilingJointly
	HeadOfHousehold
)

// Statuses lists every supported filing status in display order.
var Statuses = []FilingStatus{Single, MarriedFilingJointly, HeadOfHousehold}

// String returns the display name, which is also the key used in bracket
// table files.
func (s FilingStatus) String() string {
	switch s {
	case Single:
		return "Single"
	case MarriedFilingJointly:
		return "Married Filing Jointly"
	case HeadOfHousehold:
		return "Head of Household"
	default:
		return fmt.Sprintf("FilingStatus(%d)", int(s))
	}
}

// Slug returns the short command-line form of the status.
func (s FilingStatus) Slug() string {
	switch s {
	case Single:
		return "single"
	case MarriedFilingJointly:
		return "mfj"
	case HeadOfHousehold:
		return "hoh"
	default:
		return ""
	}
}

// Valid reports whether s is one of Statuses.
func (s FilingStatus) Valid() bool {
	return s >= Single && s <= HeadOfHousehold
}

// Next returns the status after s in display order, wrapping around.
func (s FilingStatus) Next() FilingStatus {
	if !s.Valid() || s == HeadOfHousehold {
		return Single
	}
	return s + 1
}

// ParseFilingStatus accepts a display name or a slug, case-insensitively.
// e.g., "Married Filing Jointly", "married-filing-jointly", "mfj"
func ParseFilingStatus(raw string) (FilingStatus, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)

	switch key {
	case "single", "s":
		return Single, nil
	case "married filing jointly", "mfj", "married":
		return MarriedFilingJointly, nil
	case "head of household", "hoh":
		return HeadOfHousehold, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilingStatus, raw)
}
