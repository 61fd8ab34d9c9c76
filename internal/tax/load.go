package tax

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a bracket table file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawTable is the on-disk shape: status name -> [[lower, upper|null, rate], ...].
// Numbers are kept as text so no precision is lost before decimal parsing.
type rawTable map[string][][]*string

// LoadTable reads a bracket table file and returns a table with base's year
// and standard deductions and the file's schedules.
func LoadTable(path string, base *Table) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the user's config or flags
	if err != nil {
		return nil, fmt.Errorf("opening bracket table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := DecodeTable(f, FormatFromPath(path), base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DecodeTable parses a bracket table in the given format. Any malformed
// entry fails the whole table.
func DecodeTable(r io.Reader, format Format, base *Table) (*Table, error) {
	raw, err := decodeRaw(r, format)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: table has no filing statuses", ErrMalformedBrackets)
	}

	schedules := make(map[FilingStatus][]Bracket, len(raw))
	for name, triples := range raw {
		status, err := statusFromKey(name)
		if err != nil {
			return nil, err
		}
		if _, dup := schedules[status]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrMalformedBrackets, status)
		}
		schedule, err := parseTriples(triples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		schedules[status] = schedule
	}

	return base.withBrackets(schedules)
}

func decodeRaw(r io.Reader, format Format) (rawTable, error) {
	switch format {
	case FormatYAML:
		var raw rawTable
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing yaml bracket table: %w", err)
		}
		return raw, nil
	case FormatJSON:
		var nums map[string][][]*json.Number
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&nums); err != nil {
			return nil, fmt.Errorf("parsing json bracket table: %w", err)
		}
		raw := make(rawTable, len(nums))
		for name, triples := range nums {
			rows := make([][]*string, len(triples))
			for i, triple := range triples {
				rows[i] = make([]*string, len(triple))
				for j, n := range triple {
					if n != nil {
						s := n.String()
						rows[i][j] = &s
					}
				}
			}
			raw[name] = rows
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown bracket table format %q", format)
	}
}

// statusFromKey matches a table key exactly against the display names.
func statusFromKey(key string) (FilingStatus, error) {
	for _, s := range Statuses {
		if s.String() == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: table key %q", ErrUnknownFilingStatus, key)
}

func parseTriples(triples [][]*string) ([]Bracket, error) {
	out := make([]Bracket, 0, len(triples))
	for i, triple := range triples {
		if len(triple) != 3 {
			return nil, fmt.Errorf("%w: bracket %d has %d fields, want 3", ErrMalformedBrackets, i, len(triple))
		}
		lower, err := parseBound(triple[0], "lower bound")
		if err != nil {
			return nil, fmt.Errorf("bracket %d: %w", i, err)
		}
		rate, err := parseBound(triple[2], "rate")
		if err != nil {
			return nil, fmt.Errorf("bracket %d: %w", i, err)
		}
		b := Bracket{Lower: lower, Rate: rate}
		if triple[1] != nil {
			upper, err := parseBound(triple[1], "upper bound")
			if err != nil {
				return nil, fmt.Errorf("bracket %d: %w", i, err)
			}
			b.Upper = decimal.NewNullDecimal(upper)
		}
		out = append(out, b)
	}
	if err := ValidateBrackets(out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseBound(s *string, what string) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Zero, fmt.Errorf("%w: missing %s", ErrMalformedBrackets, what)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrMalformedBrackets, what, *s)
	}
	return d, nil
}
