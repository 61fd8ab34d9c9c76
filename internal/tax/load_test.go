package tax

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const jsonTable = `{
  "Single": [[0, 11600, 0.10], [11600, 47150, 0.12], [47150, 100525, 0.22],
             [100525, 191950, 0.24], [191950, 243725, 0.32],
             [243725, 609350, 0.35], [609350, null, 0.37]],
  "Head of Household": [[0, 1000, 0.05], [1000, null, 0.5]]
}`

const yamlTable = `
Single:
  - [0, 11600, 0.10]
  - [11600, 47150, 0.12]
  - [47150, 100525, 0.22]
  - [100525, 191950, 0.24]
  - [191950, 243725, 0.32]
  - [243725, 609350, 0.35]
  - [609350, null, 0.37]
`

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTable_JSON(t *testing.T) {
	tbl, err := LoadTable(writeTable(t, "brackets.json", jsonTable), Default2024())
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.Year() != 2024 {
		t.Errorf("Year = %d, want 2024", tbl.Year())
	}

	single, err := tbl.Brackets(Single)
	if err != nil {
		t.Fatalf("Brackets(Single): %v", err)
	}
	if got := ComputeTax(d("50000"), single); !got.Equal(d("6053")) {
		t.Errorf("ComputeTax(50000) = %s, want 6053", got)
	}
	if !single[len(single)-1].IsUnbounded() {
		t.Error("null upper bound did not load as unbounded")
	}

	hoh, err := tbl.Brackets(HeadOfHousehold)
	if err != nil {
		t.Fatalf("Brackets(HeadOfHousehold): %v", err)
	}
	if got := ComputeTax(d("2000"), hoh); !got.Equal(d("550")) {
		t.Errorf("ComputeTax(2000) = %s, want 550", got)
	}

	// Standard deductions come from the base table.
	if got, ok := tbl.StandardDeduction(MarriedFilingJointly); !ok || !got.Equal(d("29200")) {
		t.Errorf("StandardDeduction(MFJ) = %s, %v", got, ok)
	}
	// Statuses absent from the file have no schedule.
	if _, err := tbl.Brackets(MarriedFilingJointly); !errors.Is(err, ErrNoBrackets) {
		t.Errorf("Brackets(MFJ) err = %v, want ErrNoBrackets", err)
	}
}

func TestLoadTable_YAML(t *testing.T) {
	tbl, err := LoadTable(writeTable(t, "brackets.yaml", yamlTable), Default2024())
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	single, err := tbl.Brackets(Single)
	if err != nil {
		t.Fatalf("Brackets(Single): %v", err)
	}
	if len(single) != 7 {
		t.Fatalf("len = %d, want 7", len(single))
	}
	if got := ComputeTax(d("50000"), single); !got.Equal(d("6053")) {
		t.Errorf("ComputeTax(50000) = %s, want 6053", got)
	}
}

func TestDecodeTable_RejectsMalformed(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"empty object":   {`{}`, ErrMalformedBrackets},
		"unknown status": {`{"Widowed": [[0, null, 0.1]]}`, ErrUnknownFilingStatus},
		"slug key":       {`{"single": [[0, null, 0.1]]}`, ErrUnknownFilingStatus},
		"short triple":   {`{"Single": [[0, 0.1]]}`, ErrMalformedBrackets},
		"null lower":     {`{"Single": [[null, null, 0.1]]}`, ErrMalformedBrackets},
		"non ascending":  {`{"Single": [[0, 100, 0.1], [50, null, 0.2]]}`, ErrMalformedBrackets},
		"negative rate":  {`{"Single": [[0, 100, -0.1], [100, null, 0.2]]}`, ErrMalformedBrackets},
		"bounded top":    {`{"Single": [[0, 100, 0.1]]}`, ErrMalformedBrackets},
		"not starting 0": {`{"Single": [[5, null, 0.1]]}`, ErrMalformedBrackets},
		"gap":            {`{"Single": [[0, 100, 0.1], [200, null, 0.2]]}`, ErrMalformedBrackets},
	}
	for name, tc := range cases {
		_, err := DecodeTable(strings.NewReader(tc.body), FormatJSON, Default2024())
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", name, err, tc.want)
		}
	}
}

func TestDecodeTable_InvalidSyntax(t *testing.T) {
	if _, err := DecodeTable(strings.NewReader(`{"Single": [`), FormatJSON, Default2024()); err == nil {
		t.Fatal("expected error for truncated json")
	}
	if _, err := DecodeTable(strings.NewReader("Single: [0, [1"), FormatYAML, Default2024()); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
	if _, err := DecodeTable(strings.NewReader(`Single: [["x", null, 0.1]]`), FormatYAML, Default2024()); !errors.Is(err, ErrMalformedBrackets) {
		t.Fatalf("err = %v, want ErrMalformedBrackets for non-numeric bound", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":    FormatJSON,
		"a.YAML":    FormatYAML,
		"dir/b.yml": FormatYAML,
		"noext":     FormatJSON,
	}
	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.json"), Default2024()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
