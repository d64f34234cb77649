// Package refdata loads the accident-case reference table consulted by
// the consultation services. The table is read once at startup and is
// immutable afterwards.
package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// ErrCaseNotFound is returned when no reference row matches an accident
// description exactly.
var ErrCaseNotFound = errors.New("accident case not found in reference table")

// Case is one accident reference row: the recorded description plus the
// fault summary, precedent and statute citations used to build prompts,
// and the source video URL.
type Case struct {
	Accident   string
	BasicFault string
	Cases      string
	Laws       string
	URL        string
}

// Table is the in-memory reference table with exact-text lookup.
type Table struct {
	cases  []Case
	byText map[string]int
}

// NewTable builds a table from rows already in memory.
func NewTable(cases []Case) *Table {
	t := &Table{byText: make(map[string]int, len(cases))}
	for _, c := range cases {
		if _, seen := t.byText[c.Accident]; !seen {
			t.byText[c.Accident] = len(t.cases)
		}
		t.cases = append(t.cases, c)
	}
	return t
}

// Load reads the reference CSV. The file must carry a header row with
// the columns Accident, Basic Fault, Cases, Laws and URL.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("reference table %s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"Accident", "Basic Fault", "Cases", "Laws", "URL"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("reference table missing column %q", required)
		}
	}

	t := &Table{byText: make(map[string]int, len(records)-1)}
	for _, row := range records[1:] {
		c := Case{
			Accident:   row[col["Accident"]],
			BasicFault: row[col["Basic Fault"]],
			Cases:      row[col["Cases"]],
			Laws:       row[col["Laws"]],
			URL:        row[col["URL"]],
		}
		// First row wins on duplicate descriptions.
		if _, seen := t.byText[c.Accident]; !seen {
			t.byText[c.Accident] = len(t.cases)
		}
		t.cases = append(t.cases, c)
	}

	return t, nil
}

// Lookup resolves an accident description to its reference row by exact
// text match. Returns ErrCaseNotFound when no row matches; there is no
// fuzzy fallback or silent substitution.
func (t *Table) Lookup(accidentText string) (Case, error) {
	idx, ok := t.byText[accidentText]
	if !ok {
		return Case{}, fmt.Errorf("%w: %q", ErrCaseNotFound, accidentText)
	}
	return t.cases[idx], nil
}

// Cases returns all reference rows in file order.
func (t *Table) Cases() []Case {
	return t.cases
}

// Len returns the number of reference rows.
func (t *Table) Len() int {
	return len(t.cases)
}
