// Package catalog reads and writes catalog spreadsheets as in-memory tables.
package catalog

import (
	"strings"

	"github.com/tidewater-goods/catalogtools/models"
)

// Table is an in-memory spreadsheet: a header and one record per data row.
// Column order is preserved from the file (or from first use when building
// a table programmatically).
type Table struct {
	Columns []string
	Records []*models.Record
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Append adds a record and folds any new columns into the header.
func (t *Table) Append(r *models.Record) {
	if r == nil {
		return
	}
	t.Records = append(t.Records, r)
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		seen[c] = true
	}
	for _, c := range r.Columns() {
		if !seen[c] {
			t.Columns = append(t.Columns, c)
			seen[c] = true
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// DistinctValues returns the distinct non-blank trimmed values of a column,
// in first-seen row order.
func (t *Table) DistinctValues(column string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range t.Records {
		v := r.Get(column)
		if models.Missing(v) {
			continue
		}
		v = strings.TrimSpace(v)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// unionColumns returns every column present in any record, keeping the
// table header order first and appending record-only columns after it.
func (t *Table) unionColumns() []string {
	out := make([]string, 0, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, r := range t.Records {
		for _, c := range r.Columns() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
