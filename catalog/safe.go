package catalog

import (
	"strings"

	"github.com/tidewater-goods/catalogtools/models"
)

// artifactColumns are columns that must never reach an import file. The
// "Unnamed: 0" column is the residue of an exported row index.
var artifactColumns = map[string]bool{
	"Unnamed: 0": true,
}

// Sanitize prepares a table for import upload: header names and cell values
// are trimmed, absent values become empty strings, artifact columns are
// dropped, and duplicate-named columns are dropped keeping the first
// occurrence. The input table is not modified.
//
// This denylist belongs to the safe-write step only; the merge writer keeps
// every column it is given.
func Sanitize(t *Table) *Table {
	columns := t.unionColumns()
	kept := make([]string, 0, len(columns))
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		name := strings.TrimSpace(col)
		if artifactColumns[name] || seen[name] {
			continue
		}
		seen[name] = true
		kept = append(kept, name)
	}

	out := NewTable()
	out.Columns = kept
	for _, r := range t.Records {
		clean := models.NewRecord()
		for _, col := range columns {
			name := strings.TrimSpace(col)
			if artifactColumns[name] || clean.Has(name) {
				continue
			}
			clean.Set(name, strings.TrimSpace(r.Get(col)))
		}
		out.Records = append(out.Records, clean)
	}
	return out
}

// SafeWriteXLSX sanitizes and writes in one step.
func SafeWriteXLSX(t *Table, path string) error {
	return WriteXLSX(Sanitize(t), path)
}
