// Package models defines the row and source types shared by the catalog tools.
package models

import "strings"

// Canonical column names used by the merge and validation tools. Source
// spreadsheets carry many more columns; these are the ones with semantics.
const (
	ColItemName       = "Item Name"
	ColDescription    = "Description"
	ColSEOTitle       = "SEO Title"
	ColSEODescription = "SEO Description"
	ColCategories     = "Categories"
	ColToken          = "Token"
	ColSKU            = "SKU"
	ColPrice          = "Price"

	ColMergeSources = "_merge_sources"
	ColMergeNotes   = "_merge_notes"
	ColSEOKeywords  = "_seo_keywords"
	ColSEOUpdated   = "_seo_updated"
)

// Record is one spreadsheet row: a sparse column→value mapping that remembers
// the order columns were first set in, so passthrough columns survive a
// read/modify/write cycle in their original position.
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores a value, registering the column on first use.
func (r *Record) Set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Get returns the stored value, or "" if the column is absent.
func (r *Record) Get(column string) string {
	return r.values[column]
}

// Has reports whether the column was set at all, even to an empty string.
func (r *Record) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// Columns returns the column names in first-set order. The caller must not
// mutate the returned slice.
func (r *Record) Columns() []string {
	return r.columns
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		columns: make([]string, len(r.columns)),
		values:  make(map[string]string, len(r.values)),
	}
	copy(c.columns, r.columns)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Missing reports whether a value counts as absent for merge purposes:
// empty, whitespace-only, or the literal "nan" left behind by upstream
// spreadsheet exports.
func Missing(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == "nan"
}

// Present is the negation of Missing.
func Present(value string) bool {
	return !Missing(value)
}

// NormalizeName lower-cases and trims an item name. The normalized form is
// the sole join key across sources: two rows join if and only if their
// normalized names are byte-equal.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
