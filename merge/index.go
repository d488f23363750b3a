// Package merge joins the three source catalogs into one consolidated
// catalog, picking the best description, SEO pair, and category value per
// product and recording which source each winner came from.
package merge

import (
	"sort"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// entry holds the rows contributed for one normalized product name.
type entry struct {
	rows    map[models.Source]*models.Record
	sources []models.Source // insertion order pos, web, legacy
}

// Index maps normalized item names to at most one row per source.
//
// When a source contains several rows with the same normalized name, the
// first row encountered wins and later duplicates are dropped. That rule is
// deliberate: it keeps merge output stable under re-export, and it is what
// downstream reviewers have been proofreading against.
type Index struct {
	entries map[string]*entry
}

// BuildIndex indexes the three source tables by normalized item name. Rows
// whose names normalize to the empty string never join and are skipped.
func BuildIndex(pos, web, legacy *catalog.Table) *Index {
	idx := &Index{entries: make(map[string]*entry)}
	idx.addTable(models.SourcePOS, pos)
	idx.addTable(models.SourceWeb, web)
	idx.addTable(models.SourceLegacy, legacy)
	return idx
}

func (idx *Index) addTable(src models.Source, t *catalog.Table) {
	if t == nil {
		return
	}
	for _, r := range t.Records {
		idx.add(src, r)
	}
}

func (idx *Index) add(src models.Source, r *models.Record) {
	key := models.NormalizeName(r.Get(models.ColItemName))
	if key == "" {
		return
	}
	e, ok := idx.entries[key]
	if !ok {
		e = &entry{rows: make(map[models.Source]*models.Record)}
		idx.entries[key] = e
	}
	if _, dup := e.rows[src]; dup {
		// First-seen row wins within a source.
		return
	}
	e.rows[src] = r
	e.sources = append(e.sources, src)
}

// Len returns the number of distinct normalized names.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Keys returns the normalized names in sorted order, so merge runs process
// products deterministically.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Row returns the indexed row for a key and source, or nil.
func (idx *Index) Row(key string, src models.Source) *models.Record {
	e, ok := idx.entries[key]
	if !ok {
		return nil
	}
	return e.rows[src]
}

// Sources returns the sources that contributed any row for a key. Tables are
// indexed in pos, web, legacy order, so the slice is already in the fixed
// source order.
func (idx *Index) Sources(key string) []models.Source {
	e, ok := idx.entries[key]
	if !ok {
		return nil
	}
	return e.sources
}
