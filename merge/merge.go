package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// Options controls merge policy.
type Options struct {
	// CategoryPrecedence lists the sources consulted for the Categories
	// column, in order; the first with a present value wins. The default
	// prefers the storefront catalog's curated labels and never consults
	// the legacy catalog.
	CategoryPrecedence []models.Source
}

// DefaultOptions returns the precedence the production catalogs are merged
// with.
func DefaultOptions() Options {
	return Options{
		CategoryPrecedence: []models.Source{models.SourceWeb, models.SourcePOS},
	}
}

// Stats summarizes one merge run.
type Stats struct {
	Products    int
	MultiSource int
	DescWins    map[models.Source]int
	SEOWins     map[models.Source]int
	CatWins     map[models.Source]int
}

func newStats() *Stats {
	return &Stats{
		DescWins: make(map[models.Source]int),
		SEOWins:  make(map[models.Source]int),
		CatWins:  make(map[models.Source]int),
	}
}

// Merge assembles one record per distinct normalized item name. Each record
// starts as a copy of the base row (the first source in pos, web, legacy
// order that has one), then the contested fields are overlaid with the
// winning source's values and provenance notes are attached.
func Merge(idx *Index, opts Options) (*catalog.Table, *Stats) {
	out := catalog.NewTable()
	stats := newStats()

	for _, key := range idx.Keys() {
		base := baseRow(idx, key)
		if base == nil {
			continue
		}
		merged := base.Clone()
		var notes []string

		if src, ok := bestSource(func(s models.Source) int {
			return DescriptionScore(candidate(idx, key, s, models.ColDescription))
		}); ok {
			merged.Set(models.ColDescription, candidate(idx, key, src, models.ColDescription))
			notes = append(notes, fmt.Sprintf("desc:%s", src))
			stats.DescWins[src]++
		}

		if src, ok := bestSource(func(s models.Source) int {
			return SEOScore(
				candidate(idx, key, s, models.ColSEOTitle),
				candidate(idx, key, s, models.ColSEODescription),
			)
		}); ok {
			// Title and description travel together; a blank half is
			// copied too rather than mixed with another source.
			merged.Set(models.ColSEOTitle, candidate(idx, key, src, models.ColSEOTitle))
			merged.Set(models.ColSEODescription, candidate(idx, key, src, models.ColSEODescription))
			notes = append(notes, fmt.Sprintf("seo:%s", src))
			stats.SEOWins[src]++
		}

		if src, ok := pickCategory(idx, key, opts.CategoryPrecedence); ok {
			merged.Set(models.ColCategories, candidate(idx, key, src, models.ColCategories))
			notes = append(notes, fmt.Sprintf("cat:%s", src))
			stats.CatWins[src]++
		}

		sources := idx.Sources(key)
		merged.Set(models.ColMergeSources, joinSources(sources))
		merged.Set(models.ColMergeNotes, strings.Join(notes, ", "))

		out.Append(merged)
		stats.Products++
		if len(sources) > 1 {
			stats.MultiSource++
		}
	}

	SortByItemName(out)
	return out, stats
}

// baseRow picks the structural seed for a key: the point-of-sale row when
// present, since it carries the full import column set, otherwise the first
// source that has a row.
func baseRow(idx *Index, key string) *models.Record {
	for _, src := range models.Order {
		if r := idx.Row(key, src); r != nil {
			return r
		}
	}
	return nil
}

// pickCategory is not a scored contest: the first source in the precedence
// list with a present Categories value wins outright.
func pickCategory(idx *Index, key string, precedence []models.Source) (models.Source, bool) {
	for _, src := range precedence {
		if models.Present(candidate(idx, key, src, models.ColCategories)) {
			return src, true
		}
	}
	return "", false
}

// candidate returns a field value from one source's row, or "" when that
// source has no row for the key.
func candidate(idx *Index, key string, src models.Source, column string) string {
	r := idx.Row(key, src)
	if r == nil {
		return ""
	}
	return r.Get(column)
}

func joinSources(sources []models.Source) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// SortByItemName orders records by Item Name ascending, with missing names
// sorting last. The sort is stable so equal names keep their merge order.
func SortByItemName(t *catalog.Table) {
	sort.SliceStable(t.Records, func(i, j int) bool {
		a := t.Records[i].Get(models.ColItemName)
		b := t.Records[j].Get(models.ColItemName)
		switch {
		case models.Missing(a):
			return false
		case models.Missing(b):
			return true
		}
		return a < b
	})
}
