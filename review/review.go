// Package review holds the manual-review helpers: key-product lookup,
// needs-SEO worklists, the downstream SEO patch step, and the catalog
// completeness survey.
//
// Name lookups try an exact match first and fall back to case-insensitive
// substring matching. The fallback is a best-effort convenience for humans
// skimming a report; it can match the wrong product and must not be used for
// anything that writes data.
package review

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// Search returns the records whose Item Name matches the term: exact
// (case-insensitive) matches when any exist, otherwise substring matches.
func Search(t *catalog.Table, term string) []*models.Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var exact, fuzzy []*models.Record
	for _, r := range t.Records {
		name := strings.ToLower(r.Get(models.ColItemName))
		switch {
		case strings.TrimSpace(name) == needle:
			exact = append(exact, r)
		case strings.Contains(name, needle):
			fuzzy = append(fuzzy, r)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return fuzzy
}

// HighValue returns records priced strictly above the threshold, most
// expensive first. Rows with unparsable prices are excluded.
func HighValue(t *catalog.Table, threshold float64) []*models.Record {
	type priced struct {
		rec   *models.Record
		price float64
	}
	var out []priced
	for _, r := range t.Records {
		p, err := strconv.ParseFloat(strings.TrimSpace(r.Get(models.ColPrice)), 64)
		if err != nil {
			continue
		}
		if p > threshold {
			out = append(out, priced{r, p})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].price > out[j].price })

	recs := make([]*models.Record, len(out))
	for i, p := range out {
		recs[i] = p.rec
	}
	return recs
}

// SEOComplete returns records that have both SEO fields present.
func SEOComplete(t *catalog.Table) []*models.Record {
	var out []*models.Record
	for _, r := range t.Records {
		if models.Present(r.Get(models.ColSEOTitle)) && models.Present(r.Get(models.ColSEODescription)) {
			out = append(out, r)
		}
	}
	return out
}

// NeedsSEO returns records missing either SEO field.
func NeedsSEO(t *catalog.Table) []*models.Record {
	var out []*models.Record
	for _, r := range t.Records {
		if models.Missing(r.Get(models.ColSEOTitle)) || models.Missing(r.Get(models.ColSEODescription)) {
			out = append(out, r)
		}
	}
	return out
}

// CategoryCount pairs a category label with its product count.
type CategoryCount struct {
	Category string
	Count    int
}

// TopCategories returns the n most frequent Categories values, counted on
// the whole cell (category lists are not split). Ties break alphabetically
// so the report is stable.
func TopCategories(t *catalog.Table, n int) []CategoryCount {
	counts := make(map[string]int)
	for _, r := range t.Records {
		v := r.Get(models.ColCategories)
		if models.Missing(v) {
			continue
		}
		counts[strings.TrimSpace(v)]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for cat, c := range counts {
		out = append(out, CategoryCount{Category: cat, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
