package merge

import (
	"fmt"
	"unicode/utf8"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// compareSnippet caps long text in the comparison export so the file stays
// skimmable in a spreadsheet viewer.
const compareSnippet = 200

// Comparison builds a side-by-side table of the products that appear in more
// than one source, with each source's description, SEO pair, and categories
// in its own column group. It exists for human review before a merge is
// accepted; the merge itself never reads it.
func Comparison(idx *Index) *catalog.Table {
	out := catalog.NewTable()

	for _, key := range idx.Keys() {
		sources := idx.Sources(key)
		if len(sources) < 2 {
			continue
		}

		r := models.NewRecord()
		r.Set("product_name", key)
		r.Set("sources", joinSources(sources))
		for _, src := range models.Order {
			row := idx.Row(key, src)
			if row == nil {
				continue
			}
			r.Set(fmt.Sprintf("%s_desc", src), snippet(row.Get(models.ColDescription)))
			r.Set(fmt.Sprintf("%s_seo_title", src), row.Get(models.ColSEOTitle))
			r.Set(fmt.Sprintf("%s_seo_desc", src), snippet(row.Get(models.ColSEODescription)))
			r.Set(fmt.Sprintf("%s_categories", src), row.Get(models.ColCategories))
		}
		out.Append(r)
	}

	return out
}

func snippet(s string) string {
	if utf8.RuneCountInString(s) <= compareSnippet {
		return s
	}
	runes := []rune(s)
	return string(runes[:compareSnippet])
}
