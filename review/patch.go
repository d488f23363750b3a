package review

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// SEOUpdate is one hand-written SEO entry to apply to a merged catalog.
type SEOUpdate struct {
	Name           string `json:"name"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	Keywords       string `json:"keywords"`
}

// LoadUpdates reads a JSON array of SEO updates.
func LoadUpdates(path string) ([]SEOUpdate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read updates file %s: %w", path, err)
	}
	var updates []SEOUpdate
	if err := json.Unmarshal(data, &updates); err != nil {
		return nil, fmt.Errorf("parse updates file %s: %w", path, err)
	}
	return updates, nil
}

// PatchResult reports what ApplyUpdates did.
type PatchResult struct {
	Applied  int
	NotFound []string
}

// ApplyUpdates overwrites the SEO fields of matching records in place and
// stamps them with the update time. Matching is exact on Item Name — the
// fuzzy lookup in this package is for human reports only, never for writes.
// Names with no exact match are returned rather than guessed at.
//
// The caller writes the result to a new timestamped artifact; the input file
// is never modified.
func ApplyUpdates(t *catalog.Table, updates []SEOUpdate, now time.Time) PatchResult {
	byName := make(map[string]*models.Record, t.Len())
	for _, r := range t.Records {
		name := r.Get(models.ColItemName)
		if _, ok := byName[name]; !ok {
			byName[name] = r
		}
	}

	var result PatchResult
	stamp := now.Format(time.RFC3339)
	for _, u := range updates {
		r, ok := byName[u.Name]
		if !ok {
			result.NotFound = append(result.NotFound, u.Name)
			continue
		}
		r.Set(models.ColSEOTitle, u.SEOTitle)
		r.Set(models.ColSEODescription, u.SEODescription)
		r.Set(models.ColSEOKeywords, u.Keywords)
		r.Set(models.ColSEOUpdated, stamp)
		result.Applied++
	}
	return result
}
