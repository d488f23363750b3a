package merge

import (
	"strings"
	"testing"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

func tableOf(records ...*models.Record) *catalog.Table {
	t := catalog.NewTable()
	for _, r := range records {
		t.Append(r)
	}
	return t
}

func record(fields map[string]string) *models.Record {
	r := models.NewRecord()
	for _, col := range []string{
		models.ColItemName, models.ColSKU, models.ColPrice,
		models.ColDescription, models.ColSEOTitle, models.ColSEODescription,
		models.ColCategories,
	} {
		if v, ok := fields[col]; ok {
			r.Set(col, v)
		}
	}
	return r
}

func findByName(t *testing.T, table *catalog.Table, name string) *models.Record {
	t.Helper()
	for _, r := range table.Records {
		if r.Get(models.ColItemName) == name {
			return r
		}
	}
	t.Fatalf("record %q not in merge output", name)
	return nil
}

func TestMergeUnionOfKeys(t *testing.T) {
	pos := tableOf(
		record(map[string]string{models.ColItemName: "Moon Lamp", models.ColSKU: "ML-01"}),
		record(map[string]string{models.ColItemName: "Selenite Tower"}),
	)
	web := tableOf(
		record(map[string]string{models.ColItemName: "  moon lamp "}), // joins via normalization
		record(map[string]string{models.ColItemName: "Tarot Deck"}),
	)
	legacy := tableOf(
		record(map[string]string{models.ColItemName: "Chakra Bracelet"}),
	)

	idx := BuildIndex(pos, web, legacy)
	out, stats := Merge(idx, DefaultOptions())

	if out.Len() != 4 {
		t.Fatalf("merged rows=%d, want 4 (union of distinct names)", out.Len())
	}
	if stats.Products != 4 || stats.MultiSource != 1 {
		t.Fatalf("stats=%+v, want 4 products / 1 multi-source", stats)
	}

	solo := findByName(t, out, "Chakra Bracelet")
	if got := solo.Get(models.ColMergeSources); got != "legacy" {
		t.Fatalf("_merge_sources=%q, want legacy only", got)
	}

	both := findByName(t, out, "Moon Lamp")
	if got := both.Get(models.ColMergeSources); got != "pos, web" {
		t.Fatalf("_merge_sources=%q, want \"pos, web\"", got)
	}
	// Base row is the POS one, so passthrough columns survive.
	if got := both.Get(models.ColSKU); got != "ML-01" {
		t.Fatalf("passthrough SKU=%q, want ML-01", got)
	}
}

func TestMergeDescriptionSelection(t *testing.T) {
	long := "A considerably longer description without punctuation that exceeds one hundred characters in total length"

	pos := tableOf(record(map[string]string{
		models.ColItemName:    "Moon Lamp",
		models.ColDescription: "A short one.",
	}))
	legacy := tableOf(record(map[string]string{
		models.ColItemName:    "Moon Lamp",
		models.ColDescription: long,
	}))

	out, _ := Merge(BuildIndex(pos, nil, legacy), DefaultOptions())

	r := findByName(t, out, "Moon Lamp")
	if got := r.Get(models.ColDescription); got != long {
		t.Fatalf("Description=%q, want the detailed legacy text", got)
	}
	if notes := r.Get(models.ColMergeNotes); !strings.Contains(notes, "desc:legacy") {
		t.Fatalf("_merge_notes=%q, want desc:legacy", notes)
	}
}

func TestMergeAllBlankDescriptionsLeaveBaseUntouched(t *testing.T) {
	pos := tableOf(record(map[string]string{
		models.ColItemName:    "Moon Lamp",
		models.ColDescription: "   ",
	}))
	web := tableOf(record(map[string]string{
		models.ColItemName:    "Moon Lamp",
		models.ColDescription: "nan",
	}))

	out, stats := Merge(BuildIndex(pos, web, nil), DefaultOptions())

	r := findByName(t, out, "Moon Lamp")
	if got := r.Get(models.ColDescription); got != "   " {
		t.Fatalf("Description=%q, want base value untouched", got)
	}
	if notes := r.Get(models.ColMergeNotes); strings.Contains(notes, "desc:") {
		t.Fatalf("_merge_notes=%q, want no desc note", notes)
	}
	if len(stats.DescWins) != 0 {
		t.Fatalf("DescWins=%v, want empty", stats.DescWins)
	}
}

func TestMergeSEOPairCopiedAsUnit(t *testing.T) {
	pos := tableOf(record(map[string]string{
		models.ColItemName: "Moon Lamp",
		models.ColSEOTitle: "Lamp",
	}))
	web := tableOf(record(map[string]string{
		models.ColItemName:       "Moon Lamp",
		models.ColSEOTitle:       "3D Galaxy Moon Lamp 16 Colors",
		models.ColSEODescription: "Realistic 3D printed moon lamp with 16 color options.",
	}))

	out, _ := Merge(BuildIndex(pos, web, nil), DefaultOptions())

	r := findByName(t, out, "Moon Lamp")
	if got := r.Get(models.ColSEOTitle); got != "3D Galaxy Moon Lamp 16 Colors" {
		t.Fatalf("SEO Title=%q, want the web title", got)
	}
	if got := r.Get(models.ColSEODescription); got != "Realistic 3D printed moon lamp with 16 color options." {
		t.Fatalf("SEO Description=%q, want the web description (pair travels as a unit)", got)
	}
	if notes := r.Get(models.ColMergeNotes); !strings.Contains(notes, "seo:web") {
		t.Fatalf("_merge_notes=%q, want seo:web", notes)
	}
}

func TestMergeCategoryPrecedence(t *testing.T) {
	pos := tableOf(record(map[string]string{
		models.ColItemName:   "Selenite Tower",
		models.ColCategories: "Home Decor",
	}))
	web := tableOf(record(map[string]string{
		models.ColItemName:   "Selenite Tower",
		models.ColCategories: "Crystals, Candles",
	}))
	legacy := tableOf(record(map[string]string{
		models.ColItemName:   "Selenite Tower",
		models.ColCategories: "Labz Picks",
	}))

	out, _ := Merge(BuildIndex(pos, web, legacy), DefaultOptions())

	r := findByName(t, out, "Selenite Tower")
	if got := r.Get(models.ColCategories); got != "Crystals, Candles" {
		t.Fatalf("Categories=%q, want the curated web value", got)
	}
	if notes := r.Get(models.ColMergeNotes); !strings.Contains(notes, "cat:web") {
		t.Fatalf("_merge_notes=%q, want cat:web", notes)
	}
}

func TestMergeCategoryFallsBackToPOS(t *testing.T) {
	pos := tableOf(record(map[string]string{
		models.ColItemName:   "Selenite Tower",
		models.ColCategories: "Home Decor",
	}))
	legacy := tableOf(record(map[string]string{
		models.ColItemName:   "Selenite Tower",
		models.ColCategories: "Labz Picks",
	}))

	out, _ := Merge(BuildIndex(pos, nil, legacy), DefaultOptions())

	// The legacy catalog is outside the default precedence entirely.
	r := findByName(t, out, "Selenite Tower")
	if got := r.Get(models.ColCategories); got != "Home Decor" {
		t.Fatalf("Categories=%q, want the pos fallback", got)
	}
}

func TestIndexFirstSeenRowWinsWithinSource(t *testing.T) {
	pos := tableOf(
		record(map[string]string{models.ColItemName: "Moon Lamp", models.ColSKU: "ML-01"}),
		record(map[string]string{models.ColItemName: "moon lamp", models.ColSKU: "ML-02"}),
	)

	idx := BuildIndex(pos, nil, nil)
	if idx.Len() != 1 {
		t.Fatalf("index keys=%d, want 1", idx.Len())
	}
	row := idx.Row("moon lamp", models.SourcePOS)
	if got := row.Get(models.ColSKU); got != "ML-01" {
		t.Fatalf("kept SKU=%q, want first-seen ML-01", got)
	}
}

func TestIndexSkipsBlankNames(t *testing.T) {
	pos := tableOf(
		record(map[string]string{models.ColItemName: "   "}),
		record(map[string]string{models.ColItemName: "Moon Lamp"}),
	)
	if got := BuildIndex(pos, nil, nil).Len(); got != 1 {
		t.Fatalf("index keys=%d, want blank names skipped", got)
	}
}

func TestSortByItemNameMissingLast(t *testing.T) {
	table := tableOf(
		record(map[string]string{models.ColItemName: "Tarot Deck"}),
		record(map[string]string{models.ColItemName: ""}),
		record(map[string]string{models.ColItemName: "Chakra Bracelet"}),
	)

	SortByItemName(table)

	if got := table.Records[0].Get(models.ColItemName); got != "Chakra Bracelet" {
		t.Fatalf("first=%q", got)
	}
	if got := table.Records[2].Get(models.ColItemName); got != "" {
		t.Fatalf("missing name should sort last, got %q", got)
	}
}
