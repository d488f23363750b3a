package merge

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tidewater-goods/catalogtools/models"
)

func TestComparisonOnlyMultiSourceProducts(t *testing.T) {
	pos := tableOf(
		record(map[string]string{models.ColItemName: "Moon Lamp", models.ColDescription: "A lamp."}),
		record(map[string]string{models.ColItemName: "Selenite Tower"}),
	)
	web := tableOf(
		record(map[string]string{models.ColItemName: "Moon Lamp", models.ColCategories: "Lighting"}),
	)

	out := Comparison(BuildIndex(pos, web, nil))

	if out.Len() != 1 {
		t.Fatalf("comparison rows=%d, want only the multi-source product", out.Len())
	}
	r := out.Records[0]
	if got := r.Get("product_name"); got != "moon lamp" {
		t.Fatalf("product_name=%q", got)
	}
	if got := r.Get("sources"); got != "pos, web" {
		t.Fatalf("sources=%q", got)
	}
	if got := r.Get("pos_desc"); got != "A lamp." {
		t.Fatalf("pos_desc=%q", got)
	}
	if got := r.Get("web_categories"); got != "Lighting" {
		t.Fatalf("web_categories=%q", got)
	}
	if r.Has("legacy_desc") {
		t.Fatal("legacy columns should be absent when legacy has no row")
	}
}

func TestComparisonTruncatesLongText(t *testing.T) {
	long := strings.Repeat("y", 300)
	pos := tableOf(record(map[string]string{models.ColItemName: "Moon Lamp", models.ColDescription: long}))
	web := tableOf(record(map[string]string{models.ColItemName: "Moon Lamp"}))

	out := Comparison(BuildIndex(pos, web, nil))
	if got := len(out.Records[0].Get("pos_desc")); got != compareSnippet {
		t.Fatalf("snippet length=%d, want %d", got, compareSnippet)
	}
}

func TestComparisonTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 300)
	pos := tableOf(record(map[string]string{models.ColItemName: "Moon Lamp", models.ColDescription: long}))
	web := tableOf(record(map[string]string{models.ColItemName: "Moon Lamp"}))

	out := Comparison(BuildIndex(pos, web, nil))
	got := out.Records[0].Get("pos_desc")
	if !utf8.ValidString(got) {
		t.Fatal("snippet split a multi-byte rune")
	}
	if n := utf8.RuneCountInString(got); n != compareSnippet {
		t.Fatalf("snippet runes=%d, want %d", n, compareSnippet)
	}
}
