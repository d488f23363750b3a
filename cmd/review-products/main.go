// Command review-products prints a key-product review of a merged catalog:
// configured search terms, high-value items, best SEO examples, and top
// categories. With -worklist it also writes the needs-SEO worklist as JSONL.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/config"
	"github.com/tidewater-goods/catalogtools/models"
	"github.com/tidewater-goods/catalogtools/review"
)

func main() {
	catalogPath := flag.String("catalog", "", "Merged catalog to review")
	worklistPath := flag.String("worklist", "", "Write needs-SEO worklist (JSONL) to this path")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *catalogPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -catalog <merged.xlsx> [-worklist needs_seo.jsonl]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	table, err := catalog.ReadXLSX(*catalogPath, catalog.ReadOptions{})
	if err != nil {
		slog.Error("loading catalog", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("=== KEY PRODUCT REVIEW ===\n\n")
	fmt.Printf("Total products in catalog: %d\n", table.Len())

	fmt.Printf("\n1. KEY PRODUCTS:\n")
	for _, term := range cfg.Review.SearchTerms {
		// Exact match first, substring fallback after; the fallback can
		// surface the wrong product, which is acceptable in a report.
		matches := review.Search(table, term)
		fmt.Printf("\n%s products: %d\n", term, len(matches))
		for i, r := range matches {
			if i == 3 {
				break
			}
			fmt.Printf("  - %s\n", r.Get(models.ColItemName))
		}
	}

	fmt.Printf("\n2. HIGH-VALUE ITEMS (OVER $%.0f):\n", cfg.Review.HighValueThreshold)
	for i, r := range review.HighValue(table, cfg.Review.HighValueThreshold) {
		if i == 5 {
			break
		}
		fmt.Printf("  $%s - %s\n", r.Get(models.ColPrice), r.Get(models.ColItemName))
	}

	complete := review.SEOComplete(table)
	fmt.Printf("\n3. BEST SEO EXAMPLES (%d with complete SEO):\n", len(complete))
	for i, r := range complete {
		if i == 3 {
			break
		}
		fmt.Printf("\n%s\n", r.Get(models.ColItemName))
		fmt.Printf("  SEO Title: %s\n", r.Get(models.ColSEOTitle))
		fmt.Printf("  SEO Desc: %s\n", truncate(r.Get(models.ColSEODescription), 100))
	}

	fmt.Printf("\n4. TOP CATEGORIES:\n")
	for _, cc := range review.TopCategories(table, cfg.Review.TopCategories) {
		fmt.Printf("  %s: %d products\n", cc.Category, cc.Count)
	}

	if *worklistPath != "" {
		items := review.BuildWorklist(table)
		writer, err := review.NewWorklistWriter(*worklistPath)
		if err != nil {
			slog.Error("creating worklist", slog.Any("error", err))
			os.Exit(1)
		}
		if err := writer.Write(items); err != nil {
			slog.Error("writing worklist", slog.Any("error", err))
			os.Exit(1)
		}
		if err := writer.Close(); err != nil {
			slog.Error("closing worklist", slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Printf("\nProducts needing SEO: %d (worklist: %s)\n", len(items), *worklistPath)
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
