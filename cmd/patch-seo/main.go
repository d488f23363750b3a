// Command patch-seo applies hand-written SEO entries to a merged catalog and
// writes the result as a new timestamped artifact. The input file is never
// modified; updates that match no product are listed, not guessed at.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/review"
)

func main() {
	catalogPath := flag.String("catalog", "", "Merged catalog to patch")
	updatesPath := flag.String("updates", "", "JSON file of SEO updates")
	outDir := flag.String("out", "output", "Output directory")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *catalogPath == "" || *updatesPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -catalog <merged.xlsx> -updates <updates.json> [-out dir]\n", os.Args[0])
		os.Exit(2)
	}

	table, err := catalog.ReadXLSX(*catalogPath, catalog.ReadOptions{})
	if err != nil {
		slog.Error("loading catalog", slog.Any("error", err))
		os.Exit(1)
	}

	updates, err := review.LoadUpdates(*updatesPath)
	if err != nil {
		slog.Error("loading updates", slog.Any("error", err))
		os.Exit(1)
	}

	result := review.ApplyUpdates(table, updates, time.Now())

	outPath := catalog.TimestampedPath(*outDir, "CATALOG_WITH_SEO", ".xlsx", time.Now())
	if err := catalog.SafeWriteXLSX(table, outPath); err != nil {
		slog.Error("writing patched catalog", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("Updated %d products with tailored SEO\n", result.Applied)
	for _, name := range result.NotFound {
		fmt.Printf("Not found: %s\n", name)
	}
	fmt.Printf("Saved to: %s\n", outPath)

	if len(result.NotFound) > 0 {
		os.Exit(1)
	}
}
