// Command merge-catalog joins the three source catalogs into one
// consolidated spreadsheet with provenance columns.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/config"
	"github.com/tidewater-goods/catalogtools/merge"
	"github.com/tidewater-goods/catalogtools/models"
)

func main() {
	posPath := flag.String("pos", "", "Point-of-sale export (overrides config)")
	webPath := flag.String("web", "", "Storefront catalog (overrides config)")
	legacyPath := flag.String("legacy", "", "Legacy vendor catalog (overrides config)")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	comparePath := flag.String("compare", "", "Also write a multi-source comparison CSV to this path")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if *posPath != "" {
		cfg.POS.Path = *posPath
	}
	if *webPath != "" {
		cfg.Web.Path = *webPath
	}
	if *legacyPath != "" {
		cfg.Legacy.Path = *legacyPath
	}
	if *outDir != "" {
		cfg.Merge.OutputDir = *outDir
	}

	precedence, err := cfg.CategoryPrecedence()
	if err != nil {
		slog.Error("invalid category precedence", slog.Any("error", err))
		os.Exit(1)
	}

	// Any source that fails to load aborts the run: a silently partial
	// merge would be worse than no merge.
	pos := loadSource("pos", cfg.POS)
	web := loadSource("web", cfg.Web)
	legacy := loadSource("legacy", cfg.Legacy)

	idx := merge.BuildIndex(pos, web, legacy)
	slog.Info("indexed products", slog.Int("distinct_names", idx.Len()))

	merged, stats := merge.Merge(idx, merge.Options{CategoryPrecedence: precedence})

	if *comparePath != "" {
		if err := catalog.WriteCSV(merge.Comparison(idx), *comparePath); err != nil {
			slog.Error("writing comparison file", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("wrote comparison file", slog.String("path", *comparePath))
	}

	outPath := catalog.TimestampedPath(cfg.Merge.OutputDir, "MERGED_CATALOG", ".xlsx", time.Now())
	if err := catalog.WriteXLSX(merged, outPath); err != nil {
		slog.Error("writing merged catalog", slog.Any("error", err))
		os.Exit(1)
	}

	printSummary(stats, outPath)
}

func loadSource(name string, src config.SourceFile) *catalog.Table {
	if src.Path == "" {
		slog.Error("source path not configured", slog.String("source", name))
		os.Exit(1)
	}
	t, err := catalog.ReadXLSX(src.Path, catalog.ReadOptions{HeaderRow: src.HeaderRow})
	if err != nil {
		slog.Error("loading source catalog", slog.String("source", name), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("loaded source catalog",
		slog.String("source", name),
		slog.String("path", src.Path),
		slog.Int("rows", t.Len()),
	)
	return t
}

func printSummary(stats *merge.Stats, outPath string) {
	separator := "--------------------------------------------------"
	fmt.Println("\n" + separator)
	fmt.Println("Merge complete")
	fmt.Printf("  Total products:  %d\n", stats.Products)
	fmt.Printf("  Multi-source:    %d\n", stats.MultiSource)
	printWins("Description", stats.DescWins)
	printWins("SEO", stats.SEOWins)
	printWins("Categories", stats.CatWins)
	fmt.Printf("  Output file:     %s\n", outPath)
	fmt.Println(separator)
}

func printWins(field string, wins map[models.Source]int) {
	if len(wins) == 0 {
		return
	}
	fmt.Printf("  %s sources:\n", field)
	for _, src := range models.Order {
		if count := wins[src]; count > 0 {
			fmt.Printf("    - %s: %d products\n", src, count)
		}
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	// Logs go to stderr; stdout is reserved for the report.
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
