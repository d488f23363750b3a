// Command analyze-catalogs surveys the catalog spreadsheets in a directory
// and ranks them by recency, size, and completeness, to answer "which export
// should seed the next merge".
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidewater-goods/catalogtools/review"
)

func main() {
	dir := flag.String("dir", ".", "Directory of .xlsx catalog files")
	top := flag.Int("top", 10, "Rows per ranking section")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	infos, errs := review.AnalyzeDir(*dir)
	for _, err := range errs {
		slog.Warn("skipping unreadable catalog", slog.Any("error", err))
	}
	if len(infos) == 0 {
		slog.Error("no readable catalogs found", slog.String("dir", *dir))
		os.Exit(1)
	}

	fmt.Println("CATALOG ANALYSIS - COMPREHENSIVENESS & RECENCY")

	fmt.Println("\n1. MOST RECENT FILES:")
	for i, info := range review.RankByRecency(infos) {
		if i == *top {
			break
		}
		fmt.Printf("  %s - %-45s | %d products\n",
			info.Modified.Format("2006-01-02 15:04"), filepath.Base(info.Path), info.Products)
	}

	fmt.Println("\n2. MOST COMPREHENSIVE:")
	for i, info := range review.RankByCompleteness(infos) {
		if i == *top {
			break
		}
		fmt.Printf("  Score: %.2f | %-45s | %d items | SEO: %d | %.1f KB\n",
			info.Completeness(), filepath.Base(info.Path), info.Products, info.SEOCount, info.SizeKB)
	}
}
