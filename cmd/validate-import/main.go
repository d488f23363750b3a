// Command validate-import checks a catalog spreadsheet against the import
// schema: required headers and expected literal values. All problems are
// reported in one run; the process exits non-zero when any are found.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/validate"
)

func main() {
	headerRow := flag.Int("header-row", 1, "1-based row holding the column names")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <catalog.xlsx>\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	table, err := catalog.ReadXLSX(path, catalog.ReadOptions{HeaderRow: *headerRow})
	if err != nil {
		slog.Error("loading catalog", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("Validating: %s (%d rows)\n", path, table.Len())
	problems := validate.Run(table)
	fmt.Print(validate.Report(problems))

	if len(problems) > 0 {
		os.Exit(1)
	}
}
