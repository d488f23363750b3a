package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX serializes a table to a single-sheet workbook. Columns are the
// union of the header and every record's columns; absent values render as
// empty cells.
func WriteXLSX(t *Table, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	columns := t.unionColumns()

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header %q: %w", col, err)
		}
	}

	for rowIdx, r := range t.Records {
		for colIdx, col := range columns {
			if !r.Has(col) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", colIdx+1, rowIdx+2, err)
			}
			if err := f.SetCellValue(sheet, cell, r.Get(col)); err != nil {
				return fmt.Errorf("write row %d column %q: %w", rowIdx+1, col, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	return nil
}

// WriteCSV serializes a table to CSV with the same column-union rule as
// WriteXLSX.
func WriteCSV(t *Table, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	columns := t.unionColumns()

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range t.Records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = r.Get(col)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv records: %w", err)
	}
	return nil
}

// TimestampedPath builds an output filename that embeds the generation time,
// so re-running a tool produces a new artifact instead of overwriting the
// previous one.
func TimestampedPath(dir, prefix, ext string, now time.Time) string {
	name := fmt.Sprintf("%s_%s%s", prefix, now.Format("2006-01-02_1504"), ext)
	return filepath.Join(dir, name)
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
