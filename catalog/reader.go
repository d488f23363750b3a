package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/tidewater-goods/catalogtools/models"
)

// ReadOptions controls spreadsheet parsing.
type ReadOptions struct {
	// HeaderRow is the 1-based physical row holding the column names.
	// The point-of-sale export declares its header on row 2; everything
	// else uses row 1. Zero means row 1.
	HeaderRow int
	// Sheet selects a worksheet by name. Empty means the first sheet.
	Sheet string
}

// ReadXLSX loads one worksheet into a Table. Rows above the header row are
// discarded; rows shorter than the header leave the trailing columns absent.
func ReadXLSX(path string, opts ReadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("xlsx %s has no sheets", path)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	headerRow := opts.HeaderRow
	if headerRow <= 0 {
		headerRow = 1
	}
	if len(rows) < headerRow {
		return nil, fmt.Errorf("xlsx %s: header expected on row %d but file has %d rows", path, headerRow, len(rows))
	}

	return tableFromRows(rows[headerRow-1], rows[headerRow:]), nil
}

// ReadCSV loads a CSV file with the header on the first row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header %s: %w", path, err)
	}

	var body [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", path, err)
		}
		body = append(body, row)
	}

	return tableFromRows(header, body), nil
}

func tableFromRows(header []string, body [][]string) *Table {
	t := NewTable()
	t.Columns = append(t.Columns, header...)

	for _, row := range body {
		r := models.NewRecord()
		for i, col := range header {
			// Duplicate-named columns keep the first occurrence.
			if i < len(row) && !r.Has(col) {
				r.Set(col, row[i])
			}
		}
		t.Records = append(t.Records, r)
	}
	return t
}
