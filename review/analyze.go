package review

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// CatalogInfo summarizes one catalog file for the survey report.
type CatalogInfo struct {
	Path     string
	SizeKB   float64
	Modified time.Time

	Rows      int
	Products  int // rows with a present Item Name
	SEOCount  int
	DescCount int
	CatCount  int
}

// Completeness is a weighted coverage heuristic used only for ranking files
// in the survey report; the merge itself never consults it.
func (c CatalogInfo) Completeness() float64 {
	coverage := func(count int) float64 {
		if c.Products == 0 {
			return 0
		}
		return float64(count) / float64(c.Products)
	}
	size := float64(c.Products) / 1000
	if size > 1 {
		size = 1
	}
	return coverage(c.SEOCount)*0.3 + coverage(c.DescCount)*0.3 + coverage(c.CatCount)*0.2 + size*0.2
}

// AnalyzeFile loads one spreadsheet and computes its coverage counts.
func AnalyzeFile(path string, opts catalog.ReadOptions) (CatalogInfo, error) {
	info := CatalogInfo{Path: path}

	stat, err := os.Stat(path)
	if err != nil {
		return info, fmt.Errorf("stat %s: %w", path, err)
	}
	info.SizeKB = float64(stat.Size()) / 1024
	info.Modified = stat.ModTime()

	table, err := catalog.ReadXLSX(path, opts)
	if err != nil {
		return info, err
	}

	info.Rows = table.Len()
	for _, r := range table.Records {
		if models.Present(r.Get(models.ColItemName)) {
			info.Products++
		}
		if models.Present(r.Get(models.ColSEOTitle)) {
			info.SEOCount++
		}
		if models.Present(r.Get(models.ColDescription)) {
			info.DescCount++
		}
		if models.Present(r.Get(models.ColCategories)) {
			info.CatCount++
		}
	}
	if !table.HasColumn(models.ColItemName) {
		// Without a name column every row counts as a product.
		info.Products = info.Rows
	}
	return info, nil
}

// AnalyzeDir surveys every .xlsx file directly under dir. Files that fail to
// load are skipped with their error collected, so one corrupt export does
// not hide the rest of the survey.
func AnalyzeDir(dir string) ([]CatalogInfo, []error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, []error{fmt.Errorf("glob %s: %w", dir, err)}
	}
	sort.Strings(matches)

	var infos []CatalogInfo
	var errs []error
	for _, path := range matches {
		info, err := AnalyzeFile(path, catalog.ReadOptions{})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		infos = append(infos, info)
	}
	return infos, errs
}

// RankByCompleteness returns the infos sorted most complete first.
func RankByCompleteness(infos []CatalogInfo) []CatalogInfo {
	out := make([]CatalogInfo, len(infos))
	copy(out, infos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Completeness() > out[j].Completeness()
	})
	return out
}

// RankByRecency returns the infos sorted newest first.
func RankByRecency(infos []CatalogInfo) []CatalogInfo {
	out := make([]CatalogInfo, len(infos))
	copy(out, infos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Modified.After(out[j].Modified)
	})
	return out
}
