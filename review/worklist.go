package review

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidewater-goods/catalogtools/catalog"
	"github.com/tidewater-goods/catalogtools/models"
)

// WorklistItem is one product awaiting hand-written SEO, serialized as one
// JSON line of the worklist file.
type WorklistItem struct {
	Name           string `json:"name"`
	Price          string `json:"price,omitempty"`
	Categories     string `json:"categories,omitempty"`
	HasTitle       bool   `json:"has_title"`
	HasDescription bool   `json:"has_description"`
}

// WorklistWriter writes newline-delimited JSON worklist items.
type WorklistWriter struct {
	file    *os.File
	writer  *bufio.Writer
	encoder *json.Encoder
}

// NewWorklistWriter initialises the worklist writer.
func NewWorklistWriter(filename string) (*WorklistWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create worklist file: %w", err)
	}

	buffer := bufio.NewWriter(f)
	return &WorklistWriter{
		file:    f,
		writer:  buffer,
		encoder: json.NewEncoder(buffer),
	}, nil
}

// Write appends items in JSONL format.
func (w *WorklistWriter) Write(items []WorklistItem) error {
	for _, item := range items {
		if err := w.encoder.Encode(item); err != nil {
			return fmt.Errorf("encode worklist item: %w", err)
		}
	}
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flush worklist writer: %w", err)
	}
	return nil
}

// Close flushes buffers and closes the underlying file.
func (w *WorklistWriter) Close() error {
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flush worklist writer: %w", err)
	}
	return w.file.Close()
}

// BuildWorklist converts needs-SEO records into worklist items.
func BuildWorklist(t *catalog.Table) []WorklistItem {
	records := NeedsSEO(t)
	items := make([]WorklistItem, 0, len(records))
	for _, r := range records {
		items = append(items, WorklistItem{
			Name:           r.Get(models.ColItemName),
			Price:          r.Get(models.ColPrice),
			Categories:     r.Get(models.ColCategories),
			HasTitle:       models.Present(r.Get(models.ColSEOTitle)),
			HasDescription: models.Present(r.Get(models.ColSEODescription)),
		})
	}
	return items
}
