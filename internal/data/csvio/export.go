// Package csvio converts between the durable document and the flat CSV
// interchange format: exactly four columns, Date, Timestamp, Amount, Note,
// one row per entry.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hydralog/go-water-monitor/internal/data/store"
	"github.com/hydralog/go-water-monitor/internal/util"
)

var csvHeader = []string{"Date", "Timestamp", "Amount", "Note"}

// Exporter writes the current document as CSV
type Exporter struct {
	store *store.LogStore
}

// NewExporter creates an Exporter over the given store
func NewExporter(s *store.LogStore) *Exporter {
	return &Exporter{store: s}
}

// Export writes one header row and one row per entry to path, dates
// ascending with insertion order preserved within a date. Returns the
// number of entry rows written.
func (e *Exporter) Export(path string) (int, error) {
	log, err := e.store.Load()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	for _, date := range log.SortedDates() {
		for _, entry := range log.EntriesFor(date) {
			record := []string{
				date,
				entry.Timestamp,
				util.FormatAmount(entry.Amount),
				entry.Note,
			}
			if err := w.Write(record); err != nil {
				return rows, fmt.Errorf("failed to write row for %s: %w", date, err)
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	util.LogInfof("Exported %d entries to %s", rows, path)
	return rows, nil
}
