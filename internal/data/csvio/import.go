package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/data/store"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Importer merges CSV rows into the existing document
type Importer struct {
	store *store.LogStore
}

// NewImporter creates an Importer over the given store
func NewImporter(s *store.LogStore) *Importer {
	return &Importer{store: s}
}

// columnIndex locates the required columns in the header row by name,
// order-independent and case-insensitive. Note is optional.
type columnIndex struct {
	date      int
	timestamp int
	amount    int
	note      int
}

// Import reads path, validates every row, appends them to the existing
// log grouped by date, and persists the merged result. Any malformed row
// aborts the whole import before anything is written. Returns the number
// of imported rows.
func (im *Importer) Import(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return 0, err
	}

	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows of %s: %w", path, err)
	}

	// Validate everything up front so a bad row can never leave a
	// half-merged document behind
	type addition struct {
		date  string
		entry model.Entry
	}
	additions := make([]addition, 0, len(records))
	for i, record := range records {
		date := strings.TrimSpace(record[cols.date])
		if err := model.ValidateDate(date); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}

		amountText := strings.TrimSpace(record[cols.amount])
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: amount %q is not numeric", i+1, amountText)
		}
		if amount < 0 {
			return 0, fmt.Errorf("row %d: %w", i+1, &model.ValidationError{
				Field:  "amount",
				Value:  amountText,
				Reason: "must be non-negative",
			})
		}

		note := ""
		if cols.note >= 0 && cols.note < len(record) {
			note = record[cols.note]
		}

		additions = append(additions, addition{
			date: date,
			entry: model.Entry{
				Amount:    amount,
				Timestamp: strings.TrimSpace(record[cols.timestamp]),
				Note:      note,
			},
		})
	}

	log, err := im.store.Load()
	if err != nil {
		return 0, err
	}
	for _, add := range additions {
		if err := log.AppendEntry(add.date, add.entry); err != nil {
			return 0, err
		}
	}
	if err := im.store.Save(log); err != nil {
		return 0, err
	}

	util.LogInfof("Imported %d entries from %s", len(additions), path)
	return len(additions), nil
}

// resolveColumns maps header names to positions, requiring Date,
// Timestamp and Amount
func resolveColumns(header []string) (columnIndex, error) {
	cols := columnIndex{date: -1, timestamp: -1, amount: -1, note: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "timestamp":
			cols.timestamp = i
		case "amount":
			cols.amount = i
		case "note":
			cols.note = i
		}
	}

	for _, required := range []struct {
		name string
		idx  int
	}{
		{"Date", cols.date},
		{"Timestamp", cols.timestamp},
		{"Amount", cols.amount},
	} {
		if required.idx < 0 {
			return cols, fmt.Errorf("missing required column %q", required.name)
		}
	}
	return cols, nil
}
