package model

import (
	"fmt"
	"sort"
	"time"
)

// DailyLog is the full durable state: calendar date → entries for that
// day, insertion order preserved. Absent dates mean zero entries.
type DailyLog map[string][]Entry

// NewDailyLog returns an empty log
func NewDailyLog() DailyLog {
	return make(DailyLog)
}

// Append validates date and amount, then appends a new entry stamped with
// loggedAt
func (l DailyLog) Append(date string, amount float64, note string, loggedAt time.Time) (Entry, error) {
	entry := NewEntry(amount, note, loggedAt)
	if err := l.AppendEntry(date, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// AppendEntry appends an already-built entry, preserving its timestamp.
// Used by the CSV importer so imported instants survive verbatim.
func (l DailyLog) AppendEntry(date string, entry Entry) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if entry.Amount < 0 {
		return &ValidationError{
			Field:  "amount",
			Value:  fmt.Sprintf("%v", entry.Amount),
			Reason: "must be non-negative",
		}
	}
	l[date] = append(l[date], entry)
	return nil
}

// EditByTimestamp replaces the amount (and the note, when newNote is
// non-nil) of the entry whose timestamp matches exactly. Reports whether a
// match was found; no match is a no-op, not an error.
func (l DailyLog) EditByTimestamp(date, timestamp string, newAmount float64, newNote *string) bool {
	entries, ok := l[date]
	if !ok {
		return false
	}
	for i := range entries {
		if entries[i].Timestamp == timestamp {
			entries[i].Amount = newAmount
			if newNote != nil {
				entries[i].Note = *newNote
			}
			return true
		}
	}
	return false
}

// DeleteByTimestamp removes the entry whose timestamp matches exactly,
// dropping the date key once its list is empty. Reports whether anything
// was removed.
func (l DailyLog) DeleteByTimestamp(date, timestamp string) bool {
	entries, ok := l[date]
	if !ok {
		return false
	}
	for i := range entries {
		if entries[i].Timestamp == timestamp {
			l[date] = append(entries[:i], entries[i+1:]...)
			if len(l[date]) == 0 {
				delete(l, date)
			}
			return true
		}
	}
	return false
}

// DeleteAllForDate removes the whole date key; reports whether it existed
func (l DailyLog) DeleteAllForDate(date string) bool {
	if _, ok := l[date]; !ok {
		return false
	}
	delete(l, date)
	return true
}

// EntriesFor returns the entries logged on date, nil when absent
func (l DailyLog) EntriesFor(date string) []Entry {
	return l[date]
}

// DayTotal sums the amounts logged on date; 0 when absent
func (l DailyLog) DayTotal(date string) float64 {
	var total float64
	for _, entry := range l[date] {
		total += entry.Amount
	}
	return total
}

// SortedDates returns every date key in ascending order
func (l DailyLog) SortedDates() []string {
	dates := make([]string, 0, len(l))
	for date := range l {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TotalEntries counts every entry across all dates
func (l DailyLog) TotalEntries() int {
	count := 0
	for _, entries := range l {
		count += len(entries)
	}
	return count
}

// Validate checks the structural invariants of a freshly loaded document:
// well-formed date keys and non-negative amounts
func (l DailyLog) Validate() error {
	for date, entries := range l {
		if err := ValidateDate(date); err != nil {
			return err
		}
		for i, entry := range entries {
			if entry.Amount < 0 {
				return &ValidationError{
					Field:  "amount",
					Value:  fmt.Sprintf("%v", entry.Amount),
					Reason: fmt.Sprintf("entry %d of %s must be non-negative", i, date),
				}
			}
		}
	}
	return nil
}
