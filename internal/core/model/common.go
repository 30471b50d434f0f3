package model

import (
	"time"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
)

// ValidateDate checks that date is a well-formed YYYY-MM-DD calendar date
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return &ValidationError{Field: "date", Value: date, Reason: "want YYYY-MM-DD"}
	}
	return nil
}

// timestampLayouts are tried in order when parsing entry timestamps.
// Zone-less values come from imports of older exports and keep their
// literal clock time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp parses an entry timestamp in any accepted ISO-8601 shape
func ParseTimestamp(ts string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, ts)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// NextDate returns the calendar date immediately after date, which must be
// valid
func NextDate(date string) string {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(constants.DateLayout)
}
