package util

import (
	"strings"
	"testing"
)

func TestCreateProgressBar(t *testing.T) {
	tests := []struct {
		percentage float64
		width      int
		wantFilled int
	}{
		{percentage: 0, width: 26, wantFilled: 0},
		{percentage: 50, width: 26, wantFilled: 7},
		{percentage: 100, width: 26, wantFilled: 14},
		{percentage: 150, width: 26, wantFilled: 14}, // clamped
		{percentage: -10, width: 26, wantFilled: 0},  // clamped
	}

	for _, test := range tests {
		bar := CreateProgressBar(test.percentage, test.width)
		filled := strings.Count(bar, "█")
		if filled != test.wantFilled {
			t.Errorf("CreateProgressBar(%v, %d) filled %d cells, expected %d",
				test.percentage, test.width, filled, test.wantFilled)
		}
		if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
			t.Errorf("CreateProgressBar(%v, %d) = %q, expected bracketed bar",
				test.percentage, test.width, bar)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight(\"ab\", 5) = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight(\"abcdef\", 3) = %q, expected unchanged", got)
	}
	// Wide runes count double, so padding must shrink accordingly
	if got := PadRight("水", 4); got != "水  " {
		t.Errorf("PadRight(\"水\", 4) = %q", got)
	}
}

func TestHydrationEmoji(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{percentage: 120, expected: "🟢"},
		{percentage: 100, expected: "🟢"},
		{percentage: 99.9, expected: "🟡"},
		{percentage: 60, expected: "🟡"},
		{percentage: 59.9, expected: "🔴"},
		{percentage: 0, expected: "🔴"},
	}

	for _, test := range tests {
		if got := HydrationEmoji(test.percentage); got != test.expected {
			t.Errorf("HydrationEmoji(%v) = %q, expected %q", test.percentage, got, test.expected)
		}
	}
}
