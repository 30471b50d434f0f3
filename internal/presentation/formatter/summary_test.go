package formatter

import (
	"strings"
	"testing"

	"github.com/hydralog/go-water-monitor/internal/core/model"
)

func TestSummaryFormatterFormat(t *testing.T) {
	formatter := NewSummaryFormatter()

	tests := []struct {
		name       string
		report     Report
		wantInBody []string
		notInBody  []string
	}{
		{
			name:   "empty_report",
			report: Report{},
			wantInBody: []string{
				"Water Intake Summary",
				"No data to summarize",
				strings.Repeat("=", 60),
			},
		},
		{
			name: "days_with_goal",
			report: Report{
				Title: "Last 3 Days",
				Days: []model.DayTotal{
					{Date: "2024-03-13", Total: 500},
					{Date: "2024-03-14", Total: 1500},
					{Date: "2024-03-15", Total: 2200},
				},
				Goal: 2000,
			},
			wantInBody: []string{
				"Last 3 Days",
				"Date Range: 2024-03-13 to 2024-03-15",
				"Daily Totals:",
				"2024-03-13: 500 ml (25.0% of goal) 🔴",
				"2024-03-14: 1.5 L (75.0% of goal) 🟡",
				"2024-03-15: 2.2 L (110.0% of goal) 🟢",
			},
		},
		{
			name: "single_day_range",
			report: Report{
				Days: []model.DayTotal{
					{Date: "2024-03-15", Total: 800},
				},
			},
			wantInBody: []string{
				"Date Range: 2024-03-15",
			},
			notInBody: []string{
				"2024-03-15 to",
				"of goal",
			},
		},
		{
			name: "statistics_items",
			report: Report{
				Title: "All Time",
				Items: []Item{
					{Label: "Total", Value: "42 L"},
					{Label: "Days Logged", Value: "21"},
				},
			},
			wantInBody: []string{
				"All Time",
				"Statistics:",
				"  Total: 42 L",
				"  Days Logged: 21",
			},
			notInBody: []string{
				"Daily Totals:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() {
				if err := formatter.Format(tt.report); err != nil {
					t.Errorf("Format() error = %v", err)
				}
			})

			for _, want := range tt.wantInBody {
				if !strings.Contains(output, want) {
					t.Errorf("Expected output to contain %q, but it didn't.\nGot:\n%s", want, output)
				}
			}
			for _, not := range tt.notInBody {
				if strings.Contains(output, not) {
					t.Errorf("Expected output to not contain %q.\nGot:\n%s", not, output)
				}
			}
		})
	}
}
