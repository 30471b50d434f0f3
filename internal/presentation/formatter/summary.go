package formatter

import (
	"fmt"
	"strings"

	"github.com/hydralog/go-water-monitor/internal/util"
)

// SummaryFormatter renders a plain sectioned text report
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(report Report) error {
	fmt.Println(strings.Repeat("=", 60))
	if report.Title != "" {
		fmt.Println(report.Title)
	} else {
		fmt.Println("Water Intake Summary")
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if len(report.Days) == 0 && len(report.Items) == 0 {
		fmt.Println("No data to summarize")
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	if len(report.Days) > 0 {
		firstDate := report.Days[0].Date
		lastDate := report.Days[len(report.Days)-1].Date
		if firstDate == lastDate {
			fmt.Printf("Date Range: %s\n", firstDate)
		} else {
			fmt.Printf("Date Range: %s to %s\n", firstDate, lastDate)
		}
		fmt.Println()

		fmt.Println("Daily Totals:")
		for _, day := range report.Days {
			line := fmt.Sprintf("  %s: %s", day.Date, util.FormatVolume(day.Total))
			if report.Goal > 0 {
				percent := 100 * day.Total / report.Goal
				line += fmt.Sprintf(" (%s of goal) %s", util.FormatPercent(percent), util.HydrationEmoji(percent))
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	if len(report.Items) > 0 {
		fmt.Println("Statistics:")
		for _, item := range report.Items {
			fmt.Printf("  %s: %s\n", item.Label, item.Value)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 60))
	return nil
}
