package formatter

import (
	"fmt"
	"strings"

	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Date", "Intake", "Goal %", "Progress"},
	}
}

func (f *TableFormatter) Format(report Report) error {
	if report.Title != "" {
		fmt.Println(util.FormatHeaderTitle(report.Title))
	}

	if len(report.Days) > 0 {
		rows := make([][]string, 0, len(report.Days))
		var total float64
		for _, day := range report.Days {
			rows = append(rows, f.rowValues(day, report.Goal))
			total += day.Total
		}
		totalRow := []string{"Total", util.FormatVolume(total), "", ""}

		widths := f.calculateColumnWidths(rows, totalRow)

		f.printBorder(widths, "top")
		f.printRow(f.headers, widths)
		f.printBorder(widths, "middle")
		for _, row := range rows {
			f.printRow(row, widths)
		}
		f.printBorder(widths, "middle")
		f.printRow(totalRow, widths)
		f.printBorder(widths, "bottom")
	}

	for _, item := range report.Items {
		fmt.Printf("%s: %s\n", item.Label, item.Value)
	}
	return nil
}

// rowValues renders one day as table cells
func (f *TableFormatter) rowValues(day model.DayTotal, goal float64) []string {
	percent := "-"
	bar := ""
	if goal > 0 {
		p := 100 * day.Total / goal
		percent = util.FormatPercent(p)
		bar = util.CreateProgressBar(p, 26)
	}
	return []string{
		day.Date,
		util.FormatVolume(day.Total),
		percent,
		bar,
	}
}

// calculateColumnWidths determines the width of each column from content
func (f *TableFormatter) calculateColumnWidths(rows [][]string, totalRow []string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	check := func(values []string) {
		for i, value := range values {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		check(row)
	}
	check(totalRow)

	// Minimum widths for readability
	for i := range widths {
		if widths[i] < 6 {
			widths[i] = 6
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints one row with display-width-aware padding
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		fmt.Printf(" %s │", util.PadRight(value, widths[i]))
	}
	fmt.Println()
}
