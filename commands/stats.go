package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/presentation/formatter"
	"github.com/hydralog/go-water-monitor/internal/tracker"
	"github.com/hydralog/go-water-monitor/internal/util"
)

var (
	statsDays   int
	statsWeek   bool
	statsMonth  string
	statsAll    bool
	statsOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show intake statistics",
	Long: `Show intake statistics for a trailing day range, the current week,
one calendar month, or the whole log.

Examples:
  go-water-monitor stats                     # Last 7 days
  go-water-monitor stats --days 30           # Last 30 days
  go-water-monitor stats --week              # Weekly summary
  go-water-monitor stats --month 2026-08     # One calendar month
  go-water-monitor stats --all               # All-time statistics
  go-water-monitor stats --output json       # Machine-readable output`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVar(&statsDays, "days", 7,
		"Trailing day range ending today")
	statsCmd.Flags().BoolVarP(&statsWeek, "week", "w", false,
		"Weekly summary of the trailing 7 days")
	statsCmd.Flags().StringVarP(&statsMonth, "month", "m", "",
		"One calendar month (YYYY-MM)")
	statsCmd.Flags().BoolVarP(&statsAll, "all", "a", false,
		"All-time statistics")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "table",
		"Output format (table, json, csv, summary)")
}

func runStats(cmd *cobra.Command, args []string) error {
	modes := 0
	if cmd.Flags().Changed("days") {
		modes++
	}
	if statsWeek {
		modes++
	}
	if statsMonth != "" {
		modes++
	}
	if statsAll {
		modes++
	}
	if modes > 1 {
		return fmt.Errorf("specify at most one of --days, --week, --month, --all")
	}

	f, err := buildFormatter(statsOutput)
	if err != nil {
		return err
	}

	t := buildTracker()

	var report formatter.Report
	switch {
	case statsWeek:
		report, err = weeklyReport(t)
	case statsMonth != "":
		report, err = monthlyReport(t, statsMonth)
	case statsAll:
		report, err = allTimeReport(t)
	default:
		report, err = trailingDaysReport(t, statsDays)
	}
	if err != nil {
		return err
	}

	return f.Format(report)
}

// buildFormatter selects the output implementation
func buildFormatter(format string) (formatter.Formatter, error) {
	switch format {
	case "table":
		return formatter.NewTableFormatter(), nil
	case "json":
		return formatter.NewJSONFormatter(), nil
	case "csv":
		return formatter.NewCSVFormatter(), nil
	case "summary":
		return formatter.NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (want table, json, csv or summary)", format)
	}
}

func trailingDaysReport(t *tracker.Tracker, days int) (formatter.Report, error) {
	if days <= 0 {
		return formatter.Report{}, fmt.Errorf("--days must be positive, got %d", days)
	}

	rows, err := t.LastNDays(days)
	if err != nil {
		return formatter.Report{}, err
	}
	average, err := t.AverageOverDays(days)
	if err != nil {
		return formatter.Report{}, err
	}

	return formatter.Report{
		Title: fmt.Sprintf("Last %d Days", days),
		Days:  rows,
		Goal:  goal,
		Items: []formatter.Item{
			{Label: "Average per day", Value: util.FormatVolume(average)},
		},
		Data: struct {
			Days    []model.DayTotal `json:"days"`
			Average float64          `json:"average"`
		}{Days: rows, Average: average},
	}, nil
}

func weeklyReport(t *tracker.Tracker) (formatter.Report, error) {
	week, err := t.Weekly()
	if err != nil {
		return formatter.Report{}, err
	}

	return formatter.Report{
		Title: "Weekly Summary",
		Days:  week.Days,
		Goal:  goal,
		Items: []formatter.Item{
			{Label: "Total", Value: util.FormatVolume(week.Total)},
			{Label: "Average per day", Value: util.FormatVolume(week.Average)},
			{Label: "Days with intake", Value: fmt.Sprintf("%d of 7", week.DaysWithIntake)},
			{Label: "Best day", Value: fmt.Sprintf("%s (%s)", week.BestDay.Date, util.FormatVolume(week.BestDay.Total))},
			{Label: "Worst day", Value: fmt.Sprintf("%s (%s)", week.WorstDay.Date, util.FormatVolume(week.WorstDay.Total))},
		},
		Data: week,
	}, nil
}

func monthlyReport(t *tracker.Tracker, month string) (formatter.Report, error) {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return formatter.Report{}, fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}

	stats, err := t.Monthly(parsed.Year(), int(parsed.Month()))
	if err != nil {
		return formatter.Report{}, err
	}
	grid, err := t.MonthlyGrid(parsed.Year(), int(parsed.Month()))
	if err != nil {
		return formatter.Report{}, err
	}

	items := []formatter.Item{
		{Label: "Total", Value: util.FormatVolume(stats.Total)},
		{Label: "Average per logged day", Value: util.FormatVolume(stats.Average)},
		{Label: "Days logged", Value: fmt.Sprintf("%d of %d", stats.DaysLogged, stats.DaysInMonth)},
	}
	if stats.BestDay != nil {
		items = append(items, formatter.Item{
			Label: "Best day",
			Value: fmt.Sprintf("%s (%s)", stats.BestDay.Date, util.FormatVolume(stats.BestDay.Total)),
		})
	}
	if stats.WorstDay != nil {
		items = append(items, formatter.Item{
			Label: "Worst day",
			Value: fmt.Sprintf("%s (%s)", stats.WorstDay.Date, util.FormatVolume(stats.WorstDay.Total)),
		})
	}

	return formatter.Report{
		Title: parsed.Format("January 2006"),
		Days:  grid,
		Goal:  goal,
		Items: items,
		Data:  stats,
	}, nil
}

func allTimeReport(t *tracker.Tracker) (formatter.Report, error) {
	stats, err := t.AllTime()
	if err != nil {
		return formatter.Report{}, err
	}

	items := []formatter.Item{
		{Label: "Total", Value: util.FormatVolume(stats.Total)},
		{Label: "Average per logged day", Value: util.FormatVolume(stats.Average)},
		{Label: "Days logged", Value: fmt.Sprintf("%d", stats.DaysLogged)},
		{Label: "Total entries", Value: fmt.Sprintf("%d", stats.TotalEntries)},
	}
	if stats.BestDay != nil {
		items = append(items, formatter.Item{
			Label: "Best day",
			Value: fmt.Sprintf("%s (%s)", stats.BestDay.Date, util.FormatVolume(stats.BestDay.Total)),
		})
	}
	if stats.WorstDay != nil {
		items = append(items, formatter.Item{
			Label: "Worst day",
			Value: fmt.Sprintf("%s (%s)", stats.WorstDay.Date, util.FormatVolume(stats.WorstDay.Total)),
		})
	}
	if stats.FirstLoggedDate != "" {
		items = append(items, formatter.Item{
			Label: "Logging since",
			Value: fmt.Sprintf("%s (last %s)", stats.FirstLoggedDate, stats.LastLoggedDate),
		})
	}

	return formatter.Report{
		Title: "All Time",
		Items: items,
		Data:  stats,
	}, nil
}
