package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var bucketsDate string

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Show one day's intake by time of day",
	Long: `Break one day's intake into time-of-day buckets: morning (05-12),
afternoon (12-17), evening (17-21) and night (21-05).

Examples:
  go-water-monitor buckets
  go-water-monitor buckets --date 2026-08-20`,
	RunE: runBuckets,
}

func init() {
	rootCmd.AddCommand(bucketsCmd)

	bucketsCmd.Flags().StringVarP(&bucketsDate, "date", "d", "",
		"Day to break down (YYYY-MM-DD), defaults to today")
}

func runBuckets(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	date := bucketsDate
	if date == "" {
		date = t.Today()
	}

	buckets, err := t.Buckets(date)
	if err != nil {
		return err
	}

	total := buckets.Morning + buckets.Afternoon + buckets.Evening + buckets.Night
	rows := []struct {
		label string
		value float64
	}{
		{"Morning   05-12", buckets.Morning},
		{"Afternoon 12-17", buckets.Afternoon},
		{"Evening   17-21", buckets.Evening},
		{"Night     21-05", buckets.Night},
	}

	fmt.Printf("%s  %s\n", util.FormatHeaderTitle("💧 Time of Day"), date)
	for _, row := range rows {
		percent := 0.0
		if total > 0 {
			percent = 100 * row.value / total
		}
		fmt.Printf("  %s  %s %s\n",
			row.label,
			util.CreateProgressBar(percent, 30),
			util.FormatVolume(row.value),
		)
	}
	fmt.Printf("  Total %s\n", util.FormatVolume(total))
	return nil
}
