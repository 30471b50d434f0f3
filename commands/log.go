package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var (
	logNote string
	logDate string
)

var logCmd = &cobra.Command{
	Use:   "log <amount-ml>",
	Short: "Log a water intake entry",
	Long: `Log a water intake entry in milliliters, stamped with the current
instant. By default the entry lands on today; --date backfills another day.

Examples:
  go-water-monitor log 250
  go-water-monitor log 500 --note "after run"
  go-water-monitor log 330 --date 2026-08-20`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logNote, "note", "n", "",
		"Optional annotation for the entry")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "",
		"Log for an explicit date (YYYY-MM-DD) instead of today")
}

func runLog(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount %q is not numeric", args[0])
	}

	t := buildTracker()

	if logDate != "" {
		entry, err := t.LogIntakeAt(logDate, amount, logNote)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s on %s%s\n", util.FormatVolume(entry.Amount), logDate, formatNote(entry.Note))
		return nil
	}

	entry, err := t.LogIntake(amount, logNote)
	if err != nil {
		return err
	}

	status, err := t.Status()
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s%s\n", util.FormatVolume(entry.Amount), formatNote(entry.Note))
	fmt.Printf("Today: %s of %s (%s) %s\n",
		util.FormatVolume(status.Total),
		util.FormatVolume(status.Goal),
		util.FormatPercent(status.Percent),
		util.HydrationEmoji(status.Percent),
	)
	return nil
}
