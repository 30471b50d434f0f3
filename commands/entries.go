package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var entriesDate string

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the intake entries of one day",
	Long: `List every entry logged on a day, with the exact timestamp that
identifies each entry for edit and delete.

Examples:
  go-water-monitor entries                    # Today's entries
  go-water-monitor entries --date 2026-08-20  # An explicit day`,
	RunE: runEntries,
}

func init() {
	rootCmd.AddCommand(entriesCmd)

	entriesCmd.Flags().StringVarP(&entriesDate, "date", "d", "",
		"Day to list (YYYY-MM-DD), defaults to today")
}

func runEntries(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	date := entriesDate
	if date == "" {
		date = t.Today()
	}

	entries, err := t.EntriesFor(date)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No entries on %s\n", date)
		return nil
	}

	var total float64
	for _, entry := range entries {
		total += entry.Amount
	}

	fmt.Printf("%s  %d entries, %s\n",
		util.FormatHeaderTitle("💧 "+date), len(entries), util.FormatVolume(total))
	for _, entry := range entries {
		fmt.Printf("  %s  %s%s\n",
			entryClock(entry),
			util.PadRight(util.FormatVolume(entry.Amount), 9),
			formatNote(entry.Note),
		)
		fmt.Printf("         timestamp %s\n", entry.Timestamp)
	}
	return nil
}
