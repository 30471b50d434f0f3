package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var (
	editDate      string
	editTimestamp string
	editAmount    float64
	editNote      string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an entry identified by its timestamp",
	Long: `Replace the amount (and optionally the note) of one entry. The entry
is identified by its exact timestamp within the day; list them with the
entries command.

Examples:
  go-water-monitor edit --date 2026-08-20 --timestamp 2026-08-20T09:15:02.123456789+02:00 --amount 400
  go-water-monitor edit --date 2026-08-20 --timestamp ... --amount 400 --note "refilled"`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editDate, "date", "d", "",
		"Day of the entry (YYYY-MM-DD), defaults to today")
	editCmd.Flags().StringVarP(&editTimestamp, "timestamp", "t", "",
		"Exact timestamp of the entry to edit")
	editCmd.Flags().Float64VarP(&editAmount, "amount", "a", 0,
		"New amount in milliliters")
	editCmd.Flags().StringVarP(&editNote, "note", "n", "",
		"New note (kept unchanged when the flag is omitted)")
	editCmd.MarkFlagRequired("timestamp")
	editCmd.MarkFlagRequired("amount")
}

func runEdit(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	date := editDate
	if date == "" {
		date = t.Today()
	}

	// Only touch the note when the flag was actually given, so an entry's
	// note survives an amount-only edit
	var note *string
	if cmd.Flags().Changed("note") {
		note = &editNote
	}

	found, err := t.EditEntry(date, editTimestamp, editAmount, note)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("No entry with that timestamp on %s\n", date)
		return nil
	}

	fmt.Printf("Entry updated to %s on %s\n", util.FormatVolume(editAmount), date)
	return nil
}
