package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteDate      string
	deleteTimestamp string
	deleteAll       bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one entry, or a whole day",
	Long: `Delete the entry matching a timestamp, or every entry of a day with
--all. Nothing matching is reported, not an error.

Examples:
  go-water-monitor delete --date 2026-08-20 --timestamp 2026-08-20T09:15:02.123456789+02:00
  go-water-monitor delete --date 2026-08-20 --all`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVarP(&deleteDate, "date", "d", "",
		"Day of the entry (YYYY-MM-DD), defaults to today")
	deleteCmd.Flags().StringVarP(&deleteTimestamp, "timestamp", "t", "",
		"Exact timestamp of the entry to delete")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false,
		"Delete every entry of the day")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if deleteAll == (deleteTimestamp != "") {
		return fmt.Errorf("specify exactly one of --timestamp or --all")
	}

	t := buildTracker()

	date := deleteDate
	if date == "" {
		date = t.Today()
	}

	if deleteAll {
		removed, err := t.ClearDate(date)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("No entries on %s\n", date)
			return nil
		}
		fmt.Printf("Removed all entries of %s\n", date)
		return nil
	}

	removed, err := t.DeleteEntry(date, deleteTimestamp)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No entry with that timestamp on %s\n", date)
		return nil
	}
	fmt.Printf("Entry deleted from %s\n", date)
	return nil
}
