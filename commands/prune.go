package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
)

var pruneKeepDays int

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop dates older than the retention window",
	Long: `Remove every date more than --keep-days days old and persist the
result. Run backup first if the history matters.

Examples:
  go-water-monitor prune
  go-water-monitor prune --keep-days 30`,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().IntVar(&pruneKeepDays, "keep-days", constants.DefaultKeepDays,
		"Days of history to keep")
}

func runPrune(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	removed, cutoff, err := t.Prune(pruneKeepDays)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Printf("Nothing older than %s to prune\n", cutoff)
		return nil
	}

	fmt.Printf("Pruned %d dates before %s\n", removed, cutoff)
	return nil
}
