package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current and longest goal streaks",
	Long: `Show how many consecutive days (ending today) met the daily goal,
and the longest such run ever recorded. A day without entries counts as
0 ml and breaks a streak. The goal comes from the persistent --goal flag.

Examples:
  go-water-monitor streak
  go-water-monitor streak --goal 2500`,
	RunE: runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	current, longest, err := t.Streaks(goal)
	if err != nil {
		return err
	}

	fmt.Printf("%s  goal %s/day\n", util.FormatHeaderTitle("💧 Streaks"), util.FormatVolume(goal))
	fmt.Printf("  Current  %s\n", formatDayCount(current))
	if longest.Length > 0 {
		fmt.Printf("  Longest  %s (%s to %s)\n",
			formatDayCount(longest.Length), longest.StartDate, longest.EndDate)
	} else {
		fmt.Println("  Longest  no day has met the goal yet")
	}
	return nil
}

func formatDayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
