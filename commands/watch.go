package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/presentation/display"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of today's intake",
	Long: `Full-screen dashboard showing today's progress, time-of-day buckets,
streaks and the trailing week. It refreshes on a timer and whenever the
log document changes on disk, so entries logged from another terminal
appear immediately.

Keys: q quit, b backup, r refresh.

Examples:
  go-water-monitor watch
  go-water-monitor watch --interval 2`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 5,
		"Refresh interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval < 1 || watchInterval > 300 {
		return fmt.Errorf("interval must be between 1 and 300 seconds")
	}

	monitor := display.NewMonitor(buildTracker(), time.Duration(watchInterval)*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	return monitor.Run(ctx)
}
