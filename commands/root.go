package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/tracker"
	"github.com/hydralog/go-water-monitor/internal/util"
)

var (
	// Logging related
	debug    bool
	logLevel string
	logFile  string

	// Data locations
	dataFile  string
	backupDir string

	// Daily goal and timezone
	goal     float64
	timezone string

	rootCmd = &cobra.Command{
		Use:   "go-water-monitor",
		Short: "Water intake logging and analytics tool",
		Long: `go-water-monitor records water intake entries in a date-keyed JSON
document and derives statistics from them: daily totals, goal progress,
streaks, monthly and all-time rollups, and CSV import/export.

Examples:
  go-water-monitor                         # Show today's progress
  go-water-monitor log 250                 # Log 250 ml now
  go-water-monitor log 500 --note "lunch"  # Log with a note
  go-water-monitor stats --days 14         # Trailing two weeks
  go-water-monitor stats --month 2026-08   # One calendar month
  go-water-monitor streak                  # Current and longest streak
  go-water-monitor watch                   # Live dashboard`,
		PersistentPreRunE: setupEnvironment,
		RunE:              runStatus,
	}
)

const (
	defaultDataFile  = "~/.go-water-monitor/water_log.json"
	defaultBackupDir = "~/.go-water-monitor/backups"
	defaultLogFile   = "~/.go-water-monitor/logs/app.log"
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", defaultDataFile,
		"Water log document path")
	rootCmd.PersistentFlags().StringVar(&backupDir, "backup-dir", defaultBackupDir,
		"Backup snapshot directory")
	rootCmd.PersistentFlags().Float64VarP(&goal, "goal", "g", constants.DefaultDailyGoalMl,
		"Daily intake goal in milliliters")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone for day boundaries (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode (mirrors logs to stderr)")
}

// setupEnvironment initializes logging, timezone and paths before any
// command runs
func setupEnvironment(cmd *cobra.Command, args []string) error {
	if debug {
		logLevel = "debug"
	}

	logFile = expandPath(logFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return err
	}
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	dataFile = expandPath(dataFile)
	backupDir = expandPath(backupDir)

	if goal <= 0 {
		return fmt.Errorf("daily goal must be positive, got %v", goal)
	}
	return nil
}

// buildTracker wires a Tracker from the resolved flags
func buildTracker() *tracker.Tracker {
	return tracker.New(tracker.Config{
		DataPath:  dataFile,
		BackupDir: backupDir,
		Goal:      goal,
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	status, err := t.Status()
	if err != nil {
		return err
	}
	entries, err := t.TodayEntries()
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", util.FormatHeaderTitle("💧 Today"), status.Date)
	fmt.Printf("  %s of %s  %s %s %s\n",
		util.FormatVolume(status.Total),
		util.FormatVolume(status.Goal),
		util.CreateProgressBar(status.Percent, 38),
		util.FormatPercent(status.Percent),
		util.HydrationEmoji(status.Percent),
	)
	if status.Achieved {
		fmt.Println("  Daily goal reached")
	} else {
		fmt.Printf("  %s to go\n", util.FormatVolume(status.Remaining))
	}

	if len(entries) == 0 {
		fmt.Println("\nNo entries yet today. Log one with: go-water-monitor log 250")
		return nil
	}

	fmt.Printf("\n%s\n", util.FormatDataTitle("Entries"))
	for _, entry := range entries {
		fmt.Printf("  %s  %s%s\n",
			entryClock(entry),
			util.PadRight(util.FormatVolume(entry.Amount), 9),
			formatNote(entry.Note),
		)
	}
	return nil
}

// entryClock renders an entry's logging time as HH:MM, falling back to
// the raw timestamp when it cannot be parsed
func entryClock(entry model.Entry) string {
	loggedAt, err := entry.LoggedAt()
	if err != nil {
		return entry.Timestamp
	}
	return loggedAt.Format("15:04")
}

func formatNote(note string) string {
	if note == "" {
		return ""
	}
	return "  (" + note + ")"
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
