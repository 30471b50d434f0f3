package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/util"
)

var backupList bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the log document",
	Long: `Copy the current log document to a timestamped snapshot in the
backup directory. Snapshots are never read back automatically; restore one
by copying it over the document by hand.

Examples:
  go-water-monitor backup
  go-water-monitor backup --list`,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().BoolVarP(&backupList, "list", "l", false,
		"List existing snapshots instead of writing one")
}

func runBackup(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	if backupList {
		backups, err := t.Backups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No snapshots yet")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("%s  %6d bytes  %s\n",
				b.ModTime.In(util.GetTimeProvider().Location()).Format("2006-01-02 15:04:05"),
				b.Size, b.Path)
		}
		return nil
	}

	path, err := t.Backup()
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println("No document to back up yet")
		return nil
	}

	fmt.Printf("Backup written to %s\n", path)
	return nil
}
