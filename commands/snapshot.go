package commands

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:    "snapshot",
	Short:  "Debug command to print the dashboard snapshot as JSON",
	Long:   `Computes everything the watch dashboard renders and prints it to the console without UI.`,
	Hidden: true, // Hidden from help
	RunE:   runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	snap, err := t.Snapshot()
	if err != nil {
		return err
	}

	data, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
