package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import entries from a CSV file",
	Long: `Import entries from a CSV file with Date, Timestamp and Amount
columns (Note optional). Rows are appended to the existing log; nothing is
replaced. A single malformed row aborts the whole import before anything
is persisted.

Examples:
  go-water-monitor import water_intake.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	rows, err := t.Import(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d entries from %s\n", rows, args[0])
	return nil
}
