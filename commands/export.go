package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the log to a CSV file",
	Long: `Export every entry to a CSV file with the columns
Date, Timestamp, Amount, Note — one row per entry, dates ascending.

Examples:
  go-water-monitor export water_intake.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	t := buildTracker()

	rows, err := t.Export(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", rows, args[0])
	return nil
}
