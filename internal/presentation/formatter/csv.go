package formatter

import (
	"encoding/csv"
	"os"

	"github.com/hydralog/go-water-monitor/internal/util"
)

// CSVFormatter writes a statistics report as CSV to stdout: per-day rows
// when the report has a breakdown, metric/value rows otherwise. This is a
// display format; the export command produces the full interchange CSV.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if len(report.Days) > 0 {
		if err := w.Write([]string{"Date", "Intake"}); err != nil {
			return err
		}
		for _, day := range report.Days {
			record := []string{day.Date, util.FormatAmount(day.Total)}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	for _, item := range report.Items {
		if err := w.Write([]string{item.Label, item.Value}); err != nil {
			return err
		}
	}
	return nil
}
