package formatter

import (
	"encoding/json"
	"os"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format emits the canonical statistics struct when the report carries
// one, otherwise the report itself
func (f *JSONFormatter) Format(report Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if report.Data != nil {
		return encoder.Encode(report.Data)
	}
	return encoder.Encode(report)
}
