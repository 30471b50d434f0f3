package formatter

import "github.com/hydralog/go-water-monitor/internal/core/model"

// Report is the one shape every output format renders: an optional
// per-day breakdown plus labeled summary values. Data carries the
// canonical statistics struct for the json format.
type Report struct {
	Title string           `json:"title"`
	Days  []model.DayTotal `json:"days,omitempty"`
	Goal  float64          `json:"goal,omitempty"`
	Items []Item           `json:"items,omitempty"`
	Data  interface{}      `json:"data,omitempty"`
}

// Item is one labeled summary value
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Formatter renders a report to stdout
type Formatter interface {
	Format(report Report) error
}
