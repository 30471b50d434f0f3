// Package fixtures builds deterministic water-log test data: in-memory
// logs with known totals, and document files for store-level tests.
package fixtures

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
)

// LogGenerator generates test water logs
type LogGenerator struct {
	baseDir string
}

// NewLogGenerator creates a generator writing documents under baseDir
func NewLogGenerator(baseDir string) *LogGenerator {
	return &LogGenerator{baseDir: baseDir}
}

// SteadyLog returns a log covering days consecutive calendar days ending
// at end, each day holding entriesPerDay entries of amount ml spread
// hourly from 08:00
func SteadyLog(end time.Time, days, entriesPerDay int, amount float64) model.DailyLog {
	log := model.NewDailyLog()
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		date := day.Format(constants.DateLayout)
		for j := 0; j < entriesPerDay; j++ {
			loggedAt := time.Date(day.Year(), day.Month(), day.Day(), 8+j, 0, 0, 0, day.Location())
			log[date] = append(log[date], model.NewEntry(amount, "", loggedAt))
		}
	}
	return log
}

// TotalsLog returns a log whose daily totals follow totals, oldest first,
// ending at end. A zero total leaves that day unlogged, so streak and
// rollup tests can model gap days.
func TotalsLog(end time.Time, totals []float64) model.DailyLog {
	log := model.NewDailyLog()
	for i, total := range totals {
		if total == 0 {
			continue
		}
		day := end.AddDate(0, 0, i-len(totals)+1)
		date := day.Format(constants.DateLayout)
		loggedAt := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())
		log[date] = append(log[date], model.NewEntry(total, "", loggedAt))
	}
	return log
}

// WriteDocument persists a log as a JSON document named name under the
// generator's base directory and returns its path
func (g *LogGenerator) WriteDocument(name string, log model.DailyLog) (string, error) {
	data, err := sonic.ConfigStd.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
