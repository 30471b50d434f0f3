package display

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/tracker"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output failed: %v", err)
	}
	return string(data)
}

func testSnapshot() tracker.Snapshot {
	return tracker.Snapshot{
		Status: tracker.DayStatus{
			Date:      "2024-03-15",
			Total:     1500,
			Goal:      2000,
			Percent:   75,
			Remaining: 500,
			Entries:   3,
		},
		Buckets: model.TimeOfDayBuckets{Morning: 500, Afternoon: 1000},
		Current: 2,
		Longest: model.StreakRecord{Length: 4, StartDate: "2024-03-01", EndDate: "2024-03-04"},
		Week: model.WeeklySummary{
			Days:           []model.DayTotal{{Date: "2024-03-15", Total: 1500}},
			Total:          1500,
			Average:        214.29,
			DaysWithIntake: 1,
			BestDay:        model.DayTotal{Date: "2024-03-15", Total: 1500},
			WorstDay:       model.DayTotal{Date: "2024-03-15", Total: 1500},
		},
		UpdatedAt: time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC),
	}
}

func TestDashboardRender(t *testing.T) {
	dashboard := &Dashboard{width: 74}

	output := captureOutput(t, func() {
		dashboard.Render(testSnapshot(), "/tmp/water_log.json")
	})

	for _, want := range []string{
		"Water Intake Monitor",
		"12:30:45",
		"Today",
		"2024-03-15",
		"1.5 L of 2 L",
		"75.0%",
		"500 ml to go, 3 entries so far",
		"Time of Day",
		"Morning",
		"Streaks",
		"Current  2 days",
		"Longest  4 days (2024-03-01 to 2024-03-04)",
		"Last 7 Days",
		"Week total 1.5 L, average 214.29 ml/day, 1 days with intake",
		"watching /tmp/water_log.json",
		"q quit · b backup · r refresh",
	} {
		assert.Contains(t, output, want)
	}
}

func TestDashboardRenderAchievedAndNotice(t *testing.T) {
	dashboard := &Dashboard{width: 74}
	snap := testSnapshot()
	snap.Status.Total = 2200
	snap.Status.Percent = 110
	snap.Status.Achieved = true
	snap.Status.Remaining = 0
	dashboard.SetNotice("backup written to /tmp/backups/x.json")

	output := captureOutput(t, func() {
		dashboard.Render(snap, "/tmp/water_log.json")
	})

	assert.Contains(t, output, "Goal reached with 3 entries")
	assert.Contains(t, output, "backup written to /tmp/backups/x.json")
}

func TestDashboardRenderEmptyStreak(t *testing.T) {
	dashboard := &Dashboard{width: 74}
	snap := testSnapshot()
	snap.Current = 0
	snap.Longest = model.StreakRecord{}

	output := captureOutput(t, func() {
		dashboard.Render(snap, "/tmp/water_log.json")
	})

	assert.Contains(t, output, "Current  0 days")
	assert.Contains(t, output, "Longest  none yet")
}
