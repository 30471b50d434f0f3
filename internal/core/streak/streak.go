package streak

import (
	"time"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/data/aggregator"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Engine computes consecutive-day streaks against a daily goal. Both
// directions use the calendar-day interpretation: a day without entries
// has total 0, misses any positive goal, and breaks the run.
type Engine struct {
	agg   *aggregator.Aggregator
	nowFn func() time.Time
}

// NewEngine creates an Engine on the shared timezone-aware clock
func NewEngine(agg *aggregator.Aggregator) *Engine {
	return NewEngineWithClock(agg, func() time.Time {
		return util.GetTimeProvider().Now()
	})
}

// NewEngineWithClock creates an Engine with a fixed clock
func NewEngineWithClock(agg *aggregator.Aggregator, now func() time.Time) *Engine {
	return &Engine{agg: agg, nowFn: now}
}

// Current counts consecutive days meeting goal, walking backward from
// today inclusive, stopping at the first miss. The lookback is bounded so
// an effectively unbounded log still terminates.
func (e *Engine) Current(log model.DailyLog, goal float64) int {
	today := e.nowFn()
	streak := 0
	for i := 0; i < constants.MaxStreakLookbackDays; i++ {
		date := today.AddDate(0, 0, -i).Format(constants.DateLayout)
		if e.agg.DailyTotal(log, date) < goal {
			break
		}
		streak++
	}
	return streak
}

// Longest finds the maximal run of calendar-consecutive days meeting
// goal. It walks the logged dates in ascending order and extends a run
// only when the previous qualifying date is exactly one day earlier, so
// an unlogged gap breaks the run the same way a goal miss does. The
// earliest run wins ties. Returns a zero record on an empty log.
func (e *Engine) Longest(log model.DailyLog, goal float64) model.StreakRecord {
	var best, current model.StreakRecord
	previous := ""

	for _, date := range log.SortedDates() {
		if e.agg.DailyTotal(log, date) < goal {
			current = model.StreakRecord{}
			previous = ""
			continue
		}

		if current.Length > 0 && model.NextDate(previous) == date {
			current.Length++
			current.EndDate = date
		} else {
			current = model.StreakRecord{Length: 1, StartDate: date, EndDate: date}
		}
		previous = date

		if current.Length > best.Length {
			best = current
		}
	}
	return best
}
