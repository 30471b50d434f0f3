package aggregator

import (
	"fmt"
	"math"
	"time"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Aggregator computes statistics over a DailyLog snapshot. Every method
// is pure with respect to the log: nothing is ever mutated. Today-relative
// queries take their clock from the injectable now function so tests can
// pin the calendar.
type Aggregator struct {
	nowFn func() time.Time
}

// New creates an Aggregator on the shared timezone-aware clock
func New() *Aggregator {
	return NewWithClock(func() time.Time {
		return util.GetTimeProvider().Now()
	})
}

// NewWithClock creates an Aggregator with a fixed clock
func NewWithClock(now func() time.Time) *Aggregator {
	return &Aggregator{nowFn: now}
}

// DailyTotal sums the amounts logged on date; 0 when the date is absent
func (a *Aggregator) DailyTotal(log model.DailyLog, date string) float64 {
	return log.DayTotal(date)
}

// LastNDaysTotals returns exactly n rows for the trailing n calendar days
// ending today, oldest first, with 0 for days without entries. Nil when
// n <= 0.
func (a *Aggregator) LastNDaysTotals(log model.DailyLog, n int) []model.DayTotal {
	if n <= 0 {
		return nil
	}

	today := a.nowFn()
	rows := make([]model.DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(constants.DateLayout)
		rows = append(rows, model.DayTotal{Date: date, Total: log.DayTotal(date)})
	}
	return rows
}

// Average returns the mean of the last n daily totals, rounded to 2
// decimal places; 0 when n <= 0
func (a *Aggregator) Average(log model.DailyLog, n int) float64 {
	if n <= 0 {
		return 0
	}

	var sum float64
	for _, row := range a.LastNDaysTotals(log, n) {
		sum += row.Total
	}
	return round2(sum / float64(n))
}

// GoalPercentage returns 100*total/goal for date, rounded to 1 decimal
// place; it may exceed 100. A non-positive goal is rejected.
func (a *Aggregator) GoalPercentage(log model.DailyLog, date string, goal float64) (float64, error) {
	if goal <= 0 {
		return 0, &model.ValidationError{
			Field:  "goal",
			Value:  fmt.Sprintf("%v", goal),
			Reason: "must be positive",
		}
	}
	return round1(100 * log.DayTotal(date) / goal), nil
}

// GoalAchieved reports whether date's total meets goal. A non-positive
// goal is never achieved.
func (a *Aggregator) GoalAchieved(log model.DailyLog, date string, goal float64) bool {
	return goal > 0 && log.DayTotal(date) >= goal
}

// MonthlyTotals returns one row per calendar day of the month, zeros
// included, using the month's true day count
func (a *Aggregator) MonthlyTotals(log model.DailyLog, year, month int) ([]model.DayTotal, error) {
	if month < 1 || month > 12 {
		return nil, &model.ValidationError{
			Field:  "month",
			Value:  fmt.Sprintf("%d", month),
			Reason: "must be between 1 and 12",
		}
	}

	// Day 0 of the next month normalizes to this month's last day
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	rows := make([]model.DayTotal, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		rows = append(rows, model.DayTotal{Date: date, Total: log.DayTotal(date)})
	}
	return rows, nil
}

// MonthlyStatistics aggregates one calendar month. Best and worst rank
// only days with strictly positive totals; a month with none has nil
// best/worst and zero total/average.
func (a *Aggregator) MonthlyStatistics(log model.DailyLog, year, month int) (model.MonthlyStats, error) {
	rows, err := a.MonthlyTotals(log, year, month)
	if err != nil {
		return model.MonthlyStats{}, err
	}

	stats := model.MonthlyStats{
		Year:        year,
		Month:       month,
		DaysInMonth: len(rows),
	}

	var sum float64
	for i := range rows {
		row := rows[i]
		if row.Total <= 0 {
			continue
		}
		sum += row.Total
		stats.DaysLogged++
		if stats.BestDay == nil || row.Total > stats.BestDay.Total {
			best := row
			stats.BestDay = &best
		}
		if stats.WorstDay == nil || row.Total < stats.WorstDay.Total {
			worst := row
			stats.WorstDay = &worst
		}
	}

	if stats.DaysLogged > 0 {
		stats.Total = sum
		stats.Average = round2(sum / float64(stats.DaysLogged))
	}
	return stats, nil
}

// AllTimeStatistics applies the monthly max/min/average logic across every
// date ever logged with a positive total. First and last logged dates
// mirror raw key presence, so zero-total days still count for them.
func (a *Aggregator) AllTimeStatistics(log model.DailyLog) model.AllTimeStats {
	dates := log.SortedDates()
	if len(dates) == 0 {
		return model.AllTimeStats{}
	}

	stats := model.AllTimeStats{
		FirstLoggedDate: dates[0],
		LastLoggedDate:  dates[len(dates)-1],
		TotalEntries:    log.TotalEntries(),
	}

	var sum float64
	for _, date := range dates {
		total := log.DayTotal(date)
		if total <= 0 {
			continue
		}
		sum += total
		stats.DaysLogged++
		if stats.BestDay == nil || total > stats.BestDay.Total {
			stats.BestDay = &model.DayTotal{Date: date, Total: total}
		}
		if stats.WorstDay == nil || total < stats.WorstDay.Total {
			stats.WorstDay = &model.DayTotal{Date: date, Total: total}
		}
	}

	if stats.DaysLogged > 0 {
		stats.Total = sum
		stats.Average = round2(sum / float64(stats.DaysLogged))
	}
	return stats
}

// WeeklySummary covers the trailing seven days ending today. Best and
// worst are the plain per-day max/min over those rows, zero days included,
// with the earliest day winning ties.
func (a *Aggregator) WeeklySummary(log model.DailyLog) model.WeeklySummary {
	days := a.LastNDaysTotals(log, 7)

	summary := model.WeeklySummary{
		Days:     days,
		BestDay:  days[0],
		WorstDay: days[0],
	}

	for _, row := range days {
		summary.Total += row.Total
		if row.Total > 0 {
			summary.DaysWithIntake++
		}
		if row.Total > summary.BestDay.Total {
			summary.BestDay = row
		}
		if row.Total < summary.WorstDay.Total {
			summary.WorstDay = row
		}
	}
	summary.Average = round2(summary.Total / 7)
	return summary
}

// TimeOfDayBuckets classifies one day's entries by the hour of their
// timestamp. Entries with unparsable timestamps are skipped, not errors.
func (a *Aggregator) TimeOfDayBuckets(log model.DailyLog, date string) model.TimeOfDayBuckets {
	var buckets model.TimeOfDayBuckets
	for _, entry := range log.EntriesFor(date) {
		loggedAt, err := entry.LoggedAt()
		if err != nil {
			util.LogDebugf("Skipping entry with unparsable timestamp %q on %s", entry.Timestamp, date)
			continue
		}

		hour := loggedAt.Hour()
		switch {
		case hour >= constants.MorningStartHour && hour < constants.AfternoonStartHour:
			buckets.Morning += entry.Amount
		case hour >= constants.AfternoonStartHour && hour < constants.EveningStartHour:
			buckets.Afternoon += entry.Amount
		case hour >= constants.EveningStartHour && hour < constants.NightStartHour:
			buckets.Evening += entry.Amount
		default:
			buckets.Night += entry.Amount
		}
	}
	return buckets
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
