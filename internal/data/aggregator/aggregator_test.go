package aggregator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/testing/fixtures"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestAggregator() *Aggregator {
	return NewWithClock(func() time.Time { return testNow })
}

func day(date string, total float64) []model.Entry {
	return []model.Entry{{Amount: total, Timestamp: date + "T10:00:00Z"}}
}

func TestLastNDaysTotals(t *testing.T) {
	agg := newTestAggregator()
	log := model.DailyLog{
		"2024-03-10": day("2024-03-10", 700),
		"2024-03-14": day("2024-03-14", 500),
		"2024-03-15": day("2024-03-15", 1000),
	}

	t.Run("exactly n rows oldest first", func(t *testing.T) {
		rows := agg.LastNDaysTotals(log, 3)

		assert.Equal(t, []model.DayTotal{
			{Date: "2024-03-13", Total: 0},
			{Date: "2024-03-14", Total: 500},
			{Date: "2024-03-15", Total: 1000},
		}, rows)
	})

	t.Run("empty log still yields zero rows", func(t *testing.T) {
		rows := agg.LastNDaysTotals(model.NewDailyLog(), 2)

		assert.Equal(t, []model.DayTotal{
			{Date: "2024-03-14", Total: 0},
			{Date: "2024-03-15", Total: 0},
		}, rows)
	})

	t.Run("non-positive n", func(t *testing.T) {
		assert.Nil(t, agg.LastNDaysTotals(log, 0))
		assert.Nil(t, agg.LastNDaysTotals(log, -1))
	})
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		totals []float64 // oldest first, ending today
		n      int
		want   float64
	}{
		{
			name:   "exact mean",
			totals: []float64{1000, 500, 0},
			n:      3,
			want:   500,
		},
		{
			name:   "rounded to two decimals",
			totals: []float64{1000, 0, 1000},
			n:      3,
			want:   666.67,
		},
		{
			name:   "unlogged window",
			totals: nil,
			n:      7,
			want:   0,
		},
		{
			name:   "non-positive n",
			totals: []float64{1000},
			n:      0,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := newTestAggregator()
			log := fixtures.TotalsLog(testNow, tt.totals)
			assert.Equal(t, tt.want, agg.Average(log, tt.n))
		})
	}
}

func TestGoalPercentage(t *testing.T) {
	agg := newTestAggregator()
	log := model.DailyLog{
		"2024-03-14": day("2024-03-14", 1500),
		"2024-03-15": day("2024-03-15", 2500),
		"2024-03-13": day("2024-03-13", 1666),
	}

	tests := []struct {
		name string
		date string
		goal float64
		want float64
	}{
		{name: "three quarters", date: "2024-03-14", goal: 2000, want: 75},
		{name: "exceeds one hundred", date: "2024-03-15", goal: 2000, want: 125},
		{name: "rounded to one decimal", date: "2024-03-13", goal: 2000, want: 83.3},
		{name: "absent date", date: "2024-03-01", goal: 2000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := agg.GoalPercentage(log, tt.date, tt.goal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("non-positive goal rejected", func(t *testing.T) {
		for _, goal := range []float64{0, -2000} {
			_, err := agg.GoalPercentage(log, "2024-03-14", goal)

			var verr *model.ValidationError
			require.Error(t, err)
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "goal", verr.Field)
		}
	})
}

func TestGoalAchieved(t *testing.T) {
	agg := newTestAggregator()
	log := model.DailyLog{
		"2024-03-15": day("2024-03-15", 2000),
	}

	assert.True(t, agg.GoalAchieved(log, "2024-03-15", 2000))
	assert.False(t, agg.GoalAchieved(log, "2024-03-15", 2001))
	assert.False(t, agg.GoalAchieved(log, "2024-03-01", 2000))
	// Non-positive goals are never achieved, even with intake on record
	assert.False(t, agg.GoalAchieved(log, "2024-03-15", 0))
	assert.False(t, agg.GoalAchieved(log, "2024-03-15", -5))
}

func TestMonthlyTotals(t *testing.T) {
	agg := newTestAggregator()
	log := model.DailyLog{
		"2024-02-15": day("2024-02-15", 800),
	}

	t.Run("leap february", func(t *testing.T) {
		rows, err := agg.MonthlyTotals(log, 2024, 2)

		require.NoError(t, err)
		require.Len(t, rows, 29)
		assert.Equal(t, "2024-02-01", rows[0].Date)
		assert.Equal(t, "2024-02-29", rows[28].Date)
		assert.Equal(t, 800.0, rows[14].Total)
		assert.Equal(t, 0.0, rows[0].Total)
	})

	t.Run("plain february", func(t *testing.T) {
		rows, err := agg.MonthlyTotals(log, 2023, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 28)
	})

	t.Run("thirty day month", func(t *testing.T) {
		rows, err := agg.MonthlyTotals(log, 2024, 4)

		require.NoError(t, err)
		assert.Len(t, rows, 30)
	})

	t.Run("month out of range", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			_, err := agg.MonthlyTotals(log, 2024, month)

			var verr *model.ValidationError
			require.Error(t, err)
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "month", verr.Field)
		}
	})
}

func TestMonthlyStatistics(t *testing.T) {
	agg := newTestAggregator()

	t.Run("ranks positive days", func(t *testing.T) {
		log := model.DailyLog{
			"2024-02-10": day("2024-02-10", 2000),
			"2024-02-11": day("2024-02-11", 1000),
			"2024-02-20": day("2024-02-20", 3000),
		}

		stats, err := agg.MonthlyStatistics(log, 2024, 2)

		require.NoError(t, err)
		assert.Equal(t, model.MonthlyStats{
			Year:        2024,
			Month:       2,
			Total:       6000,
			Average:     2000,
			BestDay:     &model.DayTotal{Date: "2024-02-20", Total: 3000},
			WorstDay:    &model.DayTotal{Date: "2024-02-11", Total: 1000},
			DaysLogged:  3,
			DaysInMonth: 29,
		}, stats)
	})

	t.Run("empty month has nil best and worst", func(t *testing.T) {
		stats, err := agg.MonthlyStatistics(model.NewDailyLog(), 2024, 2)

		require.NoError(t, err)
		assert.Nil(t, stats.BestDay)
		assert.Nil(t, stats.WorstDay)
		assert.Equal(t, 0, stats.DaysLogged)
		assert.Equal(t, 0.0, stats.Total)
		assert.Equal(t, 0.0, stats.Average)
		assert.Equal(t, 29, stats.DaysInMonth)
	})

	t.Run("zero total day does not rank", func(t *testing.T) {
		log := model.DailyLog{
			"2024-02-10": day("2024-02-10", 0),
			"2024-02-11": day("2024-02-11", 1200),
		}

		stats, err := agg.MonthlyStatistics(log, 2024, 2)

		require.NoError(t, err)
		assert.Equal(t, 1, stats.DaysLogged)
		assert.Equal(t, &model.DayTotal{Date: "2024-02-11", Total: 1200}, stats.WorstDay)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := agg.MonthlyStatistics(model.NewDailyLog(), 2024, 13)
		assert.Error(t, err)
	})
}

func TestAllTimeStatistics(t *testing.T) {
	agg := newTestAggregator()

	t.Run("empty log", func(t *testing.T) {
		assert.Equal(t, model.AllTimeStats{}, agg.AllTimeStatistics(model.NewDailyLog()))
	})

	t.Run("spans the whole log", func(t *testing.T) {
		log := model.DailyLog{
			"2023-12-31": day("2023-12-31", 1500),
			"2024-02-15": {
				{Amount: 1000, Timestamp: "2024-02-15T09:00:00Z"},
				{Amount: 1500, Timestamp: "2024-02-15T15:00:00Z"},
			},
			// A logged day whose entries sum to zero still moves the
			// last-logged date, but never ranks as best or worst
			"2024-03-01": day("2024-03-01", 0),
		}

		stats := agg.AllTimeStatistics(log)

		assert.Equal(t, model.AllTimeStats{
			Total:           4000,
			Average:         2000,
			BestDay:         &model.DayTotal{Date: "2024-02-15", Total: 2500},
			WorstDay:        &model.DayTotal{Date: "2023-12-31", Total: 1500},
			DaysLogged:      2,
			FirstLoggedDate: "2023-12-31",
			LastLoggedDate:  "2024-03-01",
			TotalEntries:    4,
		}, stats)
	})
}

func TestWeeklySummary(t *testing.T) {
	agg := newTestAggregator()
	log := fixtures.TotalsLog(testNow, []float64{2000, 0, 1000, 3000, 0, 1500, 500})

	summary := agg.WeeklySummary(log)

	assert.Len(t, summary.Days, 7)
	assert.Equal(t, "2024-03-09", summary.Days[0].Date)
	assert.Equal(t, "2024-03-15", summary.Days[6].Date)
	assert.Equal(t, 8000.0, summary.Total)
	assert.Equal(t, 1142.86, summary.Average)
	assert.Equal(t, 5, summary.DaysWithIntake)
	assert.Equal(t, model.DayTotal{Date: "2024-03-12", Total: 3000}, summary.BestDay)
	// Two zero days; the earlier one wins
	assert.Equal(t, model.DayTotal{Date: "2024-03-10", Total: 0}, summary.WorstDay)
}

func TestWeeklySummaryEmptyLog(t *testing.T) {
	agg := newTestAggregator()

	summary := agg.WeeklySummary(model.NewDailyLog())

	assert.Len(t, summary.Days, 7)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, 0, summary.DaysWithIntake)
	assert.Equal(t, model.DayTotal{Date: "2024-03-09", Total: 0}, summary.BestDay)
	assert.Equal(t, model.DayTotal{Date: "2024-03-09", Total: 0}, summary.WorstDay)
}

func TestTimeOfDayBuckets(t *testing.T) {
	agg := newTestAggregator()

	entryAt := func(hour int, amount float64) model.Entry {
		return model.Entry{
			Amount:    amount,
			Timestamp: time.Date(2024, 3, 15, hour, 30, 0, 0, time.UTC).Format(time.RFC3339),
		}
	}

	t.Run("one entry per bucket", func(t *testing.T) {
		log := model.DailyLog{
			"2024-03-15": {entryAt(6, 250), entryAt(13, 250), entryAt(18, 250), entryAt(23, 250)},
		}

		assert.Equal(t, model.TimeOfDayBuckets{
			Morning:   250,
			Afternoon: 250,
			Evening:   250,
			Night:     250,
		}, agg.TimeOfDayBuckets(log, "2024-03-15"))
	})

	t.Run("boundary hours", func(t *testing.T) {
		log := model.DailyLog{
			"2024-03-15": {
				entryAt(5, 100),  // first morning hour
				entryAt(12, 200), // first afternoon hour
				entryAt(17, 300), // first evening hour
				entryAt(21, 400), // first night hour
				entryAt(4, 50),   // pre-dawn is night
				entryAt(0, 25),
			},
		}

		assert.Equal(t, model.TimeOfDayBuckets{
			Morning:   100,
			Afternoon: 200,
			Evening:   300,
			Night:     475,
		}, agg.TimeOfDayBuckets(log, "2024-03-15"))
	})

	t.Run("unparsable timestamp skipped", func(t *testing.T) {
		log := model.DailyLog{
			"2024-03-15": {
				{Amount: 999, Timestamp: "not a timestamp"},
				entryAt(6, 250),
			},
		}

		buckets := agg.TimeOfDayBuckets(log, "2024-03-15")
		assert.Equal(t, 250.0, buckets.Morning)
		assert.Equal(t, 0.0, buckets.Night)
	})

	t.Run("absent date", func(t *testing.T) {
		assert.Equal(t, model.TimeOfDayBuckets{}, agg.TimeOfDayBuckets(model.NewDailyLog(), "2024-03-15"))
	})
}

func BenchmarkAllTimeStatistics(b *testing.B) {
	agg := newTestAggregator()
	log := fixtures.SteadyLog(testNow, 365, 4, 250)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg.AllTimeStatistics(log)
	}
}

func BenchmarkWeeklySummary(b *testing.B) {
	agg := newTestAggregator()
	log := fixtures.SteadyLog(testNow, 365, 4, 250)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg.WeeklySummary(log)
	}
}
