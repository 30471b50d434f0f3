package model

// Derived statistics shapes. None of these are stored; they are computed
// from a DailyLog snapshot and serialized directly by the json output
// format.

// DayTotal is one row of a per-day breakdown
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// StreakRecord describes a run of consecutive days meeting the goal.
// Start and end are empty when the length is 0.
type StreakRecord struct {
	Length    int    `json:"length"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// MonthlyStats aggregates one calendar month. BestDay and WorstDay rank
// only days with a strictly positive total and are nil when the month has
// none.
type MonthlyStats struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Total       float64   `json:"total"`
	Average     float64   `json:"average"`
	BestDay     *DayTotal `json:"best_day"`
	WorstDay    *DayTotal `json:"worst_day"`
	DaysLogged  int       `json:"days_logged"`
	DaysInMonth int       `json:"days_in_month"`
}

// AllTimeStats aggregates the whole log. First/last logged dates mirror
// raw key presence, so a day of zero-amount entries still counts for them.
type AllTimeStats struct {
	Total           float64   `json:"total"`
	Average         float64   `json:"average"`
	BestDay         *DayTotal `json:"best_day"`
	WorstDay        *DayTotal `json:"worst_day"`
	DaysLogged      int       `json:"days_logged"`
	FirstLoggedDate string    `json:"first_logged_date,omitempty"`
	LastLoggedDate  string    `json:"last_logged_date,omitempty"`
	TotalEntries    int       `json:"total_entries"`
}

// WeeklySummary covers the trailing seven days ending today. Best and
// worst are the plain per-day max/min over those rows, zero days included.
type WeeklySummary struct {
	Total          float64    `json:"total"`
	Average        float64    `json:"average"`
	Days           []DayTotal `json:"days"`
	DaysWithIntake int        `json:"days_with_intake"`
	BestDay        DayTotal   `json:"best_day"`
	WorstDay       DayTotal   `json:"worst_day"`
}

// TimeOfDayBuckets classifies one day's entries by hour: morning [5,12),
// afternoon [12,17), evening [17,21), night otherwise
type TimeOfDayBuckets struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}
