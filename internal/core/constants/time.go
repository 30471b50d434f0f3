package constants

const (
	// Calendar date layout used for all DailyLog keys
	DateLayout = "2006-01-02"

	// Entry timestamps are written with nanosecond precision so two
	// entries logged within the same second keep distinct identities
	TimestampLayout = "2006-01-02T15:04:05.999999999Z07:00"

	// Backup snapshot name suffix, sortable lexicographically
	BackupTimeLayout = "20060102_150405"

	// Streak lookback bound
	MaxStreakLookbackDays = 365

	// Retention pruning default
	DefaultKeepDays = 90
)

// Time-of-day bucket boundaries, half-open hour ranges.
// Night covers everything outside the three named ranges.
const (
	MorningStartHour   = 5
	AfternoonStartHour = 12
	EveningStartHour   = 17
	NightStartHour     = 21
)
