// Package tracker orchestrates the read-modify-write cycles behind the
// CLI: every mutation loads the document, applies one DailyLog operation,
// and persists the result; every query works on a freshly loaded snapshot.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/core/streak"
	"github.com/hydralog/go-water-monitor/internal/data/aggregator"
	"github.com/hydralog/go-water-monitor/internal/data/csvio"
	"github.com/hydralog/go-water-monitor/internal/data/store"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Config carries the resolved CLI configuration
type Config struct {
	DataPath  string
	BackupDir string
	Goal      float64
}

// Tracker wires the store, aggregator, streak engine and CSV converters
// behind one façade
type Tracker struct {
	config   Config
	store    *store.LogStore
	agg      *aggregator.Aggregator
	streaks  *streak.Engine
	exporter *csvio.Exporter
	importer *csvio.Importer
	nowFn    func() time.Time

	// mu guards the snapshot memo, valid while the document revision
	// on disk equals cachedRev
	mu         sync.Mutex
	cachedRev  util.FileRevision
	cachedSnap Snapshot
	snapCached bool
}

// DayStatus is the default view of today
type DayStatus struct {
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Goal      float64 `json:"goal"`
	Percent   float64 `json:"percent"`
	Achieved  bool    `json:"achieved"`
	Remaining float64 `json:"remaining"`
	Entries   int     `json:"entries"`
}

// Snapshot bundles everything the live dashboard renders, computed from
// one document load so the numbers are mutually consistent
type Snapshot struct {
	Status    DayStatus              `json:"status"`
	Buckets   model.TimeOfDayBuckets `json:"buckets"`
	Current   int                    `json:"current_streak"`
	Longest   model.StreakRecord     `json:"longest_streak"`
	Week      model.WeeklySummary    `json:"week"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// New creates a Tracker from the resolved configuration
func New(config Config) *Tracker {
	return newWithClock(config, func() time.Time {
		return util.GetTimeProvider().Now()
	})
}

func newWithClock(config Config, now func() time.Time) *Tracker {
	s := store.NewLogStore(config.DataPath)
	if config.BackupDir != "" {
		s.SetBackupDir(config.BackupDir)
	}
	agg := aggregator.NewWithClock(now)

	return &Tracker{
		config:   config,
		store:    s,
		agg:      agg,
		streaks:  streak.NewEngineWithClock(agg, now),
		exporter: csvio.NewExporter(s),
		importer: csvio.NewImporter(s),
		nowFn:    now,
	}
}

// DocumentPath returns the durable document location
func (t *Tracker) DocumentPath() string {
	return t.store.Path()
}

func (t *Tracker) today() string {
	return t.nowFn().Format(constants.DateLayout)
}

// LogIntake appends an entry for today, stamped with the current instant
func (t *Tracker) LogIntake(amount float64, note string) (model.Entry, error) {
	return t.LogIntakeAt(t.today(), amount, note)
}

// LogIntakeAt appends an entry for an explicit date
func (t *Tracker) LogIntakeAt(date string, amount float64, note string) (model.Entry, error) {
	log, err := t.store.Load()
	if err != nil {
		return model.Entry{}, err
	}

	entry, err := log.Append(date, amount, note, t.nowFn())
	if err != nil {
		return model.Entry{}, err
	}
	if err := t.store.Save(log); err != nil {
		return model.Entry{}, err
	}

	util.LogInfof("Logged %s on %s", util.FormatVolume(amount), date)
	return entry, nil
}

// EditEntry updates the amount (and note, when non-nil) of the entry
// matching timestamp on date. The bool reports whether a match was found;
// no match is a normal outcome, not an error.
func (t *Tracker) EditEntry(date, timestamp string, amount float64, note *string) (bool, error) {
	if amount < 0 {
		return false, &model.ValidationError{
			Field:  "amount",
			Value:  fmt.Sprintf("%v", amount),
			Reason: "must be non-negative",
		}
	}

	log, err := t.store.Load()
	if err != nil {
		return false, err
	}
	if !log.EditByTimestamp(date, timestamp, amount, note) {
		return false, nil
	}
	if err := t.store.Save(log); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEntry removes the entry matching timestamp on date
func (t *Tracker) DeleteEntry(date, timestamp string) (bool, error) {
	log, err := t.store.Load()
	if err != nil {
		return false, err
	}
	if !log.DeleteByTimestamp(date, timestamp) {
		return false, nil
	}
	if err := t.store.Save(log); err != nil {
		return false, err
	}
	return true, nil
}

// ClearDate removes every entry of a date
func (t *Tracker) ClearDate(date string) (bool, error) {
	log, err := t.store.Load()
	if err != nil {
		return false, err
	}
	if !log.DeleteAllForDate(date) {
		return false, nil
	}
	if err := t.store.Save(log); err != nil {
		return false, err
	}
	return true, nil
}

// EntriesFor lists the entries logged on date
func (t *Tracker) EntriesFor(date string) ([]model.Entry, error) {
	if err := model.ValidateDate(date); err != nil {
		return nil, err
	}
	log, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return log.EntriesFor(date), nil
}

// TodayEntries lists today's entries
func (t *Tracker) TodayEntries() ([]model.Entry, error) {
	return t.EntriesFor(t.today())
}

// Status reports today's progress against the configured goal
func (t *Tracker) Status() (DayStatus, error) {
	log, err := t.store.Load()
	if err != nil {
		return DayStatus{}, err
	}
	return t.statusFrom(log), nil
}

func (t *Tracker) statusFrom(log model.DailyLog) DayStatus {
	date := t.today()
	total := t.agg.DailyTotal(log, date)

	var percent float64
	if t.config.Goal > 0 {
		percent, _ = t.agg.GoalPercentage(log, date, t.config.Goal)
	}
	remaining := t.config.Goal - total
	if remaining < 0 {
		remaining = 0
	}

	return DayStatus{
		Date:      date,
		Total:     total,
		Goal:      t.config.Goal,
		Percent:   percent,
		Achieved:  t.agg.GoalAchieved(log, date, t.config.Goal),
		Remaining: remaining,
		Entries:   len(log.EntriesFor(date)),
	}
}

// Snapshot computes the full dashboard view from one document load.
// While the document revision on disk is unchanged the previous result
// is reused, so the watch ticker does not reload and re-aggregate an
// untouched document every interval.
func (t *Tracker) Snapshot() (Snapshot, error) {
	startTime := time.Now()

	// The revision is read before the load, so a concurrent rewrite can
	// only cause an extra recompute, never a stale reuse
	rev, statErr := util.StatRevision(t.store.Path())
	if statErr == nil {
		t.mu.Lock()
		if t.snapCached && rev == t.cachedRev {
			snap := t.cachedSnap
			t.mu.Unlock()
			snap.UpdatedAt = t.nowFn()
			return snap, nil
		}
		t.mu.Unlock()
	}

	log, err := t.store.Load()
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Status:    t.statusFrom(log),
		Buckets:   t.agg.TimeOfDayBuckets(log, t.today()),
		Current:   t.streaks.Current(log, t.config.Goal),
		Longest:   t.streaks.Longest(log, t.config.Goal),
		Week:      t.agg.WeeklySummary(log),
		UpdatedAt: t.nowFn(),
	}

	if statErr == nil {
		t.mu.Lock()
		t.cachedRev = rev
		t.cachedSnap = snap
		t.snapCached = true
		t.mu.Unlock()
	}

	util.LogDebugf("Snapshot computed in %v", time.Since(startTime))
	return snap, nil
}

// LastNDays returns the trailing n daily totals ending today
func (t *Tracker) LastNDays(n int) ([]model.DayTotal, error) {
	log, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return t.agg.LastNDaysTotals(log, n), nil
}

// AverageOverDays returns the mean daily total of the trailing n days
func (t *Tracker) AverageOverDays(n int) (float64, error) {
	log, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	return t.agg.Average(log, n), nil
}

// Weekly returns the trailing-seven-day summary
func (t *Tracker) Weekly() (model.WeeklySummary, error) {
	log, err := t.store.Load()
	if err != nil {
		return model.WeeklySummary{}, err
	}
	return t.agg.WeeklySummary(log), nil
}

// Monthly returns one calendar month's statistics
func (t *Tracker) Monthly(year, month int) (model.MonthlyStats, error) {
	log, err := t.store.Load()
	if err != nil {
		return model.MonthlyStats{}, err
	}
	return t.agg.MonthlyStatistics(log, year, month)
}

// MonthlyGrid returns the per-day breakdown of one calendar month
func (t *Tracker) MonthlyGrid(year, month int) ([]model.DayTotal, error) {
	log, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return t.agg.MonthlyTotals(log, year, month)
}

// AllTime returns statistics across the whole log
func (t *Tracker) AllTime() (model.AllTimeStats, error) {
	log, err := t.store.Load()
	if err != nil {
		return model.AllTimeStats{}, err
	}
	return t.agg.AllTimeStatistics(log), nil
}

// Buckets returns the time-of-day breakdown for date
func (t *Tracker) Buckets(date string) (model.TimeOfDayBuckets, error) {
	if err := model.ValidateDate(date); err != nil {
		return model.TimeOfDayBuckets{}, err
	}
	log, err := t.store.Load()
	if err != nil {
		return model.TimeOfDayBuckets{}, err
	}
	return t.agg.TimeOfDayBuckets(log, date), nil
}

// Today returns the current calendar date
func (t *Tracker) Today() string {
	return t.today()
}

// Streaks returns the current and longest streak against goal from one
// document load
func (t *Tracker) Streaks(goal float64) (int, model.StreakRecord, error) {
	log, err := t.store.Load()
	if err != nil {
		return 0, model.StreakRecord{}, err
	}
	return t.streaks.Current(log, goal), t.streaks.Longest(log, goal), nil
}

// Backup snapshots the document; the path is empty when there was nothing
// to back up
func (t *Tracker) Backup() (string, error) {
	return t.store.Backup()
}

// Backups lists the existing snapshots, oldest first
func (t *Tracker) Backups() ([]store.BackupInfo, error) {
	return t.store.ListBackups()
}

// Prune removes every date more than keepDays days old and returns the
// removed count together with the cutoff date used
func (t *Tracker) Prune(keepDays int) (int, string, error) {
	if keepDays < 0 {
		return 0, "", &model.ValidationError{
			Field:  "keep-days",
			Value:  fmt.Sprintf("%d", keepDays),
			Reason: "must be non-negative",
		}
	}

	cutoff := t.nowFn().AddDate(0, 0, -keepDays).Format(constants.DateLayout)
	removed, err := t.store.PruneOlderThan(cutoff)
	return removed, cutoff, err
}

// Export writes the document as CSV; returns the row count
func (t *Tracker) Export(path string) (int, error) {
	return t.exporter.Export(path)
}

// Import merges CSV rows into the document; returns the row count
func (t *Tracker) Import(path string) (int, error) {
	return t.importer.Import(path)
}
