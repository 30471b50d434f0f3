package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// StorageError reports a failed document operation
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// backupPrefix names snapshot files in the backup directory
const backupPrefix = "water_log_backup_"

// LogStore owns the canonical on-disk document: a JSON object mapping
// date keys to entry lists. Saves replace the whole document atomically,
// so a concurrent reader never observes a partial write.
type LogStore struct {
	path      string
	backupDir string
	mu        sync.Mutex
}

// NewLogStore creates a store for the document at path. Backups default
// to a backups/ directory next to the document.
func NewLogStore(path string) *LogStore {
	return &LogStore{
		path:      path,
		backupDir: filepath.Join(filepath.Dir(path), "backups"),
	}
}

// SetBackupDir overrides the backup snapshot directory
func (s *LogStore) SetBackupDir(dir string) {
	s.backupDir = dir
}

// Path returns the document location
func (s *LogStore) Path() string {
	return s.path
}

// Load reads the durable document. A missing document is the first-run
// case and yields an empty log; anything else that goes wrong is a
// StorageError — malformed content is never silently discarded.
func (s *LogStore) Load() (model.DailyLog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			util.LogDebugf("No document at %s, starting empty", s.path)
			return model.NewDailyLog(), nil
		}
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	var log model.DailyLog
	if err := sonic.Unmarshal(data, &log); err != nil {
		return nil, &StorageError{Op: "parse", Path: s.path, Err: err}
	}
	if log == nil {
		log = model.NewDailyLog()
	}
	if err := log.Validate(); err != nil {
		return nil, &StorageError{Op: "validate", Path: s.path, Err: err}
	}

	util.LogDebugf("Loaded %d dates (%d entries) from %s", len(log), log.TotalEntries(), s.path)
	return log, nil
}

// Save serializes the log with sorted keys and atomically replaces the
// document via a temp file and rename
func (s *LogStore) Save(log model.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := sonic.ConfigStd.MarshalIndent(log, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StorageError{Op: "mkdir", Path: filepath.Dir(s.path), Err: err}
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return &StorageError{Op: "write", Path: tempPath, Err: err}
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return &StorageError{Op: "rename", Path: s.path, Err: err}
	}

	util.LogDebugf("Saved %d dates to %s", len(log), s.path)
	return nil
}

// Backup copies the current document to a timestamped snapshot in the
// backup directory and returns the snapshot path. When no document exists
// yet there is nothing to snapshot and it returns "" with no error.
func (s *LogStore) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", &StorageError{Op: "read", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return "", &StorageError{Op: "mkdir", Path: s.backupDir, Err: err}
	}

	stamp := util.GetTimeProvider().FormatNow(constants.BackupTimeLayout)
	backupPath := filepath.Join(s.backupDir, fmt.Sprintf("%s%s.json", backupPrefix, stamp))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", &StorageError{Op: "write", Path: backupPath, Err: err}
	}

	util.LogInfof("Backup written to %s", backupPath)
	return backupPath, nil
}

// BackupInfo describes one snapshot in the backup directory
type BackupInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ListBackups returns the snapshots in the backup directory, oldest
// first; the sortable name stamp makes lexical order chronological. A
// missing backup directory means no snapshots, not an error.
func (s *LogStore) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "list", Path: s.backupDir, Err: err}
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			util.LogDebugf("Skipping unreadable backup %s: %v", entry.Name(), err)
			continue
		}
		backups = append(backups, BackupInfo{
			Path:    filepath.Join(s.backupDir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Path < backups[j].Path
	})
	return backups, nil
}

// PruneOlderThan removes every date key strictly before cutoffDate,
// persists when anything was removed, and returns the number of removed
// keys
func (s *LogStore) PruneOlderThan(cutoffDate string) (int, error) {
	if err := model.ValidateDate(cutoffDate); err != nil {
		return 0, err
	}

	log, err := s.Load()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, date := range log.SortedDates() {
		if date < cutoffDate {
			delete(log, date)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}
	if err := s.Save(log); err != nil {
		return 0, err
	}

	util.LogInfof("Pruned %d dates before %s", removed, cutoffDate)
	return removed, nil
}
