package display

import (
	"context"
	"fmt"
	"time"

	"github.com/hydralog/go-water-monitor/internal/data/store"
	"github.com/hydralog/go-water-monitor/internal/tracker"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Monitor drives the live dashboard: it re-renders on a timer, on
// keyboard input, and whenever the document changes on disk (an entry
// logged from another terminal shows up without a restart).
type Monitor struct {
	tracker  *tracker.Tracker
	display  *Dashboard
	interval time.Duration
}

// NewMonitor creates a Monitor refreshing every interval
func NewMonitor(t *tracker.Tracker, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Monitor{
		tracker:  t,
		display:  NewDashboard(),
		interval: interval,
	}
}

// Run blocks until the context is cancelled or the user quits
func (m *Monitor) Run(ctx context.Context) error {
	util.LogInfo("Starting watch dashboard")

	keyboard, err := NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	defer keyboard.Close()

	watcher, err := store.NewWatcher(m.tracker.DocumentPath())
	if err != nil {
		return fmt.Errorf("failed to watch document: %w", err)
	}
	defer watcher.Close()

	m.display.EnterAlternateScreen()
	defer m.display.ExitAlternateScreen()

	if err := m.refresh(); err != nil {
		return err
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down watch dashboard")
			return nil

		case <-ticker.C:
			if err := m.refresh(); err != nil {
				return err
			}

		case event := <-watcher.Events():
			util.LogDebugf("Document changed on disk (%s), refreshing", event.Operation)
			m.display.SetNotice("document changed, reloaded")
			if err := m.refresh(); err != nil {
				return err
			}

		case keyEvent := <-keyboard.Events():
			quit, err := m.handleKey(keyEvent)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handleKey reacts to one key press; the bool reports a quit request
func (m *Monitor) handleKey(event KeyEvent) (bool, error) {
	if event.Type == KeyEscape {
		return true, nil
	}

	switch event.Key {
	case 'q', 'Q', 3: // 3 is Ctrl+C
		return true, nil

	case 'b', 'B':
		path, err := m.tracker.Backup()
		switch {
		case err != nil:
			m.display.SetNotice("backup failed: " + err.Error())
		case path == "":
			m.display.SetNotice("nothing to back up yet")
		default:
			m.display.SetNotice("backup written to " + path)
		}
		return false, m.refresh()

	case 'r', 'R':
		return false, m.refresh()
	}

	return false, nil
}

// refresh recomputes the snapshot and repaints
func (m *Monitor) refresh() error {
	snap, err := m.tracker.Snapshot()
	if err != nil {
		return err
	}
	m.display.Render(snap, m.tracker.DocumentPath())
	return nil
}
