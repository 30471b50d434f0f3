package store

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hydralog/go-water-monitor/internal/util"
)

// Event signals a change to the watched document
type Event struct {
	Path      string
	Operation string
}

// Watcher reports changes to the document file. It watches the parent
// directory rather than the file itself, since atomic rename-replace
// saves would otherwise detach a file-level watch.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan Event
}

// NewWatcher watches the document at path for external changes
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		path:    path,
		events:  make(chan Event, 100),
	}

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only the document itself is interesting; the directory
			// watch also sees temp files and backups
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			select {
			case w.events <- Event{Path: event.Name, Operation: event.Op.String()}:
			default:
				// Drop when the consumer lags; the next event re-triggers a reload
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Document watch error: " + err.Error())
		}
	}
}

// Events returns the change notification channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
