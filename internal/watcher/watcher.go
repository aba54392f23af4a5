// Package watcher re-runs work when a watched file changes on disk.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/shuffle/internal/logging"
)

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
	Size    int64
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be watched
type FileFilter func(path string) bool

// ChangeHandler handles file change events
type ChangeHandler func(ctx context.Context, events []ChangeEvent) error

// FileWatcher watches paths and hands debounced batches of changes to its
// handlers.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	delay    time.Duration
	filters  []FileFilter
	handlers []ChangeHandler
	logger   logging.Logger
	mutex    sync.RWMutex
}

// NewFileWatcher creates a new file watcher. Changes arriving within
// debounceDelay of each other are delivered together.
func NewFileWatcher(debounceDelay time.Duration, logger logging.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FileWatcher{
		watcher: w,
		delay:   debounceDelay,
		logger:  logger.WithComponent("watcher"),
	}, nil
}

// AddFilter adds a file filter
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler adds a change handler
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddPath adds a path to watch
func (fw *FileWatcher) AddPath(path string) error {
	return fw.watcher.Add(filepath.Clean(path))
}

// WatchFile watches a single file. The parent directory is watched so that
// editors which replace the file through a rename are still observed.
func (fw *FileWatcher) WatchFile(path string) error {
	fw.AddFilter(OnlyFile(path))
	return fw.AddPath(filepath.Dir(path))
}

// Run delivers changes until ctx is done, then releases the underlying
// watcher. Handler errors are logged and do not stop the loop.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()

	pending := make(map[string]ChangeEvent)
	timer := time.NewTimer(fw.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if change, keep := fw.convert(event); keep {
				pending[change.Path] = change
				timer.Reset(fw.delay)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn(ctx, err, "File watcher error")
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			events := make([]ChangeEvent, 0, len(pending))
			for _, e := range pending {
				events = append(events, e)
			}
			sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })
			clear(pending)
			fw.dispatch(ctx, events)
		}
	}
}

func (fw *FileWatcher) dispatch(ctx context.Context, events []ChangeEvent) {
	fw.mutex.RLock()
	handlers := fw.handlers
	fw.mutex.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, events); err != nil {
			fw.logger.Warn(ctx, err, "File watcher handler error", "events", len(events))
		}
	}
}

func (fw *FileWatcher) convert(event fsnotify.Event) (ChangeEvent, bool) {
	fw.mutex.RLock()
	filters := fw.filters
	fw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return ChangeEvent{}, false
		}
	}

	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	case event.Op.Has(fsnotify.Chmod):
		return ChangeEvent{}, false
	default:
		eventType = EventTypeModified
	}

	change := ChangeEvent{Type: eventType, Path: event.Name}
	if info, err := os.Stat(event.Name); err == nil {
		change.ModTime = info.ModTime()
		change.Size = info.Size()
	}
	return change, true
}

// OnlyFile accepts events for path alone.
func OnlyFile(path string) FileFilter {
	want := absClean(path)
	return func(p string) bool {
		return absClean(p) == want
	}
}

func absClean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
