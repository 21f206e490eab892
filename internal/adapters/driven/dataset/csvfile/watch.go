package csvfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/seamap/internal/logger"
)

// defaultDebounce groups the bursts of events editors produce on save.
const defaultDebounce = 250 * time.Millisecond

// Watcher reports changes to one CSV file. The parent directory is watched
// so replacing the file by rename is seen as well as writing in place.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the CSV file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path), debounce: defaultDebounce}
}

// Watch calls onChange after the file is written or recreated. It blocks
// until ctx is cancelled, which is not an error.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("csv: watching %s", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.handleFsEvent(event) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("csv: watch %s: %v", w.path, err)
		case <-timer.C:
			onChange()
		}
	}
}

// handleFsEvent reports whether the event changes the watched file's contents.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
