// Package watch triggers reloads when the data file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher observes one file and fires a callback after changes settle.
// Editors and downloaders produce bursts of write/rename events for a
// single save, so events are debounced before the callback runs.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	log      *zap.Logger

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a watcher for path. A non-positive debounce selects the
// default.
func New(path string, debounce time.Duration, onChange func(), log *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start watches the file's directory and spawns the event loop. The
// directory is watched rather than the file itself because most tools
// replace files by rename, which would drop a direct watch.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw
	go w.run(ctx)
	w.log.Info("watching data file", zap.String("path", w.path))
	return nil
}

// Stop terminates the event loop and waits for it to exit. Call at
// most once, and only after a successful Start.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.fsw.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	base := filepath.Base(w.path)
	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.Now()
			w.log.Debug("change detected", zap.String("event", ev.String()))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				pending = time.Time{}
				w.log.Info("data file changed", zap.String("path", w.path))
				w.onChange()
			}
		}
	}
}
