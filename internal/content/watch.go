package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a content file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	log      logr.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher watches path. The parent directory is watched so that editors
// which save by renaming a temp file over the original keep triggering.
func NewWatcher(path string, debounce time.Duration, log logr.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := FormatFromPath(abs); err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, debounce: debounce, log: log, fsw: fsw}, nil
}

// Run blocks until ctx is done, calling onReload with each successfully
// reloaded document. Files that fail to load are logged and skipped so the
// last good document stays on screen.
func (w *Watcher) Run(ctx context.Context, onReload func(Document)) error {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			doc, err := Load(w.path)
			if err != nil {
				w.log.Error(err, "content reload failed", "path", w.path)
				continue
			}
			w.log.V(1).Info("content reloaded", "path", w.path, "sections", len(doc.Sections))
			onReload(doc)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "content watcher error", "path", w.path)
		}
	}
}

// Close stops watching. It is safe to call after Run has returned.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
