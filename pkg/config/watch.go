package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the configuration file for changes and triggers reloads.
// Writes are debounced so editors that save in multiple steps trigger a
// single reload.
//
// Only the shared secret is applied from a reloaded file; server topology
// and the upstream credential stay fixed for the process lifetime.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	path    string

	// DebounceInterval is the time to wait after the last write event
	// before reloading. Defaults to 250ms.
	DebounceInterval time.Duration

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the given configuration file path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:          fw,
		logger:           logger.With("component", "config.watcher"),
		path:             path,
		DebounceInterval: 250 * time.Millisecond,
	}, nil
}

// Watch blocks watching for file changes and calls onReload after each
// debounced change until the context is cancelled. The watch is registered
// on the parent directory so atomic rename-style saves are observed.
func (w *Watcher) Watch(ctx context.Context, onReload func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.logger.Info("watching configuration file", "path", w.path)

	var debounce *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug("configuration file changed", "op", event.Op.String())

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.DebounceInterval, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := onReload(); err != nil {
				w.logger.Error("configuration reload failed", "error", err)
				continue
			}
			w.logger.Info("configuration reloaded", "path", w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
