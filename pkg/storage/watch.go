package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"storefront/internal/debug"
	"storefront/pkg/format"
)

// WatchDebounce collapses bursts of file events into one callback.
const WatchDebounce = 100 * time.Millisecond

// Watch calls onChange whenever the file at path is written, created or
// replaced, until ctx is cancelled. The parent directory is watched because
// writers replace the file by rename.
func Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	notify, cancel := format.Debounce(onChange, WatchDebounce)
	name := filepath.Base(absPath)

	go func() {
		defer watcher.Close()
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debug.Log("storage file changed: %s (%s)", event.Name, event.Op)
					notify()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				debug.Log("storage watcher error: %v", err)
			}
		}
	}()

	return nil
}
