package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the stored document
// changes on disk.
type Event struct{}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid blocking the watcher. The channel
// is closed once ctx is done or the watcher encounters an unrecoverable
// error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.cfg.Path); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.cfg.Path, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Coalesce bursts of writes (diskv may touch temp files) into a
		// single notification per window.
		var timer *time.Timer
		var mu sync.Mutex
		notify := func() {
			mu.Lock()
			defer mu.Unlock()
			if timer != nil {
				return
			}
			timer = time.AfterFunc(100*time.Millisecond, func() {
				mu.Lock()
				timer = nil
				mu.Unlock()
				select {
				case events <- Event{}:
				default:
					// Drop when the consumer lags; it will reload on
					// the next event anyway.
				}
			})
		}
		defer func() {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				notify()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) == documentKey {
					notify()
				}
			}
		}
	}()

	return events, nil
}
