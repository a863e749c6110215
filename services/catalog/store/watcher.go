// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler is called after a debounced change triggers a reload.
// err is non-nil when the reload failed; the previous snapshot stays
// in service in that case.
type ReloadHandler func(err error)

// Watcher reloads a caching Store when its catalog file changes.
//
// # Description
//
// Watches the catalog file's parent directory (editors and atomic
// writers replace the file rather than writing in place, which drops
// inotify watches on the file itself) and debounces bursts of events
// so a multi-step save triggers one reload.
//
// # Thread Safety
//
// Safe for concurrent use. The reload and handler run from a single
// goroutine.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	handler  ReloadHandler
	debounce time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

// WatcherOptions configures the Watcher.
type WatcherOptions struct {
	// DebounceWindow is how long to wait for more events before
	// reloading. Default: 250ms.
	DebounceWindow time.Duration

	// Handler is invoked after every triggered reload attempt.
	// Optional; pass nil to only log outcomes.
	Handler ReloadHandler
}

// NewWatcher creates a watcher bound to the store's catalog path.
// Call Start to begin watching and Stop to release the inotify handle.
func NewWatcher(s *Store, opts *WatcherOptions) (*Watcher, error) {
	if opts == nil {
		opts = &WatcherOptions{}
	}
	debounce := opts.DebounceWindow
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		store:    s,
		watcher:  fsw,
		handler:  opts.Handler,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The goroutine exits when ctx is canceled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.store.Path())
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.loop(ctx)
	return nil
}

// Stop ends watching and closes the underlying fsnotify watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.watcher.Close()
	})
}

// loop collects events for the catalog file and reloads after the
// debounce window goes quiet.
func (w *Watcher) loop(ctx context.Context) {
	target := filepath.Clean(w.store.Path())

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("catalog watcher error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			_, err := w.store.Reload()
			if err != nil {
				slog.Error("catalog reload failed, previous snapshot retained",
					"path", target, "error", err)
			} else {
				slog.Info("catalog reloaded", "path", target)
			}
			if w.handler != nil {
				w.handler(err)
			}
		}
	}
}
