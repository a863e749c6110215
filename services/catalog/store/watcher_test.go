// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeCatalog(t, validCatalog)
	s := New(path, WithCaching())

	_, err := s.Snapshot()
	require.NoError(t, err)

	reloaded := make(chan error, 4)
	w, err := NewWatcher(s, &WatcherOptions{
		DebounceWindow: 50 * time.Millisecond,
		Handler:        func(err error) { reloaded <- err },
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte(`{
		"metadata": {"lastUpdated": "2025-10-01"},
		"litigation": [{"id": "only"}]
	}`), 0644))

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a reload")
	}

	catalog, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, catalog.Litigation, 1)
}

func TestWatcher_BadWriteKeepsServing(t *testing.T) {
	path := writeCatalog(t, validCatalog)
	s := New(path, WithCaching())

	_, err := s.Snapshot()
	require.NoError(t, err)

	reloaded := make(chan error, 4)
	w, err := NewWatcher(s, &WatcherOptions{
		DebounceWindow: 50 * time.Millisecond,
		Handler:        func(err error) { reloaded <- err },
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	select {
	case err := <-reloaded:
		require.ErrorIs(t, err, ErrDataUnavailable)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a reload")
	}

	// Previous snapshot stays in service.
	catalog, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, catalog.Litigation, 2)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	s := New(writeCatalog(t, validCatalog), WithCaching())
	w, err := NewWatcher(s, nil)
	require.NoError(t, err)

	w.Stop()
	w.Stop()
}
