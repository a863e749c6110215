// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store loads and caches the catalog document.
//
// The store is the only stateful component in the service, and its
// state is a single immutable snapshot: a fully parsed, fully validated
// catalog. Loads are all-or-nothing — a document that fails to parse or
// validate is never served, not even partially. When caching is
// enabled, reloads replace the whole snapshot atomically so in-flight
// queries holding the previous snapshot keep a consistent view.
//
// # Thread Safety
//
// Store is safe for concurrent use. Concurrent loads of the same file
// are coalesced through singleflight; snapshot access is guarded by a
// RWMutex. Records inside a snapshot are never mutated after load.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
)

// MaxCatalogFileSize is the maximum catalog document size accepted
// before parsing (16MB). Prevents memory issues from runaway files.
const MaxCatalogFileSize = 16 * 1024 * 1024

// Store provides snapshot access to the catalog document at a fixed
// path.
//
// Without caching (the default), every Snapshot call reads the file
// fresh, so queries always observe the latest document and a transient
// load failure clears on the next request. With caching enabled, the
// parsed snapshot is served until Reload replaces it; pair this with
// Watcher to reload on file changes.
type Store struct {
	path    string
	caching bool

	mu       sync.RWMutex
	snapshot *datatypes.Catalog

	flight singleflight.Group
}

// Option configures a Store.
type Option func(*Store)

// WithCaching keeps the parsed snapshot in memory across requests.
// Reload (or a Watcher) must be used to pick up file changes.
func WithCaching() Option {
	return func(s *Store) {
		s.caching = true
	}
}

// New creates a Store for the catalog document at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the catalog document path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the current catalog.
//
// In the default (uncached) mode this loads the document fresh;
// concurrent callers share one read through singleflight. In caching
// mode the cached snapshot is returned, loading lazily on first use.
// Load failures are returned wrapped in ErrDataUnavailable and are
// never cached: the next call attempts the load again.
func (s *Store) Snapshot() (*datatypes.Catalog, error) {
	if s.caching {
		s.mu.RLock()
		cached := s.snapshot
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}
	return s.Reload()
}

// Reload reads and parses the document, replacing the cached snapshot
// atomically on success. The previous snapshot is untouched on failure.
func (s *Store) Reload() (*datatypes.Catalog, error) {
	v, err, _ := s.flight.Do(s.path, func() (any, error) {
		catalog, err := load(s.path)
		if err != nil {
			return nil, err
		}
		if s.caching {
			s.mu.Lock()
			s.snapshot = catalog
			s.mu.Unlock()
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*datatypes.Catalog), nil
}

// load performs the all-or-nothing read, parse, and validation.
func load(path string) (*datatypes.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if info.Size() > MaxCatalogFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	var catalog datatypes.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataUnavailable, path, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid catalog: %v", ErrDataUnavailable, err)
	}
	return &catalog, nil
}
