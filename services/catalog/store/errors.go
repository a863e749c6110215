// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import "errors"

// Sentinel errors for the store package.
var (
	// ErrDataUnavailable indicates the catalog document could not be
	// loaded or parsed. The store never serves a partial collection;
	// callers should surface this as a service-unavailable condition.
	ErrDataUnavailable = errors.New("catalog data unavailable")

	// ErrFileTooLarge indicates the catalog document exceeds the size
	// cap and was refused before parsing.
	ErrFileTooLarge = errors.New("catalog file exceeds size limit")
)
