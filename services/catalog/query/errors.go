// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package query

import "errors"

// Sentinel errors for the query package.
var (
	// ErrEmptyQuery indicates a search was requested with no query text.
	// Distinct from an empty result set, which is not an error.
	ErrEmptyQuery = errors.New("empty search query")
)
