// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package query implements the pure query engine over the catalog's
// record collection: multi-criteria filtering, free-text relevance
// search, and statistics aggregation.
//
// Every function is stateless and side-effect-free: it takes the full
// record slice plus a query specification and returns a fresh result.
// The input slice is never mutated and output order is stable with
// respect to input order.
package query

import (
	"strings"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
)

// Criteria is a conjunction of optional filter fields. Empty fields
// impose no constraint; all non-empty fields must match (logical AND).
type Criteria struct {
	// ID matches exactly and short-circuits to at most one result.
	ID string

	// Classification matches the enumeration value, case-insensitive.
	Classification string

	// Agency matches when any agency reference's code equals the
	// criterion (case-insensitive) or its sub-agency contains it.
	Agency string

	// Community matches when any community label contains the
	// criterion, case-insensitive.
	Community string

	// Status matches when the status text contains the criterion,
	// case-insensitive.
	Status string

	// Year matches when the filing date's year component equals it.
	Year string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter reduces records to the subset matching every set criterion.
//
// The result is a stable subsequence of the input: relative order is
// preserved and no resorting happens here. Unknown criterion values are
// not errors; they simply match nothing. The inputs are not mutated.
func Filter(records []datatypes.Record, c Criteria) []datatypes.Record {
	if c.ID != "" {
		for _, rec := range records {
			if rec.ID == c.ID && matches(rec, c) {
				return []datatypes.Record{rec}
			}
		}
		return []datatypes.Record{}
	}

	out := []datatypes.Record{}
	for _, rec := range records {
		if matches(rec, c) {
			out = append(out, rec)
		}
	}
	return out
}

// matches reports whether rec satisfies every non-ID criterion.
func matches(rec datatypes.Record, c Criteria) bool {
	if c.Classification != "" &&
		!strings.EqualFold(string(rec.Classification), c.Classification) {
		return false
	}
	if c.Agency != "" && !matchesAgency(rec, c.Agency) {
		return false
	}
	if c.Community != "" && !matchesCommunity(rec, c.Community) {
		return false
	}
	if c.Status != "" && !containsFold(rec.CurrentStatus, c.Status) {
		return false
	}
	if c.Year != "" && rec.FilingYear() != c.Year {
		return false
	}
	return true
}

// matchesAgency implements the agency rule: code equality OR sub-agency
// substring, both case-insensitive, against any reference on the record.
func matchesAgency(rec datatypes.Record, agency string) bool {
	for _, ref := range rec.AgenciesInvolved {
		if strings.EqualFold(ref.Agency, agency) {
			return true
		}
		if ref.SubAgency != "" && containsFold(ref.SubAgency, agency) {
			return true
		}
	}
	return false
}

func matchesCommunity(rec datatypes.Record, community string) bool {
	for _, label := range rec.AffectedCommunities {
		if containsFold(label, community) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring test.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
