// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package query

import (
	"strings"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
)

// Status bucket labels for derived status categorization.
const (
	StatusProtective = "Protective Outcomes"
	StatusActive     = "Active Litigation"
	StatusDismissed  = "Dismissed/Withdrawn"
	StatusReview     = "Under Review"
	StatusOther      = "Other"
)

// statusBuckets holds the ordered substring checks for status
// categorization. Order is significant: the first bucket whose needles
// hit wins, so "active, under review" buckets as Active Litigation.
var statusBuckets = []struct {
	label   string
	needles []string
}{
	{StatusProtective, []string{"injunction granted", "judgment for plaintiffs"}},
	{StatusActive, []string{"active", "pending"}},
	{StatusDismissed, []string{"dismissed", "withdrew"}},
	{StatusReview, []string{"review", "watch"}},
}

// StatusCategory buckets a free-text status description.
func StatusCategory(status string) string {
	lowered := strings.ToLower(status)
	for _, bucket := range statusBuckets {
		for _, needle := range bucket.needles {
			if strings.Contains(lowered, needle) {
				return bucket.label
			}
		}
	}
	return StatusOther
}

// Stats holds the frequency tables computed over a record collection.
// All maps are non-nil; an empty collection yields empty maps.
type Stats struct {
	ByClassification map[string]int
	ByAgency         map[string]int
	ByCommunity      map[string]int
	ByStatusCategory map[string]int
}

// Aggregate computes all frequency tables in a single pass.
//
// Each record contributes exactly one classification count and one
// status-category count. Agency and community counts sum over the
// record's list entries, so a duplicated entry counts each occurrence.
func Aggregate(records []datatypes.Record) Stats {
	stats := Stats{
		ByClassification: map[string]int{},
		ByAgency:         map[string]int{},
		ByCommunity:      map[string]int{},
		ByStatusCategory: map[string]int{},
	}

	for _, rec := range records {
		if rec.Classification != "" {
			stats.ByClassification[string(rec.Classification)]++
		}
		for _, ref := range rec.AgenciesInvolved {
			stats.ByAgency[ref.Agency]++
		}
		for _, label := range rec.AffectedCommunities {
			stats.ByCommunity[label]++
		}
		stats.ByStatusCategory[StatusCategory(rec.CurrentStatus)]++
	}
	return stats
}

// ActiveCount reports how many records are not yet resolved: the
// headline "active litigation" figure for the stats summary.
func ActiveCount(records []datatypes.Record) int {
	n := 0
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.CurrentStatus), "resolved") {
			n++
		}
	}
	return n
}
