// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package query

import (
	"sort"
	"strings"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
)

// Options tunes relevance search behavior.
type Options struct {
	// MinScore excludes results scoring below it. 0 keeps everything
	// that matches.
	MinScore int

	// MaxResults truncates the ranked sequence. 0 means unbounded.
	MaxResults int
}

// Field weights for relevance scoring. Primary fields (case name)
// outrank the narrative and label fields, so a title hit beats any
// number of secondary hits of the same term.
const (
	weightTitle     = 10
	weightSummary   = 5
	weightNarrative = 3
	weightAgency    = 2
	weightCommunity = 2
	weightQuote     = 1
)

// scoredField is one searchable text region with its weight.
type scoredField struct {
	text   string
	weight int
}

// Search ranks records against a free-text query.
//
// The query is tokenized on whitespace into lowercase terms. A record
// matches only if every term appears as a substring somewhere in its
// searchable text (AND of terms, not OR). Matching records are scored
// by summing field weights per term hit, filtered by opts.MinScore,
// sorted by descending score with ties kept in input order, and
// truncated to opts.MaxResults.
//
// An empty or whitespace-only query returns ErrEmptyQuery; callers that
// want match-all semantics must not call Search with an empty query.
func Search(records []datatypes.Record, q string, opts Options) ([]datatypes.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}

	results := []datatypes.SearchResult{}
	for _, rec := range records {
		fields := searchFields(rec)
		score, ok := scoreRecord(fields, terms)
		if !ok || score < opts.MinScore {
			continue
		}
		results = append(results, datatypes.SearchResult{Record: rec, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// searchFields assembles the record's searchable text regions,
// lowercased once per record. Agency text includes the code, the
// registry's full name, and any sub-agency so queries like "park
// service" reach records tagged NPS.
func searchFields(rec datatypes.Record) []scoredField {
	var agencyParts []string
	for _, ref := range rec.AgenciesInvolved {
		agencyParts = append(agencyParts, ref.Agency, datatypes.AgencyName(ref.Agency))
		if ref.SubAgency != "" {
			agencyParts = append(agencyParts, ref.SubAgency)
		}
	}

	return []scoredField{
		{strings.ToLower(rec.CaseName), weightTitle},
		{strings.ToLower(rec.Summary), weightSummary},
		{strings.ToLower(rec.NarrativeAssessment), weightNarrative},
		{strings.ToLower(strings.Join(agencyParts, " ")), weightAgency},
		{strings.ToLower(strings.Join(rec.AffectedCommunities, " ")), weightCommunity},
		{strings.ToLower(strings.Join(rec.KeyQuotes, " ")), weightQuote},
	}
}

// scoreRecord returns the weighted score and whether every term was
// found in at least one field.
func scoreRecord(fields []scoredField, terms []string) (int, bool) {
	total := 0
	for _, term := range terms {
		termScore := 0
		for _, f := range fields {
			if f.text != "" && strings.Contains(f.text, term) {
				termScore += f.weight
			}
		}
		if termScore == 0 {
			return 0, false
		}
		total += termScore
	}
	return total, true
}
