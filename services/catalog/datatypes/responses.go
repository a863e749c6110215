// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "encoding/json"

// API response envelopes for the catalog endpoints.

// FilterResponse is the body of GET /api/litigation.
type FilterResponse struct {
	Count    int             `json:"count"`
	Entries  []Record        `json:"entries"`
	Metadata CatalogMetadata `json:"metadata"`
}

// SearchResult pairs a record with its relevance score.
type SearchResult struct {
	Record Record
	Score  int
}

// MarshalJSON emits the record object with a relevanceScore field
// spliced in, so presenters see a plain annotated record.
func (s SearchResult) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(s.Record)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	score, err := json.Marshal(s.Score)
	if err != nil {
		return nil, err
	}
	obj["relevanceScore"] = score
	return json.Marshal(obj)
}

// SearchResponse is the body of GET /api/litigation/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// StatsSummary carries the headline counts for dashboards.
type StatsSummary struct {
	TotalEntries     int `json:"totalEntries"`
	ActiveLitigation int `json:"activeLitigation"`
}

// StatsResponse is the body of GET /api/litigation/stats.
type StatsResponse struct {
	TotalEntries     int            `json:"totalEntries"`
	ByClassification map[string]int `json:"byClassification"`
	ByAgency         map[string]int `json:"byAgency"`
	ByCommunity      map[string]int `json:"byCommunity"`
	ByStatus         map[string]int `json:"byStatus"`
	Summary          StatsSummary   `json:"summary"`
	LastUpdated      string         `json:"lastUpdated"`
}

// RegistryResponse is the body of GET /api/agencies.
type RegistryResponse struct {
	Count    int                 `json:"count"`
	Agencies map[string][]Agency `json:"agencies"`
}

// FrameworkResponse is the body of GET /api/framework.
type FrameworkResponse struct {
	Framework      []FourPsDimension         `json:"framework"`
	ThreatCriteria map[Classification]string `json:"threatCriteria"`
}
