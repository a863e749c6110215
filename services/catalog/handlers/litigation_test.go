// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// =============================================================================
// Test Setup
// =============================================================================

func init() {
	gin.SetMode(gin.TestMode)
}

const testCatalog = `{
	"metadata": {"lastUpdated": "2025-09-20"},
	"litigation": [
		{
			"id": "lit-rila-v-nea",
			"caseName": "Rhode Island Latino Arts v. NEA",
			"summary": "Injunction granted against grant eligibility conditions.",
			"classification": "PROTECTIVE",
			"agenciesInvolved": [{"agency": "NEA"}],
			"affectedCommunities": ["Latiné", "Arts community"],
			"currentStatus": "Resolved - Injunction Granted",
			"filingDate": "2025-03-01"
		},
		{
			"id": "lit-harvard-v-dhs",
			"caseName": "Harvard et al. v. DHS",
			"summary": "Preliminary injunction granted over visa certification revocation.",
			"classification": "CRITICAL",
			"agenciesInvolved": [{"agency": "DHS"}, {"agency": "STATE"}],
			"affectedCommunities": ["Immigrant"],
			"currentStatus": "Preliminary Injunction Granted",
			"filingDate": "2025-04-20",
			"courtDocketUrl": "https://example.org/docket/5"
		},
		{
			"id": "hist-monument-review",
			"caseName": "National Monument Boundary Review",
			"classification": "WATCH",
			"agenciesInvolved": [{"agency": "DOI", "subAgency": "National Park Service"}],
			"affectedCommunities": ["Indigenous/Tribal"],
			"currentStatus": "Under agency review",
			"filingDate": "2024-12-10"
		}
	]
}`

// newTestRouter builds a router over a store backed by a temp catalog
// file with the given content.
func newTestRouter(t *testing.T, content string) (*gin.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	s := store.New(path)
	router := gin.New()
	router.GET("/api/litigation", ListLitigation(s))
	router.GET("/api/litigation/search", SearchLitigation(s))
	router.GET("/api/litigation/stats", LitigationStats(s))
	router.GET("/api/agencies", ListAgencies())
	router.GET("/api/framework", GetFramework())
	router.GET("/health", HealthCheck)
	return router, path
}

func doGET(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// GET /api/litigation
// =============================================================================

func TestListLitigation_NoFilters(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp datatypes.FilterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 3 || len(resp.Entries) != 3 {
		t.Errorf("count = %d, entries = %d", resp.Count, len(resp.Entries))
	}
	if resp.Metadata.LastUpdated != "2025-09-20" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
}

func TestListLitigation_CombinedFilters(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation?classification=critical&agency=dhs")
	var resp datatypes.FilterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 1 || resp.Entries[0].ID != "lit-harvard-v-dhs" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestListLitigation_UnknownValueIsEmptySuccess(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation?agency=NOSUCH")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp datatypes.FilterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
}

func TestListLitigation_PassThroughFieldsServed(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation?id=lit-harvard-v-dhs")
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	entries := resp["entries"].([]any)
	if len(entries) != 1 {
		t.Fatalf("entries = %v", entries)
	}
	entry := entries[0].(map[string]any)
	if entry["courtDocketUrl"] != "https://example.org/docket/5" {
		t.Errorf("pass-through field dropped: %v", entry)
	}
}

func TestListLitigation_MissingDataIs503(t *testing.T) {
	router, path := newTestRouter(t, testCatalog)
	os.Remove(path)

	w := doGET(t, router, "/api/litigation")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestListLitigation_CorruptDataIs503(t *testing.T) {
	router, path := newTestRouter(t, testCatalog)
	os.WriteFile(path, []byte("{broken"), 0644)

	w := doGET(t, router, "/api/litigation")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

// =============================================================================
// GET /api/litigation/search
// =============================================================================

func TestSearchLitigation_MissingQueryIs400(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation/search")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doGET(t, router, "/api/litigation/search?q=%20%20")
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank query status = %d, want 400", w.Code)
	}
}

func TestSearchLitigation_Results(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation/search?q=injunction+granted")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["query"] != "injunction granted" {
		t.Errorf("query = %v", resp["query"])
	}
	if resp["count"] != float64(2) {
		t.Errorf("count = %v, want 2", resp["count"])
	}
	results := resp["results"].([]any)
	first := results[0].(map[string]any)
	if _, ok := first["relevanceScore"]; !ok {
		t.Error("results missing relevanceScore")
	}
}

func TestSearchLitigation_NoMatchesIsEmptySuccess(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation/search?q=zebra")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["count"] != float64(0) {
		t.Errorf("count = %v, want 0", resp["count"])
	}
}

func TestSearchLitigation_BadOptionsAre400(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	for _, url := range []string{
		"/api/litigation/search?q=x&min_score=abc",
		"/api/litigation/search?q=x&min_score=-1",
		"/api/litigation/search?q=x&limit=abc",
		"/api/litigation/search?q=x&limit=-2",
	} {
		w := doGET(t, router, url)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, w.Code)
		}
	}
}

func TestSearchLitigation_Limit(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation/search?q=granted&limit=1")
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Errorf("count = %v, want 1", resp["count"])
	}
}

// =============================================================================
// GET /api/litigation/stats
// =============================================================================

func TestLitigationStats(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/litigation/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp datatypes.StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.TotalEntries != 3 {
		t.Errorf("totalEntries = %d", resp.TotalEntries)
	}
	if resp.ByClassification["CRITICAL"] != 1 || resp.ByClassification["PROTECTIVE"] != 1 {
		t.Errorf("byClassification = %v", resp.ByClassification)
	}
	if resp.ByAgency["DHS"] != 1 || resp.ByAgency["STATE"] != 1 {
		t.Errorf("byAgency = %v", resp.ByAgency)
	}
	if resp.ByStatus["Protective Outcomes"] != 2 {
		t.Errorf("byStatus = %v", resp.ByStatus)
	}
	if resp.LastUpdated != "2025-09-20" {
		t.Errorf("lastUpdated = %q", resp.LastUpdated)
	}
	// "Resolved - Injunction Granted" is resolved, the other two are not.
	if resp.Summary.ActiveLitigation != 2 {
		t.Errorf("activeLitigation = %d", resp.Summary.ActiveLitigation)
	}
}

// =============================================================================
// Static registries and health
// =============================================================================

func TestListAgencies(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/agencies")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp datatypes.RegistryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != len(datatypes.AgencyRegistry) {
		t.Errorf("count = %d", resp.Count)
	}
	cultural := resp.Agencies["cultural"]
	if len(cultural) == 0 {
		t.Fatal("no cultural agencies in response")
	}
	for i := 1; i < len(cultural); i++ {
		if cultural[i-1].Code > cultural[i].Code {
			t.Errorf("agencies not sorted: %q > %q", cultural[i-1].Code, cultural[i].Code)
		}
	}
}

func TestGetFramework(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/api/framework")
	var resp datatypes.FrameworkResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Framework) != 4 {
		t.Errorf("framework dimensions = %d, want 4", len(resp.Framework))
	}
	if len(resp.ThreatCriteria) != 4 {
		t.Errorf("threat criteria = %d, want 4", len(resp.ThreatCriteria))
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, testCatalog)

	w := doGET(t, router, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
