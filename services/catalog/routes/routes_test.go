// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/middleware"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	catalog := `{"metadata": {"lastUpdated": "2025-09-20"}, "litigation": [
		{"id": "lit-1", "caseName": "Case One", "classification": "CRITICAL"}
	]}`
	if err := os.WriteFile(path, []byte(catalog), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, store.New(path), middleware.RateLimitConfig{})
	return router
}

func TestSetupRoutes_AllEndpointsRegistered(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/litigation", http.StatusOK},
		{"/api/litigation/search?q=case", http.StatusOK},
		{"/api/litigation/stats", http.StatusOK},
		{"/api/agencies", http.StatusOK},
		{"/api/framework", http.StatusOK},
		{"/api/nonexistent", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tc.path, nil)
			router.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("GET %s = %d, want %d", tc.path, w.Code, tc.want)
			}
		})
	}
}

func TestSetupRoutes_RequestIDOnEveryResponse(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response missing X-Request-ID header")
	}
}
