// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the gin handlers for the catalog API.
//
// Handlers are thin: they bind query parameters, call the store and the
// query engine, and translate engine errors to HTTP statuses. Absence
// of matches is always a 200 with count 0; absence of data is a 503.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/observability"
	"github.com/culturekeepers/impactwatch/services/catalog/query"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// ListLitigation serves GET /api/litigation.
//
// Optional query parameters classification, agency, community, status,
// year, and id are AND-combined. Unknown values are not errors; they
// yield zero matches.
func ListLitigation(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, ok := loadCatalog(c, s, "litigation")
		if !ok {
			return
		}

		criteria := query.Criteria{
			ID:             c.Query("id"),
			Classification: c.Query("classification"),
			Agency:         c.Query("agency"),
			Community:      c.Query("community"),
			Status:         c.Query("status"),
			Year:           c.Query("year"),
		}

		start := time.Now()
		entries := query.Filter(catalog.Litigation, criteria)
		observability.ObserveQueryDuration("litigation", time.Since(start))

		slog.Info("litigation query served",
			"criteria_set", !criteria.IsZero(),
			"matches", len(entries),
		)
		observability.ObserveRequest("litigation", observability.StatusOK)
		c.JSON(http.StatusOK, datatypes.FilterResponse{
			Count:    len(entries),
			Entries:  entries,
			Metadata: catalog.Metadata,
		})
	}
}

// loadCatalog fetches the current snapshot, translating load failures
// to a 503 response. Returns false when the request was already ended.
func loadCatalog(c *gin.Context, s *store.Store, endpoint string) (*datatypes.Catalog, bool) {
	catalog, err := s.Snapshot()
	observability.ObserveReload(err)
	if err != nil {
		slog.Error("catalog load failed", "endpoint", endpoint, "error", err)
		observability.ObserveRequest(endpoint, observability.StatusUnavailable)
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrDataUnavailable) || errors.Is(err, store.ErrFileTooLarge) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "litigation database unavailable"})
		return nil, false
	}
	observability.SetCatalogEntries(len(catalog.Litigation))
	return catalog, true
}
