// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/observability"
	"github.com/culturekeepers/impactwatch/services/catalog/query"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// SearchLitigation serves GET /api/litigation/search.
//
// The q parameter is required; a missing or blank query is a 400,
// distinct from the empty 200 result of a query that matches nothing.
// Optional min_score and limit tune the ranking per query.Options.
func SearchLitigation(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")

		opts := query.Options{}
		if v := c.Query("min_score"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				observability.ObserveRequest("search", observability.StatusBadRequest)
				c.JSON(http.StatusBadRequest, gin.H{"error": "min_score must be a non-negative integer"})
				return
			}
			opts.MinScore = n
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				observability.ObserveRequest("search", observability.StatusBadRequest)
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
				return
			}
			opts.MaxResults = n
		}

		catalog, ok := loadCatalog(c, s, "search")
		if !ok {
			return
		}

		start := time.Now()
		results, err := query.Search(catalog.Litigation, q, opts)
		observability.ObserveQueryDuration("search", time.Since(start))
		if err != nil {
			if errors.Is(err, query.ErrEmptyQuery) {
				observability.ObserveRequest("search", observability.StatusBadRequest)
				c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
				return
			}
			slog.Error("search failed", "error", err)
			observability.ObserveRequest("search", observability.StatusUnavailable)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}

		slog.Info("search served", "query", q, "matches", len(results))
		observability.ObserveRequest("search", observability.StatusOK)
		c.JSON(http.StatusOK, datatypes.SearchResponse{
			Query:   q,
			Count:   len(results),
			Results: results,
		})
	}
}
