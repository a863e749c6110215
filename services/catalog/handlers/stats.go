// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/observability"
	"github.com/culturekeepers/impactwatch/services/catalog/query"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// LitigationStats serves GET /api/litigation/stats.
func LitigationStats(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, ok := loadCatalog(c, s, "stats")
		if !ok {
			return
		}

		start := time.Now()
		stats := query.Aggregate(catalog.Litigation)
		active := query.ActiveCount(catalog.Litigation)
		observability.ObserveQueryDuration("stats", time.Since(start))

		slog.Info("stats served", "entries", len(catalog.Litigation))
		observability.ObserveRequest("stats", observability.StatusOK)
		c.JSON(http.StatusOK, datatypes.StatsResponse{
			TotalEntries:     len(catalog.Litigation),
			ByClassification: stats.ByClassification,
			ByAgency:         stats.ByAgency,
			ByCommunity:      stats.ByCommunity,
			ByStatus:         stats.ByStatusCategory,
			Summary: datatypes.StatsSummary{
				TotalEntries:     len(catalog.Litigation),
				ActiveLitigation: active,
			},
			LastUpdated: catalog.Metadata.LastUpdated,
		})
	}
}
