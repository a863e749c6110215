// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/culturekeepers/impactwatch/services/catalog/handlers"
	"github.com/culturekeepers/impactwatch/services/catalog/middleware"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// SetupRoutes wires the catalog API onto the router.
func SetupRoutes(router *gin.Engine, s *store.Store, rateLimit middleware.RateLimitConfig) {
	router.Use(middleware.RequestID())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimit))
	{
		api.GET("/litigation", handlers.ListLitigation(s))
		api.GET("/litigation/search", handlers.SearchLitigation(s))
		api.GET("/litigation/stats", handlers.LitigationStats(s))
		api.GET("/agencies", handlers.ListAgencies())
		api.GET("/framework", handlers.GetFramework())
	}
}
