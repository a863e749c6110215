// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/observability"
)

// ListAgencies serves GET /api/agencies: the static agency registry
// grouped by category, codes sorted within each group. Pure
// configuration pass-through, no query logic.
func ListAgencies() gin.HandlerFunc {
	return func(c *gin.Context) {
		grouped := map[string][]datatypes.Agency{}
		for _, agency := range datatypes.AgencyRegistry {
			grouped[agency.Category] = append(grouped[agency.Category], agency)
		}
		for _, agencies := range grouped {
			sort.Slice(agencies, func(i, j int) bool {
				return agencies[i].Code < agencies[j].Code
			})
		}

		observability.ObserveRequest("agencies", observability.StatusOK)
		c.JSON(http.StatusOK, datatypes.RegistryResponse{
			Count:    len(datatypes.AgencyRegistry),
			Agencies: grouped,
		})
	}
}

// GetFramework serves GET /api/framework: the 4Ps cultural-impact
// framework and the threat-level criteria text.
func GetFramework() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.ObserveRequest("framework", observability.StatusOK)
		c.JSON(http.StatusOK, datatypes.FrameworkResponse{
			Framework:      datatypes.FourPsFramework,
			ThreatCriteria: datatypes.ThreatCriteria,
		})
	}
}
