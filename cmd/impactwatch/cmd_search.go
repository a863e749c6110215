// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/query"
)

func runSearchCommand(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	q := strings.Join(args, " ")
	results, err := query.Search(catalog.Litigation, q, query.Options{
		MinScore:   searchMinScore,
		MaxResults: searchLimit,
	})
	if err != nil {
		return err
	}

	return printJSON(datatypes.SearchResponse{
		Query:   q,
		Count:   len(results),
		Results: results,
	})
}
