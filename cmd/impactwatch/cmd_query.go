// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/culturekeepers/impactwatch/services/catalog/datatypes"
	"github.com/culturekeepers/impactwatch/services/catalog/query"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// loadCatalog reads the catalog document named by the --data flag.
func loadCatalog() (*datatypes.Catalog, error) {
	return store.New(dataPath).Snapshot()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	entries := query.Filter(catalog.Litigation, query.Criteria{
		ID:             filterID,
		Classification: filterClassification,
		Agency:         filterAgency,
		Community:      filterCommunity,
		Status:         filterStatus,
		Year:           filterYear,
	})

	return printJSON(datatypes.FilterResponse{
		Count:    len(entries),
		Entries:  entries,
		Metadata: catalog.Metadata,
	})
}
