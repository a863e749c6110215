// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	dataPath string

	// query flags
	filterID             string
	filterClassification string
	filterAgency         string
	filterCommunity      string
	filterStatus         string
	filterYear           string

	// search flags
	searchMinScore int
	searchLimit    int

	// serve flags
	serveConfigPath string

	rootCmd = &cobra.Command{
		Use:   "impactwatch",
		Short: "Query the cultural-impact litigation catalog from the command line",
		Long: `impactwatch runs the same filter, search, and statistics engine the
catalog service exposes over HTTP, directly against a local catalog
document. Output is JSON on stdout.`,
	}

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Filter catalog entries by classification, agency, community, status, year, or id",
		RunE:  runQueryCommand, // Defined in cmd_query.go
	}

	searchCmd = &cobra.Command{
		Use:   "search [terms...]",
		Short: "Rank catalog entries against a free-text query (all terms must match)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearchCommand, // Defined in cmd_search.go
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print frequency tables over the catalog",
		RunE:  runStatsCommand, // Defined in cmd_stats.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE:  runServeCommand, // Defined in cmd_serve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data",
		"data/litigation_database.json", "Path to the catalog JSON document")

	queryCmd.Flags().StringVar(&filterID, "id", "", "Exact record id")
	queryCmd.Flags().StringVar(&filterClassification, "classification", "",
		"Classification (CRITICAL, MODERATE, PROTECTIVE, WATCH; case-insensitive)")
	queryCmd.Flags().StringVar(&filterAgency, "agency", "", "Agency code or sub-agency fragment")
	queryCmd.Flags().StringVar(&filterCommunity, "community", "", "Community label fragment")
	queryCmd.Flags().StringVar(&filterStatus, "status", "", "Status text fragment")
	queryCmd.Flags().StringVar(&filterYear, "year", "", "Filing year (YYYY)")

	searchCmd.Flags().IntVar(&searchMinScore, "min-score", 0, "Exclude results scoring below this")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Truncate the ranked results (0 = unbounded)")

	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
