// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"query":  false,
		"search": false,
		"stats":  false,
		"serve":  false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestQueryCommandAgainstCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"metadata": {"lastUpdated": "2025-09-20"}, "litigation": [
		{"id": "lit-1", "caseName": "Case One", "classification": "WATCH"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	dataPath = path
	defer func() { dataPath = "" }()

	if err := runQueryCommand(queryCmd, nil); err != nil {
		t.Fatalf("query command failed: %v", err)
	}
}

func TestQueryCommandMissingCatalogFails(t *testing.T) {
	dataPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { dataPath = "" }()

	if err := runQueryCommand(queryCmd, nil); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestSearchCommandJoinsTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"metadata": {}, "litigation": [
		{"id": "lit-1", "caseName": "Sacred Sites Coalition v. DOI", "classification": "CRITICAL"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	dataPath = path
	defer func() { dataPath = "" }()

	if err := runSearchCommand(searchCmd, []string{"sacred", "sites"}); err != nil {
		t.Fatalf("search command failed: %v", err)
	}
}
