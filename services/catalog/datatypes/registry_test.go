// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "testing"

func TestAgencyRegistry_CodesMatchKeys(t *testing.T) {
	for code, agency := range AgencyRegistry {
		if agency.Code != code {
			t.Errorf("registry key %q has mismatched code %q", code, agency.Code)
		}
		if agency.Name == "" {
			t.Errorf("agency %q has no name", code)
		}
		if agency.Category == "" {
			t.Errorf("agency %q has no category", code)
		}
	}
}

func TestAgencyName(t *testing.T) {
	if got := AgencyName("NEA"); got != "National Endowment for the Arts" {
		t.Errorf("AgencyName(NEA) = %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := AgencyName("XYZ"); got != "XYZ" {
		t.Errorf("AgencyName(XYZ) = %q", got)
	}
}

func TestFourPsFramework(t *testing.T) {
	want := []string{"people", "places", "practices", "treasures"}
	if len(FourPsFramework) != len(want) {
		t.Fatalf("framework has %d dimensions, want %d", len(FourPsFramework), len(want))
	}
	for i, dim := range FourPsFramework {
		if dim.Key != want[i] {
			t.Errorf("dimension %d key = %q, want %q", i, dim.Key, want[i])
		}
		if dim.Title == "" || dim.Description == "" {
			t.Errorf("dimension %q incomplete", dim.Key)
		}
	}
}

func TestThreatCriteria_CoversAllClassifications(t *testing.T) {
	for _, c := range Classifications {
		if ThreatCriteria[c] == "" {
			t.Errorf("no criteria text for %q", c)
		}
	}
}
