// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// Static reference registries. These are configuration data loaded once
// at process start and never mutated; handlers serve them verbatim.

// =============================================================================
// Agency Registry
// =============================================================================

// Agency describes one federal agency in the registry.
type Agency struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Agency categories group the registry for presenters.
const (
	AgencyCategoryCultural    = "cultural"
	AgencyCategoryLand        = "land"
	AgencyCategoryEnforcement = "enforcement"
	AgencyCategoryEducation   = "education"
	AgencyCategoryExecutive   = "executive"
)

// AgencyRegistry maps agency code to its registry entry.
var AgencyRegistry = map[string]Agency{
	"DOI":         {Code: "DOI", Name: "Department of the Interior", Category: AgencyCategoryLand},
	"NPS":         {Code: "NPS", Name: "National Park Service", Category: AgencyCategoryLand},
	"BIA":         {Code: "BIA", Name: "Bureau of Indian Affairs", Category: AgencyCategoryLand},
	"USDA":        {Code: "USDA", Name: "Department of Agriculture", Category: AgencyCategoryLand},
	"EPA":         {Code: "EPA", Name: "Environmental Protection Agency", Category: AgencyCategoryLand},
	"CEQ":         {Code: "CEQ", Name: "Council on Environmental Quality", Category: AgencyCategoryLand},
	"NEA":         {Code: "NEA", Name: "National Endowment for the Arts", Category: AgencyCategoryCultural},
	"NEH":         {Code: "NEH", Name: "National Endowment for the Humanities", Category: AgencyCategoryCultural},
	"IMLS":        {Code: "IMLS", Name: "Institute of Museum and Library Services", Category: AgencyCategoryCultural},
	"CPB":         {Code: "CPB", Name: "Corporation for Public Broadcasting", Category: AgencyCategoryCultural},
	"Smithsonian": {Code: "Smithsonian", Name: "Smithsonian Institution", Category: AgencyCategoryCultural},
	"ACHP":        {Code: "ACHP", Name: "Advisory Council on Historic Preservation", Category: AgencyCategoryCultural},
	"DOJ":         {Code: "DOJ", Name: "Department of Justice", Category: AgencyCategoryEnforcement},
	"DHS":         {Code: "DHS", Name: "Department of Homeland Security", Category: AgencyCategoryEnforcement},
	"ICE":         {Code: "ICE", Name: "Immigration and Customs Enforcement", Category: AgencyCategoryEnforcement},
	"CBP":         {Code: "CBP", Name: "Customs and Border Protection", Category: AgencyCategoryEnforcement},
	"USCIS":       {Code: "USCIS", Name: "U.S. Citizenship and Immigration Services", Category: AgencyCategoryEnforcement},
	"ED":          {Code: "ED", Name: "Department of Education", Category: AgencyCategoryEducation},
	"HHS":         {Code: "HHS", Name: "Department of Health and Human Services", Category: AgencyCategoryEducation},
	"DOD":         {Code: "DOD", Name: "Department of Defense", Category: AgencyCategoryExecutive},
	"STATE":       {Code: "STATE", Name: "Department of State", Category: AgencyCategoryExecutive},
	"HUD":         {Code: "HUD", Name: "Department of Housing and Urban Development", Category: AgencyCategoryExecutive},
	"GSA":         {Code: "GSA", Name: "General Services Administration", Category: AgencyCategoryExecutive},
	"OMB":         {Code: "OMB", Name: "Office of Management and Budget", Category: AgencyCategoryExecutive},
}

// AgencyName resolves an agency code to its full name. Unknown codes
// return the code itself so search text stays useful.
func AgencyName(code string) string {
	if a, ok := AgencyRegistry[code]; ok {
		return a.Name
	}
	return code
}

// =============================================================================
// 4Ps Framework
// =============================================================================

// FourPsDimension describes one dimension of the cultural-impact
// framework (People, Places, Practices, Treasures).
type FourPsDimension struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FourPsFramework lists the framework dimensions in canonical order.
var FourPsFramework = []FourPsDimension{
	{
		Key:         "people",
		Title:       "People",
		Description: "Culture bearers, practitioners, and the communities that carry living traditions.",
	},
	{
		Key:         "places",
		Title:       "Places",
		Description: "Sacred sites, historic places, cultural landscapes, and community spaces.",
	},
	{
		Key:         "practices",
		Title:       "Practices",
		Description: "Languages, ceremonies, artistic traditions, and ways of knowing.",
	},
	{
		Key:         "treasures",
		Title:       "Treasures",
		Description: "Objects, collections, archives, and records of cultural memory.",
	},
}

// =============================================================================
// Threat-Level Criteria
// =============================================================================

// ThreatCriteria gives the assessment text behind each classification
// value, for presenters that render the taxonomy.
var ThreatCriteria = map[Classification]string{
	ClassificationCritical:   "Immediate, severe, or irreversible harm to cultural resources or communities.",
	ClassificationModerate:   "Meaningful harm with partial mitigation available or a constrained scope.",
	ClassificationProtective: "Action protects, restores, or expands access to cultural resources.",
	ClassificationWatch:      "Impact unclear or prospective; entry is monitored for developments.",
}
