// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes defines the shared data structures for the catalog
// service: the impact Record model, the catalog document envelope, API
// response shapes, and the static reference registries.
package datatypes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/culturekeepers/impactwatch/pkg/validation"
)

// =============================================================================
// Classification
// =============================================================================

// Classification is the severity level assigned to a record.
// Values are canonical uppercase at rest; parsing is case-insensitive.
type Classification string

const (
	// ClassificationCritical marks actions with severe, immediate harm.
	ClassificationCritical Classification = "CRITICAL"

	// ClassificationModerate marks actions with meaningful but bounded harm.
	ClassificationModerate Classification = "MODERATE"

	// ClassificationProtective marks actions that protect cultural resources.
	ClassificationProtective Classification = "PROTECTIVE"

	// ClassificationWatch marks actions under monitoring, impact unclear.
	ClassificationWatch Classification = "WATCH"
)

// Classifications lists every valid value in display order.
var Classifications = []Classification{
	ClassificationCritical,
	ClassificationModerate,
	ClassificationProtective,
	ClassificationWatch,
}

// ParseClassification canonicalizes a classification string.
// Input is case-insensitive; unknown values return an error.
func ParseClassification(s string) (Classification, error) {
	c := Classification(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Classifications {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown classification %q", s)
}

// Valid reports whether c is one of the defined classification values.
func (c Classification) Valid() bool {
	_, err := ParseClassification(string(c))
	return err == nil
}

// =============================================================================
// Agency Reference
// =============================================================================

// AgencyRef links a record to a federal agency, optionally narrowed to a
// sub-agency (e.g. DOI -> National Park Service).
//
// In catalog documents a reference is either a bare code string ("NEA")
// or an object {"agency": "DOI", "subAgency": "National Park Service"}.
// Both forms are accepted and round-tripped in the shape they arrived.
type AgencyRef struct {
	Agency    string `json:"agency"`
	SubAgency string `json:"subAgency,omitempty"`

	// fromString records that the reference arrived as a bare code,
	// so MarshalJSON can emit the same shape.
	fromString bool
}

// UnmarshalJSON accepts either a bare agency code or a reference object.
func (a *AgencyRef) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		a.Agency = code
		a.SubAgency = ""
		a.fromString = true
		return nil
	}

	type refAlias AgencyRef
	var ref refAlias
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("agency reference must be a string or object: %w", err)
	}
	*a = AgencyRef(ref)
	return nil
}

// MarshalJSON emits the reference in the shape it was parsed from.
func (a AgencyRef) MarshalJSON() ([]byte, error) {
	if a.fromString && a.SubAgency == "" {
		return json.Marshal(a.Agency)
	}
	type refAlias AgencyRef
	return json.Marshal(refAlias(a))
}

// =============================================================================
// Record
// =============================================================================

// Record is one catalog entry: a litigation case or a historical
// executive-action impact event.
//
// Only the fields the query engine interprets are modeled explicitly.
// Every other field on the incoming JSON object is preserved verbatim in
// Extra and written back on marshal, so presenters downstream never lose
// payload the engine does not understand.
//
// Several fields accept alternate key names found across catalog
// generations (threatLevel vs classification, title vs caseName, and so
// on); the key a field arrived under is the key it is written back under.
type Record struct {
	// ID is the unique, stable identifier. Unique across the catalog.
	ID string

	// CaseName is the case name or entry title. Keys: caseName, title.
	CaseName string

	// Classification is the severity level. Keys: classification, threatLevel.
	Classification Classification

	// AgenciesInvolved lists agency references in document order.
	// Keys: agenciesInvolved, agencies.
	AgenciesInvolved []AgencyRef

	// AffectedCommunities lists free-text community labels.
	// Keys: affectedCommunities, communities.
	AffectedCommunities []string

	// CurrentStatus is the free-text status description.
	// Keys: currentStatus, status.
	CurrentStatus string

	// Summary is the short summary text.
	Summary string

	// NarrativeAssessment is the long-form impact narrative.
	// Keys: narrativeAssessment, narrative. Structured culturalImpact
	// blocks are not interpreted; they stay in Extra.
	NarrativeAssessment string

	// KeyQuotes holds direct quotes attached to the record.
	KeyQuotes []string

	// FilingDate is the primary ISO date (YYYY-MM-DD).
	// Keys: filingDate, date, dateSigned.
	FilingDate string

	// Extra holds every field the engine does not interpret, keyed by
	// its original JSON name. Passed through untouched.
	Extra map[string]json.RawMessage

	// sourceKeys remembers which alias supplied each logical field so
	// the record round-trips byte-compatibly.
	sourceKeys map[string]string
}

// fieldAliases maps each logical field to its accepted JSON keys, in
// precedence order. The first key present wins.
var fieldAliases = map[string][]string{
	"id":             {"id"},
	"caseName":       {"caseName", "title"},
	"classification": {"classification", "threatLevel"},
	"agencies":       {"agenciesInvolved", "agencies"},
	"communities":    {"affectedCommunities", "communities"},
	"status":         {"currentStatus", "status"},
	"summary":        {"summary"},
	"narrative":      {"narrativeAssessment", "narrative"},
	"quotes":         {"keyQuotes"},
	"date":           {"filingDate", "date", "dateSigned"},
}

// take pops the first present alias for a logical field from raw and
// records the key it arrived under. Returns nil if no alias is present.
func (r *Record) take(raw map[string]json.RawMessage, field string) json.RawMessage {
	for _, key := range fieldAliases[field] {
		if val, ok := raw[key]; ok {
			delete(raw, key)
			r.sourceKeys[field] = key
			return val
		}
	}
	return nil
}

// UnmarshalJSON decodes a record, splitting interpreted fields from the
// opaque remainder.
func (r *Record) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("record must be a JSON object: %w", err)
	}
	r.sourceKeys = map[string]string{}

	stringFields := []struct {
		field string
		dst   *string
	}{
		{"id", &r.ID},
		{"caseName", &r.CaseName},
		{"status", &r.CurrentStatus},
		{"summary", &r.Summary},
		{"narrative", &r.NarrativeAssessment},
		{"date", &r.FilingDate},
	}
	for _, sf := range stringFields {
		if val := r.take(raw, sf.field); val != nil {
			if err := json.Unmarshal(val, sf.dst); err != nil {
				return fmt.Errorf("record field %q: %w", r.sourceKeys[sf.field], err)
			}
		}
	}

	if val := r.take(raw, "classification"); val != nil {
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return fmt.Errorf("record field %q: %w", r.sourceKeys["classification"], err)
		}
		c, err := ParseClassification(s)
		if err != nil {
			return fmt.Errorf("record %q: %w", r.ID, err)
		}
		r.Classification = c
	}

	if val := r.take(raw, "agencies"); val != nil {
		if err := json.Unmarshal(val, &r.AgenciesInvolved); err != nil {
			return fmt.Errorf("record %q agencies: %w", r.ID, err)
		}
	}
	if val := r.take(raw, "communities"); val != nil {
		if err := json.Unmarshal(val, &r.AffectedCommunities); err != nil {
			return fmt.Errorf("record %q communities: %w", r.ID, err)
		}
	}
	if val := r.take(raw, "quotes"); val != nil {
		if err := json.Unmarshal(val, &r.KeyQuotes); err != nil {
			return fmt.Errorf("record %q quotes: %w", r.ID, err)
		}
	}

	if len(raw) > 0 {
		r.Extra = raw
	} else {
		r.Extra = nil
	}
	return nil
}

// key returns the JSON key a logical field should marshal under: the key
// it arrived under, or the canonical (first) alias for built records.
func (r Record) key(field string) string {
	if r.sourceKeys != nil {
		if k, ok := r.sourceKeys[field]; ok {
			return k
		}
	}
	return fieldAliases[field][0]
}

// MarshalJSON re-assembles the record: interpreted fields under their
// original keys, then the opaque remainder.
func (r Record) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	for k, v := range r.Extra {
		out[k] = v
	}

	out[r.key("id")] = r.ID
	if r.CaseName != "" {
		out[r.key("caseName")] = r.CaseName
	}
	if r.Classification != "" {
		out[r.key("classification")] = r.Classification
	}
	if r.AgenciesInvolved != nil {
		out[r.key("agencies")] = r.AgenciesInvolved
	}
	if r.AffectedCommunities != nil {
		out[r.key("communities")] = r.AffectedCommunities
	}
	if r.CurrentStatus != "" {
		out[r.key("status")] = r.CurrentStatus
	}
	if r.Summary != "" {
		out[r.key("summary")] = r.Summary
	}
	if r.NarrativeAssessment != "" {
		out[r.key("narrative")] = r.NarrativeAssessment
	}
	if r.KeyQuotes != nil {
		out[r.key("quotes")] = r.KeyQuotes
	}
	if r.FilingDate != "" {
		out[r.key("date")] = r.FilingDate
	}

	return json.Marshal(out)
}

// FilingYear returns the 4-digit year component of FilingDate, or ""
// when the date is absent or malformed.
func (r Record) FilingYear() string {
	if len(r.FilingDate) < 4 {
		return ""
	}
	year := r.FilingDate[:4]
	for _, ch := range year {
		if ch < '0' || ch > '9' {
			return ""
		}
	}
	return year
}

// =============================================================================
// Catalog Document
// =============================================================================

// CatalogMetadata is the document-level metadata block.
// Unknown metadata fields pass through like record fields do.
type CatalogMetadata struct {
	LastUpdated string `json:"lastUpdated"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

// Catalog is the persisted document: metadata plus the ordered record
// collection under the "litigation" key.
type Catalog struct {
	Metadata   CatalogMetadata `json:"metadata"`
	Litigation []Record        `json:"litigation"`
}

// Validate checks the catalog-wide invariants after load: every record
// has a well-formed unique id, dates are ISO-formatted, and
// classifications (when present) are canonical. Returns the first
// violation found.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Litigation))
	for i, rec := range c.Litigation {
		if err := validation.ValidateRecordID(rec.ID); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("duplicate record id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}
		if err := validation.ValidateDate(rec.FilingDate); err != nil {
			return fmt.Errorf("record %q: %w", rec.ID, err)
		}
		if rec.Classification != "" && !rec.Classification.Valid() {
			return fmt.Errorf("record %q: unknown classification %q", rec.ID, rec.Classification)
		}
	}
	return nil
}
