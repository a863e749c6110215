// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides format validators for catalog data.
//
// These validators run during catalog load to keep the all-or-nothing
// contract meaningful: a document that passes load is guaranteed to
// have well-formed identifiers and dates, so query code never has to
// defend against them.
package validation

import (
	"fmt"
	"regexp"
)

// recordIDPattern matches stable record identifiers.
// Allows: letters, digits, hyphens, underscores, dots.
// Max length: 128 characters.
var recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]{0,127}$`)

// isoDatePattern matches ISO dates (YYYY-MM-DD), optionally followed
// by a time component, which the year filter ignores.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ValidateRecordID validates a catalog record identifier.
//
// Valid identifiers:
//   - 1-128 characters
//   - Letters, digits, dots, underscores, hyphens
//   - Must start with a letter or digit
//
// Returns an error if the identifier is invalid.
func ValidateRecordID(id string) error {
	if id == "" {
		return fmt.Errorf("record id cannot be empty")
	}
	if !recordIDPattern.MatchString(id) {
		return fmt.Errorf("invalid record id %q (must be 1-128 alphanumeric chars, dots, underscores, or hyphens)", id)
	}
	return nil
}

// ValidateDate validates an ISO date string. The empty string is
// valid: records without a date simply never match a year filter.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if !isoDatePattern.MatchString(date) {
		return fmt.Errorf("invalid date %q (must be YYYY-MM-DD)", date)
	}
	return nil
}
