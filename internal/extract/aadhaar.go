// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"
)

// aadhaarDigits is the well-formed length of an Aadhaar number.
const aadhaarDigits = 12

// Aadhaar cascade: three four-digit groups, optionally separated by a
// single space or dash. A labeled occurrence outranks a bare one.
var aadhaarPatterns = []Pattern{
	{
		Name:        "labeled_aadhaar",
		Description: "Aadhaar / UID label followed by 4-4-4 digit groups",
		Priority:    10,
		Regex: regexp.MustCompile(`(?i)(?:\baadhaar|\baadhar|आधार|\buid\b)\s*(?:number|no\.?)?\s*[:\-]?\s*` +
			`(\d{4}[ -]?\d{4}[ -]?\d{4})\b`),
	},
	{
		Name:        "bare_groups",
		Description: "Bare 4-4-4 digit groups",
		Priority:    5,
		Regex:       regexp.MustCompile(`\b(\d{4}[ -]?\d{4}[ -]?\d{4})\b`),
	},
}

var nonDigit = regexp.MustCompile(`\D`)

// AadhaarNumber extracts a 12-digit Aadhaar number from normalized
// text, returning digits only with separators stripped. The span
// already claimed by the date-of-birth extractor is masked out first,
// so a digit run containing the 4-digit birth year is never assigned
// to both fields.
func AadhaarNumber(text string, claimed Span) Field {
	masked := maskSpan(text, claimed)

	value, _, ok := firstMatch(aadhaarPatterns, masked)
	if !ok {
		return None()
	}

	digits := DigitsOnly(value)
	if len(digits) != aadhaarDigits {
		return None()
	}
	return Some(digits)
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(strings.TrimSpace(s), "")
}
