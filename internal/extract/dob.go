// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import "regexp"

// Date-of-birth cascade. Labeled forms outrank bare date shapes, and
// separator-delimited shapes outrank month-name shapes. The extractor
// returns the raw date string; calendar validation happens in the
// dates package.
var dobPatterns = []Pattern{
	{
		Name:        "labeled_dob",
		Description: "DOB / Date of Birth / जन्म तिथि label followed by any date shape",
		Priority:    10,
		Regex: regexp.MustCompile(`(?i)(?:\bdob\b|\bdate\s+of\s+birth\b|जन्म\s*तिथि)\s*[:\-]?\s*` +
			`(\d{1,2}[/-]\d{1,2}[/-]\d{4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}\s+[A-Za-z]{3,9}\.?,?\s+\d{4})`),
	},
	{
		Name:        "day_first",
		Description: "Bare dd/mm/yyyy or dd-mm-yyyy",
		Priority:    8,
		Regex:       regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{4})\b`),
	},
	{
		Name:        "year_first",
		Description: "Bare yyyy-mm-dd or yyyy/mm/dd",
		Priority:    7,
		Regex:       regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`),
	},
	{
		Name:        "day_month_name",
		Description: "15 Aug 1995 / 15 August 1995",
		Priority:    6,
		Regex:       regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})\b`),
	},
	{
		Name:        "month_name_day",
		Description: "Aug 15, 1995",
		Priority:    5,
		Regex:       regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4})\b`),
	},
}

// DateOfBirth extracts the raw date-of-birth string from normalized
// text, together with the span it occupies so the Aadhaar extractor
// can avoid re-claiming the same digit run.
func DateOfBirth(text string) (Field, Span) {
	value, span, ok := firstMatch(dobPatterns, text)
	if !ok {
		return None(), Span{}
	}
	return Some(value), span
}
