// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"aadhaar-verify/internal/formatters"
	"aadhaar-verify/internal/match"
	"aadhaar-verify/internal/verify"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// fieldResult is the JSON shape of one field comparison
type fieldResult struct {
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity,omitempty"`
	Extracted  string  `json:"extracted,omitempty"`
	Expected   string  `json:"expected,omitempty"`
}

// reportJSON is the JSON shape of a full verification report
type reportJSON struct {
	AllMatch bool        `json:"all_match"`
	Name     fieldResult `json:"name_match"`
	DOB      fieldResult `json:"dob_match"`
	Aadhaar  fieldResult `json:"aadhaar_match"`
	Age      *int        `json:"age,omitempty"`
	IsTeen   *bool       `json:"is_teen,omitempty"`

	Extracted *extractedJSON `json:"extracted,omitempty"`
}

type extractedJSON struct {
	Name    string `json:"name,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Aadhaar string `json:"aadhaar,omitempty"`
}

func (f *Formatter) Format(report *verify.Report, options formatters.FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to format")
	}

	out := reportJSON{
		AllMatch: report.AllMatch,
		Name:     toFieldResult(report.Name, options),
		DOB:      toFieldResult(report.DOB, options),
		Aadhaar:  toFieldResult(report.Aadhaar, options),
		Age:      report.AgeYears,
		IsTeen:   report.IsTeen,
	}

	if options.ShowExtracted {
		out.Extracted = &extractedJSON{
			Name:    report.Extracted.Name.Or(""),
			DOB:     report.Extracted.DOB.Or(""),
			Aadhaar: report.Extracted.Aadhaar.Or(""),
		}
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}

	return string(jsonData), nil
}

func toFieldResult(fm match.FieldMatch, options formatters.FormatterOptions) fieldResult {
	result := fieldResult{
		Matched:    fm.Matched,
		Similarity: fm.Similarity,
	}
	if options.Verbose || options.ShowExtracted {
		result.Extracted = fm.Extracted
		result.Expected = fm.Expected
	}
	return result
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
