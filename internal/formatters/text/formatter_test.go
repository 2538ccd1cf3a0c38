// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"aadhaar-verify/internal/extract"
	"aadhaar-verify/internal/formatters"
	"aadhaar-verify/internal/match"
	"aadhaar-verify/internal/verify"
)

func sampleReport() *verify.Report {
	age := 28
	teen := false
	return &verify.Report{
		Name:     match.FieldMatch{Matched: true, Similarity: 1.0, Extracted: "JOHN DOE", Expected: "John Doe"},
		DOB:      match.FieldMatch{Matched: true, Similarity: 1.0, Extracted: "15-08-1995", Expected: "15-08-1995"},
		Aadhaar:  match.FieldMatch{Matched: true, Similarity: 1.0, Extracted: "123456789012", Expected: "123456789012"},
		AllMatch: true,
		AgeYears: &age,
		IsTeen:   &teen,
		Extracted: extract.Fields{
			Name:    extract.Some("JOHN DOE"),
			DOB:     extract.Some("15-08-1995"),
			Aadhaar: extract.Some("123456789012"),
		},
	}
}

func format(t *testing.T, report *verify.Report, options formatters.FormatterOptions) string {
	t.Helper()
	options.NoColor = true
	out, err := NewFormatter().Format(report, options)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestFormat_AllMatch(t *testing.T) {
	out := format(t, sampleReport(), formatters.FormatterOptions{})

	for _, want := range []string{
		"All details match: Yes",
		"Name match:    Yes (JOHN DOE)",
		"DOB match:     Yes (15-08-1995)",
		"Aadhaar match: Yes (123456789012)",
		"Age: 28 (not a teen)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_Mismatch(t *testing.T) {
	report := sampleReport()
	report.Name = match.FieldMatch{Matched: false, Similarity: 0.25, Extracted: "JOHN DOE", Expected: "Jane Smith"}
	report.AllMatch = false

	out := format(t, report, formatters.FormatterOptions{})
	if !strings.Contains(out, "All details match: No") {
		t.Errorf("output missing overall mismatch:\n%s", out)
	}
	if !strings.Contains(out, "Name match:    No") {
		t.Errorf("output missing name mismatch:\n%s", out)
	}
	if strings.Contains(out, "No (JOHN DOE)") {
		t.Error("mismatched field should not echo the extracted value")
	}
}

func TestFormat_TeenAndMissingAge(t *testing.T) {
	report := sampleReport()
	age := 15
	teen := true
	report.AgeYears = &age
	report.IsTeen = &teen
	out := format(t, report, formatters.FormatterOptions{})
	if !strings.Contains(out, "Age: 15 (teen)") {
		t.Errorf("output missing teen age line:\n%s", out)
	}

	report.AgeYears = nil
	report.IsTeen = nil
	out = format(t, report, formatters.FormatterOptions{})
	if strings.Contains(out, "Age:") {
		t.Error("no age line expected when age is unknown")
	}
}

func TestFormat_ShowExtracted(t *testing.T) {
	out := format(t, sampleReport(), formatters.FormatterOptions{ShowExtracted: true})
	if !strings.Contains(out, "Extracted Details") {
		t.Errorf("output missing extracted block:\n%s", out)
	}
	if !strings.Contains(out, "Aadhaar: 1234 5678 9012") {
		t.Errorf("aadhaar should render grouped:\n%s", out)
	}

	report := sampleReport()
	report.Extracted.DOB = extract.None()
	out = format(t, report, formatters.FormatterOptions{ShowExtracted: true})
	if !strings.Contains(out, "DOB:     (not found)") {
		t.Errorf("absent field should render as not found:\n%s", out)
	}
}

func TestFormat_VerboseSimilarity(t *testing.T) {
	report := sampleReport()
	report.Name.Similarity = 0.875
	out := format(t, report, formatters.FormatterOptions{Verbose: true})
	if !strings.Contains(out, "[similarity 0.88]") {
		t.Errorf("verbose output missing similarity:\n%s", out)
	}
}

func TestFormat_NilReport(t *testing.T) {
	if _, err := NewFormatter().Format(nil, formatters.FormatterOptions{NoColor: true}); err == nil {
		t.Error("nil report should error")
	}
}
