// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package verify is the engine entry point: it takes raw OCR text and
// a reference record and produces a complete verification report. The
// computation is pure; distinct runs share no state and may execute
// concurrently.
package verify

import (
	"fmt"

	"aadhaar-verify/internal/dates"
	"aadhaar-verify/internal/extract"
	"aadhaar-verify/internal/match"
	"aadhaar-verify/internal/reference"
	"aadhaar-verify/internal/textnorm"
)

// Options configures a verification run. Thresholds and policies live
// here rather than as literals inside the engine.
type Options struct {
	// NameThreshold is the minimum fuzzy similarity for a name match.
	NameThreshold float64

	// TeenPolicy selects the teen classification rule.
	TeenPolicy dates.TeenPolicy
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		NameThreshold: match.DefaultNameThreshold,
		TeenPolicy:    dates.TeenPolicyBand,
	}
}

// Report is the immutable outcome of one verification run. Age fields
// are present only when a date of birth was extracted from the
// document and normalized; they always reflect the document side, not
// the caller's claim.
type Report struct {
	Name    match.FieldMatch
	DOB     match.FieldMatch
	Aadhaar match.FieldMatch

	// AllMatch is true iff all three field matches succeeded.
	AllMatch bool

	AgeYears *int
	IsTeen   *bool

	// Extracted carries the raw extraction results for display.
	Extracted extract.Fields
}

// InvalidInputError indicates malformed input to the engine itself,
// as opposed to malformed document content, which only ever degrades
// to non-matches.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid verification input: %s", e.Reason)
}

// Run verifies raw OCR text against a reference record as of the given
// date. Extraction failures and malformed document values produce
// non-matches; only malformed engine input (an empty reference record,
// an invalid as-of date) or an as-of date preceding the extracted date
// of birth abort the run. A report is never partially completed.
func Run(rawText string, ref reference.Record, asOf dates.CanonicalDate, opts Options) (*Report, error) {
	if ref.Empty() {
		return nil, &InvalidInputError{Reason: "reference record has no usable fields"}
	}
	if !asOf.Valid() {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("as-of date %s is not a valid calendar date", asOf)}
	}
	if opts.NameThreshold < 0 || opts.NameThreshold > 1 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("name threshold %v outside [0,1]", opts.NameThreshold)}
	}

	fields := extract.All(textnorm.Normalize(rawText))

	report := &Report{
		Name:      match.Name(fields.Name, ref.Name, opts.NameThreshold),
		DOB:       match.DOB(fields.DOB, ref.DOB),
		Aadhaar:   match.Aadhaar(fields.Aadhaar, ref.Aadhaar),
		Extracted: fields,
	}
	report.AllMatch = report.Name.Matched && report.DOB.Matched && report.Aadhaar.Matched

	// Age derives from the document side only. An extracted DOB that
	// does not normalize leaves the age fields absent.
	if raw, ok := fields.DOB.Get(); ok {
		if dob, err := dates.Parse(raw); err == nil {
			age, err := dates.AgeYears(dob, asOf)
			if err != nil {
				return nil, err
			}
			teen := dates.IsTeen(age, opts.TeenPolicy)
			report.AgeYears = &age
			report.IsTeen = &teen
		}
	}

	return report, nil
}
