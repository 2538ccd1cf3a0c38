// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package match compares extracted identity fields against a
// caller-supplied reference record. Each comparison is independent:
// the engine never short-circuits one field based on another, and a
// malformed or absent value degrades to a non-match rather than an
// error.
package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"aadhaar-verify/internal/dates"
	"aadhaar-verify/internal/extract"
)

// DefaultNameThreshold is the minimum similarity for a name match,
// mirroring the 80% fuzzy threshold of token-sort-ratio matching.
const DefaultNameThreshold = 0.80

// aadhaarLength is the well-formed digit count on both sides of an
// Aadhaar comparison.
const aadhaarLength = 12

// FieldMatch is the outcome of comparing one extracted field against
// its reference value.
type FieldMatch struct {
	Matched    bool
	Similarity float64
	Extracted  string
	Expected   string
}

var nonLetterOrSpace = regexp.MustCompile(`[^A-Z ]+`)

// Name performs a fuzzy, case-insensitive, whitespace-normalized
// comparison. The similarity is the better of the raw-string and
// sorted-token Levenshtein similarities, making the comparison
// insensitive to token order: "Doe John" scores the same as
// "John Doe". Matched when similarity meets the threshold.
func Name(extracted extract.Field, expected string, threshold float64) FieldMatch {
	result := FieldMatch{Extracted: extracted.Value(), Expected: expected}

	ext, ok := extracted.Get()
	if !ok || strings.TrimSpace(expected) == "" {
		return result
	}

	a := normalizeName(ext)
	b := normalizeName(expected)
	if a == "" || b == "" {
		return result
	}

	raw := similarity(a, b)
	sorted := similarity(sortTokens(a), sortTokens(b))
	result.Similarity = max(raw, sorted)
	result.Matched = result.Similarity >= threshold
	return result
}

// DOB normalizes both sides through the date parser and compares
// canonical dates for exact equality. Either side failing to
// normalize is a non-match with zero similarity.
func DOB(extracted extract.Field, expected string) FieldMatch {
	result := FieldMatch{Extracted: extracted.Value(), Expected: expected}

	ext, ok := extracted.Get()
	if !ok {
		return result
	}

	extDate, err := dates.Parse(ext)
	if err != nil {
		return result
	}
	expDate, err := dates.Parse(expected)
	if err != nil {
		return result
	}

	result.Extracted = extDate.String()
	result.Expected = expDate.String()
	if extDate.Equal(expDate) {
		result.Matched = true
		result.Similarity = 1.0
	}
	return result
}

// Aadhaar strips all non-digit characters from both sides and compares
// exactly. Both sides must carry exactly twelve digits; anything else
// is a mismatch, not an error.
func Aadhaar(extracted extract.Field, expected string) FieldMatch {
	result := FieldMatch{Extracted: extracted.Value(), Expected: expected}

	ext, ok := extracted.Get()
	if !ok {
		return result
	}

	extDigits := extract.DigitsOnly(ext)
	expDigits := extract.DigitsOnly(expected)
	if len(extDigits) != aadhaarLength || len(expDigits) != aadhaarLength {
		return result
	}

	result.Extracted = extDigits
	result.Expected = expDigits
	if extDigits == expDigits {
		result.Matched = true
		result.Similarity = 1.0
	}
	return result
}

// normalizeName upper-cases, strips everything but letters and spaces,
// and collapses whitespace.
func normalizeName(name string) string {
	s := strings.ToUpper(name)
	s = nonLetterOrSpace.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// sortTokens rebuilds a name from its alphabetically sorted tokens.
func sortTokens(name string) string {
	tokens := strings.Fields(name)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// similarity converts Levenshtein edit distance into a [0,1] score
// against the longer string.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}
