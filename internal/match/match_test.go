// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"testing"

	"aadhaar-verify/internal/extract"
)

func TestName_Exact(t *testing.T) {
	result := Name(extract.Some("JOHN DOE"), "John Doe", DefaultNameThreshold)
	if !result.Matched {
		t.Error("identical names (case aside) should match")
	}
	if result.Similarity != 1.0 {
		t.Errorf("similarity = %v, want 1.0", result.Similarity)
	}
}

func TestName_TokenOrderInsensitive(t *testing.T) {
	result := Name(extract.Some("JOHN DOE"), "DOE JOHN", DefaultNameThreshold)
	if !result.Matched {
		t.Errorf("token order must not matter, similarity = %v", result.Similarity)
	}
	if result.Similarity != 1.0 {
		t.Errorf("sorted-token similarity = %v, want 1.0", result.Similarity)
	}
}

func TestName_MinorOCRNoise(t *testing.T) {
	// One character off in a 8-letter name still clears 0.80.
	result := Name(extract.Some("JOHN DOF"), "John Doe", DefaultNameThreshold)
	if !result.Matched {
		t.Errorf("single-character OCR error should still match, similarity = %v", result.Similarity)
	}
}

func TestName_Mismatch(t *testing.T) {
	result := Name(extract.Some("JOHN DOE"), "Jane Smith", DefaultNameThreshold)
	if result.Matched {
		t.Error("different names should not match")
	}
	if result.Similarity >= DefaultNameThreshold {
		t.Errorf("similarity = %v, expected below threshold", result.Similarity)
	}
}

func TestName_AbsentOrEmpty(t *testing.T) {
	if result := Name(extract.None(), "John Doe", DefaultNameThreshold); result.Matched || result.Similarity != 0 {
		t.Error("absent extraction should be a zero-score non-match")
	}
	if result := Name(extract.Some("JOHN DOE"), "", DefaultNameThreshold); result.Matched {
		t.Error("empty expected name should never match")
	}
	if result := Name(extract.Some("..."), "John Doe", DefaultNameThreshold); result.Matched {
		t.Error("extracted value with no letters should never match")
	}
}

func TestName_WhitespaceAndPunctuationNormalized(t *testing.T) {
	result := Name(extract.Some("  john   doe "), "JOHN. DOE", DefaultNameThreshold)
	if !result.Matched || result.Similarity != 1.0 {
		t.Errorf("whitespace/punctuation should normalize away, similarity = %v", result.Similarity)
	}
}

func TestDOB_FormatInvariant(t *testing.T) {
	// The extracted and expected sides may use different formats.
	cases := []struct {
		name      string
		extracted string
		expected  string
	}{
		{"dash vs slash", "15-08-1995", "15/08/1995"},
		{"iso vs day-first", "1995-08-15", "15/08/1995"},
		{"month name vs slash", "15 Aug 1995", "15/08/1995"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := DOB(extract.Some(tc.extracted), tc.expected)
			if !result.Matched {
				t.Errorf("equivalent dates should match")
			}
			if result.Similarity != 1.0 {
				t.Errorf("similarity = %v, want 1.0", result.Similarity)
			}
		})
	}
}

func TestDOB_Mismatch(t *testing.T) {
	result := DOB(extract.Some("15-08-1995"), "16/08/1995")
	if result.Matched || result.Similarity != 0 {
		t.Error("different dates must not match, and there is no partial credit")
	}
}

func TestDOB_UnparseableSides(t *testing.T) {
	cases := []struct {
		name      string
		extracted extract.Field
		expected  string
	}{
		{"absent extraction", extract.None(), "15/08/1995"},
		{"garbage extraction", extract.Some("99-99-9999"), "15/08/1995"},
		{"garbage expected", extract.Some("15-08-1995"), "not a date"},
		{"calendar-invalid expected", extract.Some("15-08-1995"), "31/04/1995"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := DOB(tc.extracted, tc.expected)
			if result.Matched || result.Similarity != 0 {
				t.Error("unparseable side must yield matched=false, similarity=0")
			}
		})
	}
}

func TestAadhaar_SeparatorInvariant(t *testing.T) {
	cases := []struct {
		name      string
		extracted string
		expected  string
	}{
		{"spaces vs bare", "123456789012", "1234 5678 9012"},
		{"dashes vs spaces", "1234-5678-9012", "1234 5678 9012"},
		{"both bare", "123456789012", "123456789012"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Aadhaar(extract.Some(tc.extracted), tc.expected)
			if !result.Matched {
				t.Error("separator variation must not affect the comparison")
			}
		})
	}
}

func TestAadhaar_Malformed(t *testing.T) {
	cases := []struct {
		name      string
		extracted extract.Field
		expected  string
	}{
		{"absent extraction", extract.None(), "123456789012"},
		{"eleven digits extracted", extract.Some("12345678901"), "123456789012"},
		{"thirteen digits extracted", extract.Some("1234567890123"), "123456789012"},
		{"short expected", extract.Some("123456789012"), "1234"},
		{"empty expected", extract.Some("123456789012"), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Aadhaar(tc.extracted, tc.expected)
			if result.Matched {
				t.Error("malformed input is a mismatch, never a match")
			}
		})
	}
}

func TestAadhaar_DifferentNumbers(t *testing.T) {
	result := Aadhaar(extract.Some("123456789012"), "210987654321")
	if result.Matched || result.Similarity != 0 {
		t.Error("different numbers must not match")
	}
}
