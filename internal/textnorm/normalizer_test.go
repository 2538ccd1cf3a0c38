// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize_WhitespaceCollapse(t *testing.T) {
	got := Normalize("Name:   JOHN    DOE\t\tx")
	if got != "Name: JOHN DOE x" {
		t.Errorf("got %q", got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("empty input should normalize to empty, got %q", got)
	}
	if got := Normalize("\n\n   \n\t\n"); got != "" {
		t.Errorf("whitespace-only input should normalize to empty, got %q", got)
	}
}

func TestNormalize_CarriageReturns(t *testing.T) {
	got := Normalize("Name: JOHN DOE\r\nDOB: 15-08-1995\r\n")
	want := "Name: JOHN DOE\nDOB: 15-08-1995"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_JoinsDanglingLabel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"name label", "Name:\nJOHN DOE", "Name: JOHN DOE"},
		{"dob label", "DOB\n15-08-1995", "DOB 15-08-1995"},
		{"date of birth label", "Date of Birth:\n15/08/1995", "Date of Birth: 15/08/1995"},
		{"aadhaar label", "Aadhaar Number:\n1234 5678 9012", "Aadhaar Number: 1234 5678 9012"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalize_LabelWithValueStaysPut(t *testing.T) {
	// A label that already has its value must not swallow the next line.
	got := Normalize("Name: JOHN DOE\nDOB: 15-08-1995")
	if !strings.Contains(got, "Name: JOHN DOE\n") {
		t.Errorf("labeled line with value should stay on its own line, got %q", got)
	}
}

func TestNormalize_PreservesCase(t *testing.T) {
	got := Normalize("JoHn DoE")
	if got != "JoHn DoE" {
		t.Errorf("normalization must not change casing, got %q", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("  a  b \n\n c\n")
	if len(got) != 2 || got[0] != "a b" || got[1] != "c" {
		t.Errorf("got %v", got)
	}
}
