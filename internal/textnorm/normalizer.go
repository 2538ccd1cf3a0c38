// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textnorm canonicalizes raw OCR text before pattern search.
// OCR output arrives with carriage returns, uneven spacing and labels
// split from their values across line breaks; normalization flattens
// all of that without touching character casing, which later stages
// handle per field.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[ \t]+`)

	// A line that is only a field label, with its value pushed to the
	// next line by the OCR engine. Joined back so labeled extractor
	// patterns see "label: value" on one line.
	danglingLabel = regexp.MustCompile(`(?i)^(?:name|नाम|dob|date\s+of\s+birth|जन्म\s*तिथि|aadhaar|aadhar|आधार|uid)\s*(?:number|no\.?)?\s*[:\-]?$`)
)

// Normalize cleans a raw OCR blob: strips carriage returns, collapses
// runs of spaces and tabs, trims line edges, drops empty lines and
// joins a dangling label line with the line that follows it. Total
// over any input including the empty string.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\r", "")
	lines := Lines(raw)

	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if danglingLabel.MatchString(line) && i+1 < len(lines) {
			line = line + " " + lines[i+1]
			i++
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Lines splits text into trimmed, space-collapsed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = whitespaceRun.ReplaceAllString(l, " ")
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
