// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"
)

// Pattern is one step of an extraction cascade: a compiled regex whose
// first capture group is the field value, plus metadata. Adding a new
// label variant is a data change here, not a control-flow change.
type Pattern struct {
	Name        string
	Description string
	Priority    int
	Regex       *regexp.Regexp
}

// Span marks a half-open [Start, End) byte range in the searched text.
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span is unset.
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// firstMatch runs the cascade against text in declaration order and
// returns the trimmed first capture group of the first pattern that
// matches, along with the span of the capture group. There is no
// backtracking to weaker patterns once a pattern has matched.
func firstMatch(patterns []Pattern, text string) (string, Span, bool) {
	for _, p := range patterns {
		loc := p.Regex.FindStringSubmatchIndex(text)
		if loc == nil || len(loc) < 4 || loc[2] < 0 {
			continue
		}
		value := strings.TrimSpace(text[loc[2]:loc[3]])
		if value == "" {
			continue
		}
		return value, Span{Start: loc[2], End: loc[3]}, true
	}
	return "", Span{}, false
}

// maskSpan blanks a claimed span with spaces so later extractors cannot
// re-claim the same digit run. Byte positions of the rest of the text
// are preserved.
func maskSpan(text string, span Span) string {
	if span.IsZero() || span.Start < 0 || span.End > len(text) || span.Start >= span.End {
		return text
	}
	return text[:span.Start] + strings.Repeat(" ", span.End-span.Start) + text[span.End:]
}
