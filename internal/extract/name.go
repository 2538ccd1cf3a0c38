// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"aadhaar-verify/internal/textnorm"
)

// maxNameLength bounds a plausible personal name on an identity
// document.
const maxNameLength = 40

// Name cascade: labeled forms first, then the address-block "To" form
// of Aadhaar letters, then honorific prefixes. When the whole cascade
// misses, extraction falls back to the line heuristic below.
var namePatterns = []Pattern{
	{
		Name:        "labeled_name",
		Description: "Name / नाम label followed by a run of letters",
		Priority:    10,
		Regex:       regexp.MustCompile(`(?i)(?:\bname|नाम)\s*[:\-]?\s*([A-Za-z][A-Za-z .']*[A-Za-z.])`),
	},
	{
		Name:        "to_line",
		Description: "Addressee line of an Aadhaar letter: To <name>",
		Priority:    8,
		Regex:       regexp.MustCompile(`(?m)^To\s+([A-Za-z][A-Za-z .']*[A-Za-z.])\s*$`),
	},
	{
		Name:        "honorific_prefix",
		Description: "Mr/Mrs/Ms/Shri/Smt/Km prefix followed by a name",
		Priority:    6,
		Regex:       regexp.MustCompile(`\b(?:Mr\.?|Mrs\.?|Ms\.?|Shri|Smt\.?|Km\.?)\s+([A-Za-z][A-Za-z .']*[A-Za-z.])`),
	},
}

// Document boilerplate that disqualifies a line from being a personal
// name in the fallback heuristic. Drawn from UIDAI letter layouts.
var boilerplateTokens = []string{
	"government", "india", "authority", "unique", "identification",
	"aadhaar", "aadhar", "address", "enrolment", "enrollment", "vid",
	"male", "female", "birth", "issue", "download", "help", "uidai",
	"proof", "identity", "verification", "pin", "code",
}

var (
	anyDigit   = regexp.MustCompile(`\d`)
	nonNameRun = regexp.MustCompile(`[^A-Za-z ]+`)
)

// PersonName extracts a personal name from normalized text. Labeled
// patterns win outright; failing all of them, the line most resembling
// a personal name is picked: mostly alphabetic, two to four tokens, no
// digits, and free of document boilerplate.
func PersonName(text string) Field {
	if value, _, ok := firstMatch(namePatterns, text); ok {
		if cleaned, ok := cleanName(value); ok {
			return Some(cleaned)
		}
	}

	best := ""
	bestScore := 0.0
	for _, line := range textnorm.Lines(text) {
		cleaned, ok := cleanName(line)
		if !ok {
			continue
		}
		if score := alphaRatio(line); score > bestScore {
			best = cleaned
			bestScore = score
		}
	}
	if best == "" {
		return None()
	}
	return Some(best)
}

// cleanName strips non-letter noise from a candidate and validates the
// result as a plausible personal name.
func cleanName(candidate string) (string, bool) {
	s := nonNameRun.ReplaceAllString(candidate, " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || len(s) > maxNameLength {
		return "", false
	}
	if anyDigit.MatchString(candidate) {
		return "", false
	}

	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	for _, w := range words {
		if len(w) < 2 {
			return "", false
		}
	}

	lower := strings.ToLower(s)
	for _, token := range boilerplateTokens {
		if strings.Contains(lower, token) {
			return "", false
		}
	}
	return s, true
}

// alphaRatio scores how name-like a raw line is: the fraction of its
// non-space characters that are ASCII letters.
func alphaRatio(line string) float64 {
	letters, total := 0, 0
	for _, r := range line {
		if r == ' ' {
			continue
		}
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
