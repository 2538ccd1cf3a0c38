// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

import (
	"fmt"
	"strings"
	"time"
)

// MinYear is the earliest birth year the engine accepts. Dates before
// this are treated as OCR noise rather than plausible dates of birth.
const MinYear = 1900

// CanonicalDate is a calendar-validated (year, month, day) triple,
// independent of the input format it was parsed from.
type CanonicalDate struct {
	Year  int
	Month int
	Day   int
}

// dateLayout is one step of the parse cascade. Layouts are tried in
// declaration order; the first one that produces a calendar-valid date
// wins.
type dateLayout struct {
	name   string
	layout string
}

// Parse cascade, most common Aadhaar formats first. Go's numeric layout
// tokens without leading zeros ("2", "1") accept both one- and
// two-digit values, so "15/08/1995" and "5/8/1995" share an entry.
var dateLayouts = []dateLayout{
	{"day_slash", "2/1/2006"},
	{"day_dash", "2-1-2006"},
	{"iso_dash", "2006-1-2"},
	{"iso_slash", "2006/1/2"},
	{"day_month_abbrev", "2 Jan 2006"},
	{"day_month_full", "2 January 2006"},
	{"month_day_comma", "Jan 2, 2006"},
	{"month_full_day_comma", "January 2, 2006"},
}

// Parse converts a raw date string into a CanonicalDate. It tries each
// supported layout in order and returns a *DateParseError when no
// layout matches, the date is not calendar-valid, or the year lies
// outside [MinYear, current year]. The function is locale-independent:
// month names are matched in English only, exactly as they appear in
// the layouts above.
func Parse(raw string) (CanonicalDate, error) {
	return parseWithMaxYear(raw, time.Now().Year())
}

func parseWithMaxYear(raw string, maxYear int) (CanonicalDate, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return CanonicalDate{}, &DateParseError{Input: raw, Reason: "empty date string"}
	}

	for _, dl := range dateLayouts {
		t, err := time.Parse(dl.layout, s)
		if err != nil {
			continue
		}
		d := CanonicalDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
		if d.Year < MinYear || d.Year > maxYear {
			return CanonicalDate{}, &DateParseError{
				Input:  raw,
				Reason: fmt.Sprintf("year %d outside [%d, %d]", d.Year, MinYear, maxYear),
			}
		}
		return d, nil
	}

	return CanonicalDate{}, &DateParseError{Input: raw, Reason: "no supported date format matched"}
}

// Valid reports whether the date is calendar-valid (real month, real
// day for that month and year).
func (d CanonicalDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// IsZero reports whether the date is the zero value.
func (d CanonicalDate) IsZero() bool {
	return d == CanonicalDate{}
}

// Equal reports whether two dates name the same calendar day.
func (d CanonicalDate) Equal(other CanonicalDate) bool {
	return d == other
}

// Before reports whether d falls strictly before other.
func (d CanonicalDate) Before(other CanonicalDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders the date in dd-mm-yyyy form, the display format used
// throughout the verification report.
func (d CanonicalDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// Today returns the current date in the local time zone.
func Today() CanonicalDate {
	now := time.Now()
	return CanonicalDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}
