// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

import "fmt"

// DateParseError indicates a date string that no supported format
// matched, or that matched but produced a date outside calendar or
// year-range validity.
type DateParseError struct {
	Input  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q: %s", e.Input, e.Reason)
}

// InvalidDateError indicates a date pair that is individually valid but
// jointly impossible, such as an as-of date preceding the date of birth.
type InvalidDateError struct {
	DOB  CanonicalDate
	AsOf CanonicalDate
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("as-of date %s precedes date of birth %s", e.AsOf, e.DOB)
}
