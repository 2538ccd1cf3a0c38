// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

// Teen classification boundaries. These are the single point of truth
// for the age policy; nothing else in the engine hardcodes an age.
//
// The band policy classifies ages 13 through 19 inclusive as teen,
// matching the common-usage teen band. The under-18 policy instead
// flags anyone below UnderAgeThreshold, for callers doing minor
// screening rather than teen classification.
const (
	TeenMinAge        = 13
	TeenMaxAge        = 19
	UnderAgeThreshold = 18
)

// TeenPolicy selects how IsTeen interprets an age in years.
type TeenPolicy string

const (
	// TeenPolicyBand classifies TeenMinAge..TeenMaxAge inclusive as teen.
	TeenPolicyBand TeenPolicy = "band"

	// TeenPolicyUnder18 classifies any age below UnderAgeThreshold as teen.
	TeenPolicyUnder18 TeenPolicy = "under-18"
)

// ValidTeenPolicy reports whether p names a known policy.
func ValidTeenPolicy(p TeenPolicy) bool {
	return p == TeenPolicyBand || p == TeenPolicyUnder18
}

// AgeYears computes whole years elapsed between dob and asOf: the year
// difference, decremented by one when the (month, day) of asOf has not
// yet reached the (month, day) of dob. Returns *InvalidDateError when
// asOf precedes dob.
func AgeYears(dob, asOf CanonicalDate) (int, error) {
	if asOf.Before(dob) {
		return 0, &InvalidDateError{DOB: dob, AsOf: asOf}
	}

	years := asOf.Year - dob.Year
	if asOf.Month < dob.Month || (asOf.Month == dob.Month && asOf.Day < dob.Day) {
		years--
	}
	return years, nil
}

// IsTeen applies the given policy to an age in years. Unknown policies
// fall back to the band policy.
func IsTeen(ageYears int, policy TeenPolicy) bool {
	if policy == TeenPolicyUnder18 {
		return ageYears < UnderAgeThreshold
	}
	return ageYears >= TeenMinAge && ageYears <= TeenMaxAge
}
