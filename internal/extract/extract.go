// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

// All runs the three extractors against normalized text. The
// date-of-birth extractor runs first; the span it claims is withheld
// from the Aadhaar extractor so a shared digit run is never assigned
// to two fields.
func All(text string) Fields {
	dob, span := DateOfBirth(text)
	return Fields{
		Name:    PersonName(text),
		DOB:     dob,
		Aadhaar: AadhaarNumber(text, span),
	}
}
