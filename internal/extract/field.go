// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract locates identity fields in normalized OCR text. Each
// extractor is an ordered cascade of patterns tried most-specific
// first; the first pattern that matches wins. A field no pattern could
// claim is absent, which is a valid terminal state rather than an
// error.
package extract

// Field is an optional extracted value. The zero value is absent.
type Field struct {
	value   string
	present bool
}

// Some wraps a present value.
func Some(value string) Field {
	return Field{value: value, present: true}
}

// None is the absent field.
func None() Field {
	return Field{}
}

// Present reports whether a value was extracted.
func (f Field) Present() bool {
	return f.present
}

// Value returns the extracted value, or the empty string when absent.
func (f Field) Value() string {
	return f.value
}

// Get returns the value and a presence flag.
func (f Field) Get() (string, bool) {
	return f.value, f.present
}

// Or returns the value when present, otherwise def.
func (f Field) Or(def string) string {
	if f.present {
		return f.value
	}
	return def
}

// Fields holds the three per-document extraction results.
type Fields struct {
	Name    Field
	DOB     Field
	Aadhaar Field
}
