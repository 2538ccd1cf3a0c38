// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reference loads the caller-supplied record the engine
// verifies a document against.
package reference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record holds the expected identity values. All fields are free-form;
// the engine normalizes them before comparison. Missing fields are
// empty strings, never pointers.
type Record struct {
	Name    string `json:"name"`
	DOB     string `json:"dob"`
	Aadhaar string `json:"aadhaar"`
}

// Empty reports whether the record carries no usable field at all.
func (r Record) Empty() bool {
	return strings.TrimSpace(r.Name) == "" &&
		strings.TrimSpace(r.DOB) == "" &&
		strings.TrimSpace(r.Aadhaar) == ""
}

// Load reads a reference record from a JSON file of the shape
// {"name": ..., "dob": ..., "aadhaar": ...}. Unknown keys are
// rejected so a mistyped field name fails loudly instead of silently
// verifying against an empty value.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading reference file: %w", err)
	}

	var record Record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&record); err != nil {
		return nil, fmt.Errorf("error parsing reference file: %w", err)
	}
	return &record, nil
}
