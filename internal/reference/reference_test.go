// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeFile(t, `{"name": "John Doe", "dob": "15/08/1995", "aadhaar": "1234 5678 9012"}`)
	record, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Name != "John Doe" {
		t.Errorf("name = %q", record.Name)
	}
	if record.DOB != "15/08/1995" {
		t.Errorf("dob = %q", record.DOB)
	}
	if record.Aadhaar != "1234 5678 9012" {
		t.Errorf("aadhaar = %q", record.Aadhaar)
	}
}

func TestLoad_MissingFieldsBecomeEmpty(t *testing.T) {
	path := writeFile(t, `{"name": "John Doe"}`)
	record, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.DOB != "" || record.Aadhaar != "" {
		t.Error("missing fields should load as empty strings")
	}
	if record.Empty() {
		t.Error("record with a name is not empty")
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeFile(t, `{"name": "John Doe", "adhaar": "1234"}`)
	if _, err := Load(path); err == nil {
		t.Error("misspelled field should be rejected")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}
	path := writeFile(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("invalid JSON should error")
	}
}

func TestRecord_Empty(t *testing.T) {
	if !(Record{}).Empty() {
		t.Error("zero record should be empty")
	}
	if !(Record{Name: "  "}).Empty() {
		t.Error("whitespace-only fields should count as empty")
	}
	if (Record{Aadhaar: "123456789012"}).Empty() {
		t.Error("record with an Aadhaar number is not empty")
	}
}
