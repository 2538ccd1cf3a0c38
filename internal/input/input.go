// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package input loads document text for the verification engine. Plain
// text files are read as-is; PDFs with a text layer are read through
// github.com/ledongthuc/pdf. Image formats require an external OCR
// pass and are rejected with a clear error.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxPages caps PDF processing so a pathological document cannot stall
// a verification run. Identity documents are one or two pages.
const maxPages = 10

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
}

// UnsupportedFormatError indicates a file type the engine cannot read
// directly.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported input format %q for %s: run OCR first and supply the text output", e.Extension, e.Path)
}

// ReadDocument returns the raw text of a document file. The format is
// chosen by extension: .pdf goes through the text-layer extractor,
// image formats are rejected, and everything else is treated as plain
// text.
func ReadDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return readPDF(path)
	case imageExtensions[ext]:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	default:
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return "", fmt.Errorf("error reading document: %w", err)
		}
		return string(data), nil
	}
}
