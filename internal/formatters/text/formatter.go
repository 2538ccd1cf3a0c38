// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"aadhaar-verify/internal/formatters"
	"aadhaar-verify/internal/match"
	"aadhaar-verify/internal/verify"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
			"yellow": color.New(color.FgYellow),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable verification summary with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *verify.Report, options formatters.FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to format")
	}

	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprint("Verification Result"))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("All details match: %s\n", f.yesNo(report.AllMatch)))
	builder.WriteString("\n")

	f.appendFieldLine(&builder, "Name match:   ", report.Name, options)
	f.appendFieldLine(&builder, "DOB match:    ", report.DOB, options)
	f.appendFieldLine(&builder, "Aadhaar match:", report.Aadhaar, options)

	if report.AgeYears != nil {
		builder.WriteString("\n")
		teen := "not a teen"
		if report.IsTeen != nil && *report.IsTeen {
			teen = "teen"
		}
		builder.WriteString(fmt.Sprintf("Age: %d (%s)\n", *report.AgeYears, teen))
	}

	if options.ShowExtracted {
		builder.WriteString("\n")
		builder.WriteString(f.colors["white"].Sprint("Extracted Details"))
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Name:    %s\n", f.extractedValue(report.Extracted.Name.Or("-"))))
		builder.WriteString(fmt.Sprintf("DOB:     %s\n", f.extractedValue(report.Extracted.DOB.Or("-"))))
		builder.WriteString(fmt.Sprintf("Aadhaar: %s\n", f.extractedValue(groupDigits(report.Extracted.Aadhaar.Or("-")))))
	}

	return builder.String(), nil
}

// appendFieldLine writes one "Name match: Yes (JOHN DOE)" line
func (f *Formatter) appendFieldLine(builder *strings.Builder, label string, fm match.FieldMatch, options formatters.FormatterOptions) {
	builder.WriteString(fmt.Sprintf("%s %s", label, f.yesNo(fm.Matched)))
	if fm.Matched && fm.Extracted != "" {
		builder.WriteString(fmt.Sprintf(" (%s)", fm.Extracted))
	}
	if options.Verbose && fm.Similarity > 0 && fm.Similarity < 1 {
		builder.WriteString(f.colors["cyan"].Sprintf(" [similarity %.2f]", fm.Similarity))
	}
	builder.WriteString("\n")
}

func (f *Formatter) yesNo(matched bool) string {
	if matched {
		return f.colors["green"].Sprint("Yes")
	}
	return f.colors["red"].Sprint("No")
}

func (f *Formatter) extractedValue(value string) string {
	if value == "-" {
		return f.colors["yellow"].Sprint("(not found)")
	}
	return value
}

// groupDigits renders a 12-digit number in the conventional 4-4-4 form
func groupDigits(digits string) string {
	if len(digits) != 12 {
		return digits
	}
	return digits[0:4] + " " + digits[4:8] + " " + digits[8:12]
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
