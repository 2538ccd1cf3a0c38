// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"aadhaar-verify/internal/config"
	"aadhaar-verify/internal/dates"
	"aadhaar-verify/internal/formatters"
	_ "aadhaar-verify/internal/formatters/json"
	_ "aadhaar-verify/internal/formatters/text"
	"aadhaar-verify/internal/input"
	"aadhaar-verify/internal/reference"
	"aadhaar-verify/internal/verify"
	"aadhaar-verify/internal/version"

	"golang.org/x/term"
)

// Exit codes: 0 when all fields match, 1 when verification completes
// with a mismatch, 2 on any error.
const (
	exitMatch    = 0
	exitMismatch = 1
	exitError    = 2
)

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("") // Load default config
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat  string
	verbose       bool
	noColor       bool
	showExtracted bool
	nameThreshold float64
	teenPolicy    string
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format        string
	verbose       bool
	noColor       bool
	showExtracted bool
	nameThreshold float64
	teenPolicy    string
}

// resolveConfiguration resolves final configuration values from config file and command line flags
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Show extracted
	final.showExtracted = false // default fallback
	if cfg != nil {
		final.showExtracted = cfg.Defaults.ShowExtracted
	}
	if isFlagSet("show-extracted") {
		final.showExtracted = flags.showExtracted
	}

	// Name threshold
	final.nameThreshold = 0.80 // default fallback
	if cfg != nil {
		final.nameThreshold = cfg.Matching.NameThreshold
	}
	if isFlagSet("name-threshold") {
		final.nameThreshold = flags.nameThreshold
	}

	// Teen policy
	final.teenPolicy = string(dates.TeenPolicyBand) // default fallback
	if cfg != nil && cfg.Matching.TeenPolicy != "" {
		final.teenPolicy = cfg.Matching.TeenPolicy
	}
	if isFlagSet("teen-policy") && flags.teenPolicy != "" {
		final.teenPolicy = flags.teenPolicy
	}

	return final
}

func main() {
	// Parse command line flags
	rawText := flag.String("text", "", "OCR text to verify (alternative to -file)")
	inputFile := flag.String("file", "", "Path to the document file (plain text or PDF with a text layer)")
	referenceFile := flag.String("reference", "", "Path to reference JSON file with name, dob, and aadhaar fields")
	refName := flag.String("name", "", "Expected name (overrides the reference file)")
	refDOB := flag.String("dob", "", "Expected date of birth (overrides the reference file)")
	refAadhaar := flag.String("aadhaar", "", "Expected Aadhaar number (overrides the reference file)")
	asOfRaw := flag.String("as-of", "", "Date for age calculation, e.g. 20-08-2023 (default: today)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	nameThreshold := flag.Float64("name-threshold", 0.80, "Minimum fuzzy similarity for a name match, between 0 and 1")
	teenPolicy := flag.String("teen-policy", "", "Teen classification policy: band (13-19) or under-18")
	verbose := flag.Bool("verbose", false, "Display similarity scores for each field")
	showExtracted := flag.Bool("show-extracted", false, "Display the field values extracted from the document")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(exitMatch)
	}
	if *showHelp {
		printHelp()
		os.Exit(exitMatch)
	}

	flags := &configFlags{
		outputFormat:  *outputFormat,
		verbose:       *verbose,
		noColor:       *noColor,
		showExtracted: *showExtracted,
		nameThreshold: *nameThreshold,
		teenPolicy:    *teenPolicy,
	}

	// Load configuration and resolve against flags
	cfg := loadConfiguration(*configFile)
	final := resolveConfiguration(cfg, flags)

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || os.Getenv("CI") != "" {
		final.noColor = true
	}

	// Document text comes from exactly one of -text and -file
	if (*rawText == "") == (*inputFile == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -text and -file is required")
		os.Exit(exitError)
	}
	text := *rawText
	if *inputFile != "" {
		var err error
		text, err = input.ReadDocument(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
	}

	ref, err := buildReference(*referenceFile, *refName, *refDOB, *refAadhaar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	asOf := dates.Today()
	if *asOfRaw != "" {
		asOf, err = dates.Parse(*asOfRaw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -as-of date: %v\n", err)
			os.Exit(exitError)
		}
	}

	opts := verify.Options{
		NameThreshold: final.nameThreshold,
		TeenPolicy:    dates.TeenPolicy(final.teenPolicy),
	}
	if !dates.ValidTeenPolicy(opts.TeenPolicy) {
		fmt.Fprintf(os.Stderr, "Error: invalid teen policy %q (valid: %s, %s)\n",
			final.teenPolicy, dates.TeenPolicyBand, dates.TeenPolicyUnder18)
		os.Exit(exitError)
	}

	report, err := verify.Run(text, *ref, asOf, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	output, err := formatters.Export(final.format, report, formatters.FormatterOptions{
		Verbose:       final.verbose,
		NoColor:       final.noColor,
		ShowExtracted: final.showExtracted,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(exitError)
		}
	} else {
		fmt.Print(output)
	}

	if !report.AllMatch {
		os.Exit(exitMismatch)
	}
}

// buildReference assembles the expected record from the reference file
// and any inline field overrides. At least one source is required.
func buildReference(path, name, dob, aadhaar string) (*reference.Record, error) {
	ref := &reference.Record{}
	if path != "" {
		loaded, err := reference.Load(path)
		if err != nil {
			return nil, err
		}
		ref = loaded
	}
	if name != "" {
		ref.Name = name
	}
	if dob != "" {
		ref.DOB = dob
	}
	if aadhaar != "" {
		ref.Aadhaar = aadhaar
	}
	if ref.Empty() {
		return nil, fmt.Errorf("no reference data: pass -reference or at least one of -name, -dob, -aadhaar")
	}
	return ref, nil
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func printHelp() {
	var builder strings.Builder
	builder.WriteString("aadhaar-verify - verify identity fields in OCR text against a reference record\n\n")
	builder.WriteString("Usage:\n")
	builder.WriteString("  aadhaar-verify -file card.txt -reference expected.json\n")
	builder.WriteString("  aadhaar-verify -text \"Name: JOHN DOE\" -name \"John Doe\"\n\n")
	builder.WriteString("The document text is searched for a name, a date of birth, and a\n")
	builder.WriteString("12-digit Aadhaar number. Each extracted field is compared against\n")
	builder.WriteString("the reference record; names fuzzily, dates and numbers exactly\n")
	builder.WriteString("after normalization.\n\n")
	builder.WriteString("Exit codes: 0 all fields match, 1 mismatch, 2 error.\n\n")
	builder.WriteString("Options:\n")
	fmt.Print(builder.String())
	flag.PrintDefaults()
}
