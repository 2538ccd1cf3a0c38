// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"aadhaar-verify/internal/dates"
	"aadhaar-verify/internal/match"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format        string `yaml:"format"`
		Verbose       bool   `yaml:"verbose"`
		NoColor       bool   `yaml:"no_color"`
		ShowExtracted bool   `yaml:"show_extracted"`
	} `yaml:"defaults"`

	// Matching settings
	Matching struct {
		NameThreshold float64 `yaml:"name_threshold"`
		TeenPolicy    string  `yaml:"teen_policy"`
	} `yaml:"matching"`
}

// LoadConfig loads configuration from the specified file path. An
// empty path yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Verbose = false
	config.Defaults.NoColor = false
	config.Defaults.ShowExtracted = false
	config.Matching.NameThreshold = match.DefaultNameThreshold
	config.Matching.TeenPolicy = string(dates.TeenPolicyBand)

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Absent keys leave the seeded defaults in place.
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration values
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	switch config.Defaults.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (valid: text, json)", config.Defaults.Format)
	}

	if config.Matching.NameThreshold < 0 || config.Matching.NameThreshold > 1 {
		return fmt.Errorf("name_threshold %v outside [0,1]", config.Matching.NameThreshold)
	}

	if !dates.ValidTeenPolicy(dates.TeenPolicy(config.Matching.TeenPolicy)) {
		return fmt.Errorf("invalid teen_policy %q (valid: %s, %s)",
			config.Matching.TeenPolicy, dates.TeenPolicyBand, dates.TeenPolicyUnder18)
	}

	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("aadhaar-verify.yaml") {
		return "aadhaar-verify.yaml"
	}
	if fileExists("aadhaar-verify.yml") {
		return "aadhaar-verify.yml"
	}

	// Check for project-specific config in current directory
	if fileExists(".aadhaar-verify.yaml") {
		return ".aadhaar-verify.yaml"
	}
	if fileExists(".aadhaar-verify.yml") {
		return ".aadhaar-verify.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check legacy locations in home directory
	homeConfig := filepath.Join(home, ".aadhaar-verify.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}
	homeConfig = filepath.Join(home, ".aadhaar-verify.yml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "aadhaar-verify", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "aadhaar-verify", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
