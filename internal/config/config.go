// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Planning
	SiteID        string   `json:"site_id,omitempty"`        // Site UUID the run plans for
	Count         int      `json:"count,omitempty"`          // Number of briefs to plan
	Clusters      []string `json:"clusters,omitempty"`       // Optional cluster allow-list
	IncludePillar bool     `json:"include_pillar,omitempty"` // Emit one pillar brief per cluster
	HorizonDays   int      `json:"horizon_days,omitempty"`   // Scheduling window in days

	// Site context
	NamingRules     string   `json:"naming_rules,omitempty"`     // Path to YAML naming-rules table
	LocationMarkers []string `json:"location_markers,omitempty"` // Place-name terms for the intent rules
	Tone            string   `json:"tone,omitempty"`             // Default tone stamped on briefs

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("config error: 'count' must be non-negative")
	}
	if c.HorizonDays < 0 {
		return fmt.Errorf("config error: 'horizon_days' must be non-negative")
	}
	return nil
}
