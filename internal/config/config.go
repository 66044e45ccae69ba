// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxSteps caps the roadmap length when the config does not set one.
const DefaultMaxSteps = 10

// DefaultRoleCount is how many role suggestions to request from the model
// collaborator when the config does not set one.
const DefaultRoleCount = 5

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Collaborator data tables
	AliasTable   string `json:"alias_table,omitempty"`   // Path to skill alias table JSON
	EffortTable  string `json:"effort_table,omitempty"`  // Path to skill effort tier table JSON
	PrereqTable  string `json:"prereq_table,omitempty"`  // Path to skill prerequisite table JSON

	// Limits
	MaxSteps  int `json:"max_steps,omitempty"`  // Maximum roadmap steps
	RoleCount int `json:"role_count,omitempty"` // Role suggestions to request

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
func (c *Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("config error: 'max_steps' must be non-negative")
	}
	if c.RoleCount < 0 {
		return fmt.Errorf("config error: 'role_count' must be non-negative")
	}

	for _, table := range []struct{ field, path string }{
		{"alias_table", c.AliasTable},
		{"effort_table", c.EffortTable},
		{"prereq_table", c.PrereqTable},
	} {
		if table.path == "" {
			continue
		}
		if _, err := os.Stat(table.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", table.field, table.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.AliasTable == "" {
		result.AliasTable = defaults.AliasTable
	}
	if result.EffortTable == "" {
		result.EffortTable = defaults.EffortTable
	}
	if result.PrereqTable == "" {
		result.PrereqTable = defaults.PrereqTable
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxSteps == 0 {
		if defaults.MaxSteps > 0 {
			result.MaxSteps = defaults.MaxSteps
		} else {
			result.MaxSteps = DefaultMaxSteps
		}
	}
	if result.RoleCount == 0 {
		if defaults.RoleCount > 0 {
			result.RoleCount = defaults.RoleCount
		} else {
			result.RoleCount = DefaultRoleCount
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
