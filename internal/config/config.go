// Package config provides configuration loading and validation for the CLI
// and server.
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
	// Paths
	Preferences string `json:"preferences,omitempty"` // Path to a preferences JSON file

	// Behavior
	Mode     string `json:"mode,omitempty"`      // Recommendation mode: "ai" or "filter"
	Sort     string `json:"sort,omitempty"`      // Initial sort field for results
	Search   string `json:"search,omitempty"`    // Initial search filter for results
	PageSize int    `json:"page_size,omitempty"` // Results per page
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information

	// Connections
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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
	if c.Mode != "" && c.Mode != "ai" && c.Mode != "filter" {
		return fmt.Errorf("config error: 'mode' must be \"ai\" or \"filter\", got %q", c.Mode)
	}

	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}

	if c.Preferences != "" {
		if _, err := os.Stat(c.Preferences); os.IsNotExist(err) {
			return fmt.Errorf("config error: preferences file not found: %s", c.Preferences)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Preferences == "" {
		result.Preferences = defaults.Preferences
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.Sort == "" {
		result.Sort = defaults.Sort
	}
	if result.Search == "" {
		result.Search = defaults.Search
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
