// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags provide a value
const (
	DefaultMatchLimit    = 20
	DefaultMaxTextLength = 100000
	DefaultPort          = 8080
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Taxonomy is a path to an alternate taxonomy JSON file. Empty means
	// the compiled-in default taxonomy.
	Taxonomy string `json:"taxonomy,omitempty"`

	// MatchLimit caps how many ranked matches are returned
	MatchLimit int `json:"match_limit,omitempty"`

	// MaxTextLength caps resume text before analysis; 0 uses the default
	MaxTextLength int `json:"max_text_length,omitempty"`

	// Port is the HTTP server listen port
	Port int `json:"port,omitempty"`

	// Verbose prints detailed human-readable output in the CLI
	Verbose bool `json:"verbose,omitempty"`

	// JSONLog switches server logs from console to JSON encoding
	JSONLog bool `json:"json_log,omitempty"`

	// Debug lowers the log level to debug
	Debug bool `json:"debug,omitempty"`
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.MatchLimit < 0 {
		return fmt.Errorf("config error: 'match_limit' must be non-negative")
	}
	if c.MaxTextLength < 0 {
		return fmt.Errorf("config error: 'max_text_length' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// ApplyDefaults returns a copy with zero-valued numeric fields filled from
// the package defaults.
func (c *Config) ApplyDefaults() Config {
	result := *c

	if result.MatchLimit == 0 {
		result.MatchLimit = DefaultMatchLimit
	}
	if result.MaxTextLength == 0 {
		result.MaxTextLength = DefaultMaxTextLength
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	return result
}
