// Package config provides configuration management for doxmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the doxmd configuration.
type Config struct {
	OutputFormat string `yaml:"output_format,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	NoColor      bool   `yaml:"no_color,omitempty"`
	Extract      bool   `yaml:"extract,omitempty"`
}

// validLogLevels are the log levels accepted by the logging wrapper.
var validLogLevels = map[string]bool{
	"": true, "debug": true, "info": true, "warn": true, "error": true,
}

// validOutputFormats are the output formats the view renderer understands.
var validOutputFormats = map[string]bool{
	"": true, "table": true, "json": true, "plain": true,
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output_format %q (valid: table, json, plain)", c.OutputFormat)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("DOXMD_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if level := os.Getenv("DOXMD_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if noColor := os.Getenv("DOXMD_NO_COLOR"); noColor != "" {
		if v, err := strconv.ParseBool(noColor); err == nil {
			c.NoColor = v
		}
	}
	if extract := os.Getenv("DOXMD_EXTRACT"); extract != "" {
		if v, err := strconv.ParseBool(extract); err == nil {
			c.Extract = v
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "doxmd", "config.yml")
	}

	// Fall back to ~/.config/doxmd/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".doxmd", "config.yml")
	}

	return filepath.Join(home, ".config", "doxmd", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; defaults apply.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
