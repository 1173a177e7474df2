// Package config loads utfcount settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by utfcount.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultMaxInputBytes caps how much input utfcount reads.
const DefaultMaxInputBytes int64 = 64 << 20

var validLogLevels = map[string]struct{}{
	"panic": {}, "fatal": {}, "error": {}, "warn": {}, "warning": {}, "info": {}, "debug": {}, "trace": {},
}

// Config holds utfcount settings.
type Config struct {
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
	MaxInputBytes int64  `yaml:"max_input_bytes"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Format:        FormatText,
		LogLevel:      "warn",
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

// LoadConfig reads path and overlays it onto DefaultConfig.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	//nolint:gosec // CLI intentionally reads user-provided config paths.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", c.Format)
	}
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive, got %d", c.MaxInputBytes)
	}
	return nil
}
