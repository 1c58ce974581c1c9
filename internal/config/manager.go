package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the tool
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Manager implements the ConfigManager interface
type Manager struct{}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{}
}

// Load reads and parses the configuration file. Values not present in
// the file keep their defaults.
func (m *Manager) Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	config := GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := m.Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration values are valid
func (m *Manager) Validate(config *Config) error {
	switch strings.ToLower(config.Output.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %s (must be text or json)", config.Output.Format)
	}

	// Database path may be empty - that disables the archive.

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	logLevel := strings.ToLower(config.Logging.Level)
	if !validLogLevels[logLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.Logging.Level)
	}

	return nil
}

// GetDefaultConfig returns a configuration with default values
func GetDefaultConfig() *Config {
	config := &Config{}
	config.Input.TrimTrailingNewline = true
	config.Output.Format = FormatText
	config.Database.Path = ""
	config.Logging.Level = "info"
	config.Logging.File = ""
	return config
}
