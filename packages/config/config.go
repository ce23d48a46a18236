// Package config loads uncurl CLI configuration from JSON files.
//
// Configuration is searched in the working directory under the names in
// ConfigFilenames; flags always win over file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the uncurl configuration.
type Config struct {
	DefaultFormat string `json:"defaultFormat,omitempty"` // text, json, or yaml
	Pretty        *bool  `json:"pretty,omitempty"`
	NoColor       *bool  `json:"noColor,omitempty"`
	HistoryPath   string `json:"historyPath,omitempty"`
}

// ConfigFilenames are the recognized config file names, tried in order.
var ConfigFilenames = []string{".uncurl.json", "uncurl.config.json"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat: "text",
	}
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetPretty returns the pretty-print setting, defaulting to false.
func (c *Config) GetPretty() bool {
	return getBool(c.Pretty, false)
}

// GetNoColor returns the color suppression setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetHistoryPath returns the history database location, defaulting to
// .uncurl/history.db under the user home directory.
func (c *Config) GetHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".uncurl", "history.db")
	}
	return filepath.Join(home, ".uncurl", "history.db")
}

// LoadConfig loads configuration from the given path, or searches the
// working directory when the path is empty.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory and
// falls back to defaults when none exists.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	switch config.DefaultFormat {
	case "", "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid defaultFormat %q in %s", config.DefaultFormat, path)
	}
	return config, nil
}
