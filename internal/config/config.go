// Package config loads and saves the user configuration from
// ~/.jornada/config.yaml: key mappings, theme colors, and the undo
// snackbar duration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Theme       `yaml:"theme"`
	UndoSeconds int         `yaml:"undo_seconds"`

	// DBPath overrides the default database location
	// (~/.jornada/storymap.db) when non-empty.
	DBPath string `yaml:"db_path,omitempty"`
}

// UndoDuration returns the configured undo window.
func (c *Config) UndoDuration() time.Duration {
	return time.Duration(c.UndoSeconds) * time.Second
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
		UndoSeconds: 10,
	}
}

// applyDefaults fills in any missing values with defaults
func (c *Config) applyDefaults() {
	defaults := DefaultKeyMappings()
	if c.KeyMappings.Quit == "" {
		c.KeyMappings.Quit = defaults.Quit
	}
	if c.KeyMappings.ShowHelp == "" {
		c.KeyMappings.ShowHelp = defaults.ShowHelp
	}
	if c.KeyMappings.PrevZone == "" {
		c.KeyMappings.PrevZone = defaults.PrevZone
	}
	if c.KeyMappings.NextZone == "" {
		c.KeyMappings.NextZone = defaults.NextZone
	}
	if c.KeyMappings.PrevIssue == "" {
		c.KeyMappings.PrevIssue = defaults.PrevIssue
	}
	if c.KeyMappings.NextIssue == "" {
		c.KeyMappings.NextIssue = defaults.NextIssue
	}
	if c.KeyMappings.GrabIssue == "" {
		c.KeyMappings.GrabIssue = defaults.GrabIssue
	}
	if c.KeyMappings.DropIssue == "" {
		c.KeyMappings.DropIssue = defaults.DropIssue
	}
	if c.KeyMappings.CancelDrag == "" {
		c.KeyMappings.CancelDrag = defaults.CancelDrag
	}
	if c.KeyMappings.UnassignIssue == "" {
		c.KeyMappings.UnassignIssue = defaults.UnassignIssue
	}
	if c.KeyMappings.ViewIssue == "" {
		c.KeyMappings.ViewIssue = defaults.ViewIssue
	}
	if c.KeyMappings.Undo == "" {
		c.KeyMappings.Undo = defaults.Undo
	}
	if c.KeyMappings.DismissUndo == "" {
		c.KeyMappings.DismissUndo = defaults.DismissUndo
	}

	themeDefaults := DefaultTheme()
	if c.Theme.Border == "" {
		c.Theme.Border = themeDefaults.Border
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = themeDefaults.Accent
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = themeDefaults.Muted
	}
	if c.Theme.Danger == "" {
		c.Theme.Danger = themeDefaults.Danger
	}

	if c.UndoSeconds <= 0 {
		c.UndoSeconds = 10
	}
}

// getConfigPath returns the path of the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jornada", "config.yaml"), nil
}
