// Package config handles configuration loading and validation for tasks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasks/internal/core/theme"
	"github.com/colonyops/tasks/internal/core/todo"
)

// DefaultEventBuffer is the event bus queue size used when none is set.
const DefaultEventBuffer = 64

// Config holds the application configuration.
type Config struct {
	Theme       string    `yaml:"theme"`
	TUI         TUIConfig `yaml:"tui"`
	Seed        []string  `yaml:"seed"`
	EventBuffer int       `yaml:"event_buffer"`
	DataDir     string    `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds interactive view settings.
type TUIConfig struct {
	Filter       todo.Filter `yaml:"filter"`
	ConfirmClear *bool       `yaml:"confirm_clear"`
}

// ShouldConfirmClear reports whether clearing completed tasks asks first.
func (t TUIConfig) ShouldConfirmClear() bool {
	return t.ConfirmClear == nil || *t.ConfirmClear
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: theme.DefaultName,
		TUI: TUIConfig{
			Filter: todo.FilterAll,
		},
		Seed:        []string{},
		EventBuffer: DefaultEventBuffer,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Parse(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration and applies defaults without validating it.
func Parse(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.TUI.Filter == "" {
		c.TUI.Filter = defaults.TUI.Filter
	}
	if c.EventBuffer == 0 {
		c.EventBuffer = defaults.EventBuffer
	}
	if c.Seed == nil {
		c.Seed = defaults.Seed
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := theme.Lookup(c.Theme); !ok {
		return fmt.Errorf("theme %q: %w", c.Theme, theme.ErrUnknown)
	}

	if _, err := todo.ParseFilter(string(c.TUI.Filter)); err != nil {
		return fmt.Errorf("tui.filter: %w", err)
	}

	if c.EventBuffer < 1 {
		return fmt.Errorf("event_buffer must be at least 1")
	}

	return nil
}

// LogFile returns the default log file location inside dataDir.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "tasks.log")
}
