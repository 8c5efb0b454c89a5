package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tasks/internal/core/theme"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep validates every field and reports all problems at once,
// including file accessibility. The configPath argument specifies the config
// file location to validate (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateFields(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for i, text := range c.Seed {
		field := fmt.Sprintf("seed[%d]", i)
		if validate.TodoTextField(field, text) != nil {
			warnings = append(warnings, ValidationWarning{
				Category: "Seed",
				Item:     field,
				Message:  "blank seed entry is skipped",
			})
		}
	}

	if c.EventBuffer > 0 && c.EventBuffer < 8 {
		warnings = append(warnings, ValidationWarning{
			Category: "Events",
			Item:     "event_buffer",
			Message:  "small buffers drop notifications under bursts",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func (c *Config) validateFields() error {
	var errs criterio.FieldErrorsBuilder
	if c.EventBuffer < 1 {
		errs = errs.Append("event_buffer", fmt.Errorf("must be at least 1, got %d", c.EventBuffer))
	}

	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("tui.filter", string(c.TUI.Filter), filterExists),
		errs.ToError(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return fmt.Errorf("cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := theme.Lookup(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", "))
	}
	return nil
}

func filterExists(name string) error {
	_, err := todo.ParseFilter(name)
	return err
}
