package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tasks config validate [options]",
				Description: "Validates the configuration file and reports every invalid field and warning.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	// Parse without validating so every problem is reported, not just the first.
	cfg, err := config.Parse(cmd.flags.ConfigPath, cmd.flags.DataDir)
	if err != nil {
		return err
	}

	result := validate(cfg, cmd.flags.ConfigPath)
	w := c.Root().Writer

	if cmd.format == "json" {
		err = iojson.WriteWith(w, c.Root().ErrWriter, result)
	} else {
		err = writeValidationText(w, result)
	}
	if err != nil {
		return err
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func validate(cfg *config.Config, path string) validationResult {
	result := validationResult{Valid: true, Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(path)
	if err == nil {
		return result
	}

	result.Valid = false
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			result.Errors = append(result.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return result
	}

	result.Errors = append(result.Errors, validationError{Message: err.Error()})
	return result
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

func writeValidationText(w io.Writer, result validationResult) error {
	for _, warn := range result.Warnings {
		line := fmt.Sprintf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			line += " (" + warn.Item + ")"
		}
		if _, err := fmt.Fprintln(w, warnStyle.Render("! ")+line); err != nil {
			return err
		}
	}

	for _, e := range result.Errors {
		line := e.Message
		if e.Field != "" {
			line = e.Field + ": " + e.Message
		}
		if _, err := fmt.Fprintln(w, errStyle.Render("✗ ")+line); err != nil {
			return err
		}
	}

	if result.Valid {
		_, err := fmt.Fprintln(w, okStyle.Render("✓ ")+"Configuration is valid")
		return err
	}

	_, err := fmt.Fprintf(w, "%d error(s) found\n", len(result.Errors))
	return err
}
