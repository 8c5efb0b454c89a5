package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/tasks"
	"github.com/colonyops/tasks/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *tasks.App

	filter string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *tasks.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive task list",
		UsageText: "tasks tui [--filter all|active|completed]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "initial filter (all, active, completed); defaults to tui.filter from config",
				Destination: &cmd.filter,
			},
		},
		Action: cmd.Run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	opts, err := cmd.options()
	if err != nil {
		return err
	}

	log.Info().Str("filter", string(opts.Filter)).Msg("starting tui")
	return tui.Run(ctx, cmd.app, opts)
}

func (cmd *TuiCmd) options() (tui.Options, error) {
	cfg := cmd.app.Config

	filter := cfg.TUI.Filter
	if cmd.filter != "" {
		f, err := todo.ParseFilter(cmd.filter)
		if err != nil {
			return tui.Options{}, fmt.Errorf("--filter: %w", err)
		}
		filter = f
	}

	return tui.Options{
		Filter:       filter,
		ConfirmClear: cfg.TUI.ShouldConfirmClear(),
	}, nil
}
