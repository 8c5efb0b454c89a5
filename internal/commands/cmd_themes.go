package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasks/internal/core/theme"
	"github.com/colonyops/tasks/internal/tasks"
	"github.com/colonyops/tasks/pkg/iojson"
)

type ThemesCmd struct {
	flags *Flags
	app   *tasks.App
}

// NewThemesCmd creates a new themes command
func NewThemesCmd(flags *Flags, app *tasks.App) *ThemesCmd {
	return &ThemesCmd{flags: flags, app: app}
}

type themeLine struct {
	theme.Theme
	Active bool `json:"active"`
}

// Register adds the themes command to the application
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List built-in themes as JSON lines",
		UsageText: "tasks themes",
		Action: func(ctx context.Context, c *cli.Command) error {
			active := cmd.app.Themes.GetTheme().Name
			for _, name := range theme.Names() {
				t, _ := theme.Lookup(name)
				if err := iojson.WriteLine(c.Root().Writer, themeLine{Theme: t, Active: name == active}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return app
}
