package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/script"
	"github.com/colonyops/tasks/internal/tasks"
)

type RunCmd struct {
	flags *Flags
	app   *tasks.App
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags, app *tasks.App) *RunCmd {
	return &RunCmd{flags: flags, app: app}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run a task script",
		UsageText: "tasks run [file|-]",
		Description: `Executes a script of task intents, one per line, and prints tasks as JSON lines.

Intents:
  add <text>                     add a task
  toggle <ref>                   flip a task between active and completed
  remove <ref>                   delete a task
  clear-completed                delete every completed task
  list [all|active|completed]    print tasks
  match <glob>                   print tasks whose text matches the glob
  theme <name>                   switch the active theme

A <ref> is a task id or #N, the position in the full list starting at 1.
Lines starting with # are ignored. When the script prints nothing itself,
the final list is printed. Reads stdin when no file (or "-") is given.

Examples:
  tasks run plan.tasks
  printf 'add buy milk\nlist\n' | tasks run`,
		Action: cmd.Run,
	})

	return app
}

// Run executes the script named by the first argument. Exported for use as
// default command.
func (cmd *RunCmd) Run(ctx context.Context, c *cli.Command) error {
	path := c.Args().Get(0)
	in, closer, err := openScript(path, c.Root().Reader)
	if err != nil {
		return err
	}
	defer closer()

	source := path
	if source == "" || source == "-" {
		source = "stdin"
	}
	ctx = logging.WithScript(ctx, source)

	runner := script.NewRunner(cmd.app.Todos, cmd.app.Themes, c.Root().Writer)
	return runner.Run(ctx, in)
}

// openScript opens path, or stdin for "" and "-".
func openScript(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open script: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, fmt.Errorf("no input provided (stdin is a terminal); pass a file or pipe a script")
	}
	return stdin, func() {}, nil
}
