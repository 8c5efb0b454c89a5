// Package script executes line-oriented task scripts against the task
// services. Each non-blank line is one intent:
//
//	add <text>
//	toggle <ref>
//	remove <ref>
//	clear-completed
//	list [all|active|completed]
//	match <glob>
//	theme <name>
//
// A ref is either a task id or #N, the 1-based position in the full list.
// Lines starting with # are comments.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/tasks"
	"github.com/colonyops/tasks/pkg/iojson"
)

var (
	// ErrUnknownCommand is returned for a line whose first word is not a
	// known intent.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when an intent needs an argument and
	// the line has none.
	ErrMissingArgument = errors.New("missing argument")
)

// Matcher is implemented by task services that support glob search.
type Matcher interface {
	Match(pattern string) ([]todo.Item, error)
}

// Runner executes scripts and writes results as JSON lines.
type Runner struct {
	todos  tasks.Todos
	themes tasks.Themes
	out    io.Writer

	printed bool
}

// NewRunner creates a Runner writing to out.
func NewRunner(todos tasks.Todos, themes tasks.Themes, out io.Writer) *Runner {
	return &Runner{todos: todos, themes: themes, out: out}
}

// Run executes every line of r. It stops at the first failing line and
// returns an error naming the line number. When the script printed
// nothing itself, the final list is written once all lines ran.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	logger := logging.Component("script")
	lineNo := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lineCtx := logging.WithLine(ctx, lineNo)
		logger.Debug().Ctx(lineCtx).Str("intent", line).Msg("script intent")

		if err := r.exec(line); err != nil {
			logger.Warn().Ctx(lineCtx).Err(err).Msg("script stopped")
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if !r.printed {
		return iojson.WriteLines(r.out, r.todos.GetTodos())
	}
	return nil
}

func (r *Runner) exec(line string) error {
	verb, arg := splitIntent(line)

	switch verb {
	case "add":
		r.todos.AddTodo(arg)
		return nil

	case "toggle":
		if arg == "" {
			return fmt.Errorf("toggle: %w", ErrMissingArgument)
		}
		r.todos.ToggleTodo(r.resolve(arg))
		return nil

	case "remove":
		if arg == "" {
			return fmt.Errorf("remove: %w", ErrMissingArgument)
		}
		r.todos.RemoveTodo(r.resolve(arg))
		return nil

	case "clear-completed":
		r.todos.ClearCompleted()
		return nil

	case "list":
		filter, err := todo.ParseFilter(arg)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		return r.print(filter.Apply(r.todos.GetTodos()))

	case "match":
		if arg == "" {
			return fmt.Errorf("match: %w", ErrMissingArgument)
		}
		m, ok := r.todos.(Matcher)
		if !ok {
			return fmt.Errorf("match: not supported by %T", r.todos)
		}
		items, err := m.Match(arg)
		if err != nil {
			return err
		}
		return r.print(items)

	case "theme":
		if arg == "" {
			return fmt.Errorf("theme: %w", ErrMissingArgument)
		}
		return r.themes.SetTheme(arg)

	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
	}
}

// splitIntent separates the verb from its argument at the first run of
// whitespace.
func splitIntent(line string) (verb, arg string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// resolve maps #N to the id at that position. Anything else, including an
// out of range position, is returned unchanged and treated as an id.
func (r *Runner) resolve(ref string) string {
	pos, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return ref
	}

	n, err := strconv.Atoi(pos)
	if err != nil {
		return ref
	}

	items := r.todos.GetTodos()
	if n < 1 || n > len(items) {
		return ref
	}
	return items[n-1].ID
}

func (r *Runner) print(items []todo.Item) error {
	r.printed = true
	return iojson.WriteLines(r.out, items)
}
