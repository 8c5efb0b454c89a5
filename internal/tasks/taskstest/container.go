package taskstest

import (
	"testing"

	"github.com/colonyops/tasks/internal/container"
	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/logging/logtest"
	"github.com/colonyops/tasks/internal/tasks"
)

// NewContainer returns a registry with the same tokens as production, with
// the logger bound to a logtest.Recorder and the task service bound to a
// FakeTodos. The theme service is real and the event bus is nil, which
// drops every publish.
func NewContainer(t testing.TB) *container.Container {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	c := container.New()
	tasks.Register(c, tasks.Deps{Config: &cfg})

	// Replace production providers.
	container.Provide(c, tasks.LoggerToken, func(*container.Container) (logging.Logger, error) {
		return logtest.New(), nil
	})
	container.Value(c, tasks.BusToken, (*eventbus.EventBus)(nil))
	container.Provide(c, tasks.TodosToken, func(c *container.Container) (tasks.Todos, error) {
		return NewFakeTodos(Logs(c)), nil
	})

	return c
}

// Logs returns the recorder bound to the logger token.
func Logs(c *container.Container) *logtest.Recorder {
	return container.MustResolve(c, tasks.LoggerToken).(*logtest.Recorder)
}

// Todos returns the fake bound to the task service token.
func Todos(c *container.Container) *FakeTodos {
	return container.MustResolve(c, tasks.TodosToken).(*FakeTodos)
}
