package tasks

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasks/internal/container"
	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/store"
	"github.com/colonyops/tasks/internal/core/theme"
)

// Service tokens shared by the production and test registries.
var (
	ConfigToken      = container.NewToken[*config.Config]("config")
	LoggerToken      = container.NewToken[logging.Logger]("logger")
	MasterStoreToken = container.NewToken[*store.Master]("master-store")
	BusToken         = container.NewToken[*eventbus.EventBus]("event-bus")
	TodosToken       = container.NewToken[Todos]("todo-service")
	ThemesToken      = container.NewToken[Themes]("theme-service")
)

// Deps are the values the production registry is built from.
type Deps struct {
	Config *config.Config
	Logger zerolog.Logger
}

// Register binds the production implementation of every service token.
func Register(c *container.Container, deps Deps) {
	container.Value(c, ConfigToken, deps.Config)

	container.Provide(c, LoggerToken, func(*container.Container) (logging.Logger, error) {
		return logging.NewZerolog(logging.ComponentOf(deps.Logger, "tasks")), nil
	})

	container.Provide(c, MasterStoreToken, func(*container.Container) (*store.Master, error) {
		return store.NewMaster(), nil
	})

	container.Provide(c, BusToken, func(c *container.Container) (*eventbus.EventBus, error) {
		cfg, err := container.Resolve(c, ConfigToken)
		if err != nil {
			return nil, err
		}
		bus := eventbus.New(cfg.EventBuffer)
		eventbus.RegisterDebugLogger(bus, logging.ComponentOf(deps.Logger, "eventbus"))
		return bus, nil
	})

	container.Provide(c, TodosToken, func(c *container.Container) (Todos, error) {
		log, master, bus, err := serviceDeps(c)
		if err != nil {
			return nil, err
		}
		cfg, err := container.Resolve(c, ConfigToken)
		if err != nil {
			return nil, err
		}
		svc := NewTodoService(log, master, bus)
		svc.Seed(cfg.Seed)
		return svc, nil
	})

	container.Provide(c, ThemesToken, func(c *container.Container) (Themes, error) {
		log, master, bus, err := serviceDeps(c)
		if err != nil {
			return nil, err
		}
		cfg, err := container.Resolve(c, ConfigToken)
		if err != nil {
			return nil, err
		}
		initial, ok := theme.Lookup(cfg.Theme)
		if !ok {
			return nil, fmt.Errorf("theme %q: %w", cfg.Theme, theme.ErrUnknown)
		}
		return NewThemeService(log, master, bus, initial), nil
	})
}

func serviceDeps(c *container.Container) (logging.Logger, *store.Master, *eventbus.EventBus, error) {
	log, err := container.Resolve(c, LoggerToken)
	if err != nil {
		return nil, nil, nil, err
	}
	master, err := container.Resolve(c, MasterStoreToken)
	if err != nil {
		return nil, nil, nil, err
	}
	bus, err := container.Resolve(c, BusToken)
	if err != nil {
		return nil, nil, nil, err
	}
	return log, master, bus, nil
}

// Build resolves every service and assembles the App.
func Build(c *container.Container) (*App, error) {
	app := &App{}

	var err error
	if app.Config, err = container.Resolve(c, ConfigToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	if app.Log, err = container.Resolve(c, LoggerToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	if app.Store, err = container.Resolve(c, MasterStoreToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	if app.Bus, err = container.Resolve(c, BusToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	if app.Todos, err = container.Resolve(c, TodosToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	if app.Themes, err = container.Resolve(c, ThemesToken); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	eventbus.NewNotificationRouter(app.Bus).Register()

	return app, nil
}
