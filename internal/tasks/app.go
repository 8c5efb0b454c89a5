package tasks

import (
	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/store"
)

// App is the central entry point for all operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Todos  Todos
	Themes Themes

	Store  *store.Master
	Bus    *eventbus.EventBus
	Log    logging.Logger
	Config *config.Config
}
