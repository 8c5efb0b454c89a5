package tasks

import (
	"fmt"

	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/store"
	"github.com/colonyops/tasks/internal/core/theme"
)

// ThemeSliceKey is the state slice holding the active theme.
var ThemeSliceKey = store.Key[theme.Theme]("theme")

// Themes is the contract the presentation layer uses for theming.
type Themes interface {
	GetTheme() theme.Theme
	SetTheme(name string) error
	Cycle() theme.Theme
	Subscribe(fn func(theme.Theme)) func()
}

var _ Themes = (*ThemeService)(nil)

// ThemeService tracks the active color theme.
type ThemeService struct {
	log  logging.Logger
	bus  *eventbus.EventBus
	view *store.View[theme.Theme]
}

// NewThemeService creates a ThemeService whose slice defaults to initial.
func NewThemeService(log logging.Logger, master *store.Master, bus *eventbus.EventBus, initial theme.Theme) *ThemeService {
	return &ThemeService{
		log:  log,
		bus:  bus,
		view: store.Open(master, ThemeSliceKey, initial),
	}
}

// GetTheme returns the active theme.
func (s *ThemeService) GetTheme() theme.Theme {
	return s.view.Get()
}

// SetTheme activates the built-in theme with the given name.
func (s *ThemeService) SetTheme(name string) error {
	t, ok := theme.Lookup(name)
	if !ok {
		s.log.Warn("Theme not found", logging.Str("name", name))
		return fmt.Errorf("set theme %q: %w", name, theme.ErrUnknown)
	}

	s.apply(t)
	return nil
}

// Cycle activates the next built-in theme and returns it.
func (s *ThemeService) Cycle() theme.Theme {
	next := theme.After(s.GetTheme().Name)
	s.apply(next)
	return next
}

// Subscribe registers fn to receive the theme after every change.
func (s *ThemeService) Subscribe(fn func(theme.Theme)) func() {
	return s.view.Subscribe(fn)
}

func (s *ThemeService) apply(t theme.Theme) {
	s.view.Set(t)
	s.log.Info("Theme changed", logging.Str("name", t.Name), logging.Str("primary_color", t.Primary))
	s.bus.PublishThemeChanged(eventbus.ThemeChangedPayload{Theme: t})
}
