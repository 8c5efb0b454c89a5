package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/eventbus/testbus"
	"github.com/colonyops/tasks/internal/core/logging/logtest"
	"github.com/colonyops/tasks/internal/core/store"
	"github.com/colonyops/tasks/internal/core/theme"
)

func TestThemeService_DefaultsToInitial(t *testing.T) {
	svc := NewThemeService(logtest.New(), store.NewMaster(), nil, theme.Default())
	assert.Equal(t, theme.DefaultName, svc.GetTheme().Name)
}

func TestThemeService_SetTheme(t *testing.T) {
	log := logtest.New()
	bus := testbus.New(t)
	svc := NewThemeService(log, store.NewMaster(), bus.EventBus, theme.Default())

	var seen []string
	svc.Subscribe(func(th theme.Theme) { seen = append(seen, th.Name) })

	require.NoError(t, svc.SetTheme("gruvbox"))

	assert.Equal(t, "gruvbox", svc.GetTheme().Name)
	assert.Equal(t, []string{"gruvbox"}, seen)

	entry, _ := log.Last()
	assert.Equal(t, "Theme changed", entry.Message)
	assert.Equal(t, "gruvbox", entry.Fields["name"])
	assert.Equal(t, svc.GetTheme().Primary, entry.Fields["primary_color"])

	bus.AssertPublished(t, eventbus.EventThemeChanged)
}

func TestThemeService_SetUnknownTheme(t *testing.T) {
	log := logtest.New()
	svc := NewThemeService(log, store.NewMaster(), nil, theme.Default())

	err := svc.SetTheme("neon")

	require.ErrorIs(t, err, theme.ErrUnknown)
	assert.Equal(t, theme.DefaultName, svc.GetTheme().Name)
	assert.Equal(t, 1, log.Count(logtest.LevelWarn))
}

func TestThemeService_CycleVisitsEveryTheme(t *testing.T) {
	svc := NewThemeService(logtest.New(), store.NewMaster(), nil, theme.Default())

	seen := map[string]bool{svc.GetTheme().Name: true}
	for range len(theme.Names()) - 1 {
		seen[svc.Cycle().Name] = true
	}

	assert.Len(t, seen, len(theme.Names()))
	assert.Equal(t, theme.DefaultName, svc.Cycle().Name)
}
