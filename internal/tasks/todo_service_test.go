package tasks

import (
	"fmt"
	"testing"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/eventbus/testbus"
	"github.com/colonyops/tasks/internal/core/logging/logtest"
	"github.com/colonyops/tasks/internal/core/store"
	"github.com/colonyops/tasks/internal/core/todo"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("todo-%d", n)
	}
}

func newTestTodoService(t *testing.T) (*TodoService, *logtest.Recorder, *testbus.Bus) {
	t.Helper()
	log := logtest.New()
	bus := testbus.New(t)
	svc := NewTodoService(log, store.NewMaster(), bus.EventBus,
		WithClock(func() time.Time { return fixedNow }),
		WithIDFunc(sequentialIDs()),
	)
	return svc, log, bus
}

func TestTodoService_StartsEmpty(t *testing.T) {
	svc, _, _ := newTestTodoService(t)

	assert.NotNil(t, svc.GetTodos())
	assert.Empty(t, svc.GetTodos())
	assert.Empty(t, svc.GetActiveTodos())
	assert.Empty(t, svc.GetCompletedTodos())
}

func TestTodoService_AddTodo(t *testing.T) {
	svc, log, bus := newTestTodoService(t)

	svc.AddTodo("  Buy milk  ")

	todos := svc.GetTodos()
	require.Len(t, todos, 1)
	assert.Equal(t, todo.Item{ID: "todo-1", Text: "Buy milk", CreatedAt: fixedNow}, todos[0])

	entry, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, logtest.LevelInfo, entry.Level)
	assert.Equal(t, "Todo added", entry.Message)
	assert.Equal(t, map[string]any{"id": "todo-1", "text": "Buy milk"}, entry.Fields)

	bus.AssertPublished(t, eventbus.EventTodoAdded)
}

func TestTodoService_AddTodoRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			svc, log, bus := newTestTodoService(t)

			calls := 0
			svc.Subscribe(func([]todo.Item) { calls++ })

			svc.AddTodo(text)

			assert.Empty(t, svc.GetTodos())
			assert.Zero(t, calls)
			assert.Equal(t, 1, log.Count(logtest.LevelWarn))

			entry, _ := log.Last()
			assert.Equal(t, "Attempted to add empty todo", entry.Message)
			assert.Equal(t, text, entry.Fields["text"])

			bus.AssertPublished(t, eventbus.EventTodoRejected)
		})
	}
}

func TestTodoService_ToggleIsInvolution(t *testing.T) {
	svc, log, bus := newTestTodoService(t)
	svc.AddTodo("Write report")
	id := svc.GetTodos()[0].ID

	svc.ToggleTodo(id)
	assert.True(t, svc.GetTodos()[0].Completed)

	entry, _ := log.Last()
	assert.Equal(t, "Todo toggled", entry.Message)
	assert.Equal(t, map[string]any{"id": id, "completed": true}, entry.Fields)

	svc.ToggleTodo(id)
	assert.False(t, svc.GetTodos()[0].Completed)
	assert.Equal(t, "Write report", svc.GetTodos()[0].Text)

	bus.AssertPublished(t, eventbus.EventTodoToggled)
}

func TestTodoService_UnknownIDLeavesListUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		op      func(*TodoService, string)
		message string
	}{
		{name: "toggle", op: (*TodoService).ToggleTodo, message: "Todo not found for toggle"},
		{name: "remove", op: (*TodoService).RemoveTodo, message: "Todo not found for removal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, log, _ := newTestTodoService(t)
			svc.AddTodo("Keep me")
			before := svc.GetTodos()
			log.Clear()

			tt.op(svc, "missing")

			assert.Equal(t, before, svc.GetTodos())
			assert.Equal(t, 1, log.Count(logtest.LevelWarn))
			assert.Len(t, log.Entries(), 1)

			entry, _ := log.Last()
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, "missing", entry.Fields["id"])
		})
	}
}

func TestTodoService_RemoveTodo(t *testing.T) {
	svc, log, bus := newTestTodoService(t)
	svc.AddTodo("A")
	svc.AddTodo("B")

	svc.RemoveTodo("todo-1")

	todos := svc.GetTodos()
	require.Len(t, todos, 1)
	assert.Equal(t, "B", todos[0].Text)

	entry, _ := log.Last()
	assert.Equal(t, "Todo removed", entry.Message)
	assert.Equal(t, map[string]any{"id": "todo-1", "text": "A"}, entry.Fields)

	bus.AssertPublished(t, eventbus.EventTodoRemoved)
}

func TestTodoService_ActiveAndCompleted(t *testing.T) {
	svc, _, _ := newTestTodoService(t)
	svc.AddTodo("A")
	svc.AddTodo("B")
	svc.ToggleTodo(svc.GetTodos()[1].ID)

	active := svc.GetActiveTodos()
	completed := svc.GetCompletedTodos()

	require.Len(t, active, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, "A", active[0].Text)
	assert.Equal(t, "B", completed[0].Text)

	done, total := svc.Counts()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}

func TestTodoService_SnapshotsAreDetached(t *testing.T) {
	svc, _, _ := newTestTodoService(t)
	svc.AddTodo("A")

	todos := svc.GetTodos()
	todos[0].Text = "changed"

	assert.Equal(t, "A", svc.GetTodos()[0].Text)
}

func TestTodoService_Subscribe(t *testing.T) {
	svc, _, _ := newTestTodoService(t)

	var got [][]todo.Item
	unsubscribe := svc.Subscribe(func(items []todo.Item) { got = append(got, items) })

	svc.AddTodo("A")
	svc.ToggleTodo("todo-1")
	require.Len(t, got, 2)
	assert.Len(t, got[0], 1)
	assert.True(t, got[1][0].Completed)

	unsubscribe()
	svc.AddTodo("B")
	assert.Len(t, got, 2)
}

func TestTodoService_UnsubscribedBeforeMutationIsNeverCalled(t *testing.T) {
	svc, _, _ := newTestTodoService(t)

	called := false
	unsubscribe := svc.Subscribe(func([]todo.Item) { called = true })
	unsubscribe()

	svc.AddTodo("A")
	svc.ToggleTodo("todo-1")
	svc.RemoveTodo("todo-1")

	assert.False(t, called)
}

func TestTodoService_ClearCompleted(t *testing.T) {
	svc, log, bus := newTestTodoService(t)
	svc.AddTodo("A")
	svc.AddTodo("B")
	svc.AddTodo("C")
	svc.ToggleTodo("todo-1")
	svc.ToggleTodo("todo-3")

	calls := 0
	svc.Subscribe(func([]todo.Item) { calls++ })

	n := svc.ClearCompleted()

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, calls)
	require.Len(t, svc.GetTodos(), 1)
	assert.Equal(t, "B", svc.GetTodos()[0].Text)

	entry, _ := log.Last()
	assert.Equal(t, "Completed todos cleared", entry.Message)
	assert.Equal(t, 2, entry.Fields["count"])

	bus.AssertPublished(t, eventbus.EventTodosCleared)
}

func TestTodoService_ClearCompletedNoop(t *testing.T) {
	svc, log, _ := newTestTodoService(t)
	svc.AddTodo("A")
	log.Clear()

	calls := 0
	svc.Subscribe(func([]todo.Item) { calls++ })

	assert.Zero(t, svc.ClearCompleted())
	assert.Zero(t, calls)
	assert.Empty(t, log.Entries())
}

func TestTodoService_Match(t *testing.T) {
	svc, _, _ := newTestTodoService(t)
	svc.Seed([]string{"buy milk", "buy bread", "call mom"})

	got, err := svc.Match("buy *")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "buy milk", got[0].Text)
	assert.Equal(t, "buy bread", got[1].Text)

	got, err = svc.Match("*{mom,dad}")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = svc.Match("[")
	require.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestTodoService_SeedSkipsBlank(t *testing.T) {
	svc, log, _ := newTestTodoService(t)

	svc.Seed([]string{"one", " ", "two"})

	assert.Len(t, svc.GetTodos(), 2)
	assert.Equal(t, 1, log.Count(logtest.LevelWarn))
}

func TestTodoService_SharesStateThroughMaster(t *testing.T) {
	master := store.NewMaster()
	a := NewTodoService(logtest.New(), master, nil)
	b := NewTodoService(logtest.New(), master, nil)

	a.AddTodo("shared")

	require.Len(t, b.GetTodos(), 1)
	assert.Equal(t, "shared", b.GetTodos()[0].Text)
}

func TestTodoService_PublishHooksSeeEveryIntent(t *testing.T) {
	bus := eventbus.New(16)
	svc := NewTodoService(logtest.New(), store.NewMaster(), bus, WithIDFunc(sequentialIDs()))

	var queued []eventbus.Event
	var ids []string
	bus.OnPublish(func(e eventbus.Event, payload any) {
		queued = append(queued, e)
		if p, ok := payload.(eventbus.TodoToggledPayload); ok {
			ids = append(ids, p.Item.ID)
		}
	})

	svc.AddTodo("write report")
	svc.AddTodo(" ")
	svc.ToggleTodo("todo-1")
	svc.ToggleTodo("missing")
	svc.ClearCompleted()

	assert.Equal(t, []eventbus.Event{
		eventbus.EventTodoAdded,
		eventbus.EventTodoRejected,
		eventbus.EventTodoToggled,
		eventbus.EventTodoRejected,
		eventbus.EventTodosCleared,
	}, queued)
	assert.Equal(t, []string{"todo-1"}, ids)
}
