package eventbus_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/eventbus/testbus"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_DeliversInOrder(t *testing.T) {
	bus := eventbus.New(8)

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	bus.SubscribeTodoAdded(func(p eventbus.TodoAddedPayload) {
		mu.Lock()
		got = append(got, "first:"+p.Item.Text)
		mu.Unlock()
	})
	bus.SubscribeTodoAdded(func(p eventbus.TodoAddedPayload) {
		mu.Lock()
		got = append(got, "second:"+p.Item.Text)
		mu.Unlock()
		if p.Item.Text == "b" {
			close(done)
		}
	})

	bus.PublishTodoAdded(eventbus.TodoAddedPayload{Item: todo.Item{Text: "a"}})
	bus.PublishTodoAdded(eventbus.TodoAddedPayload{Item: todo.Item{Text: "b"}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Start(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events were not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, got)
}

func TestEventBus_DropWhenFull(t *testing.T) {
	bus := eventbus.New(1)

	var dropped []eventbus.Event
	bus.OnDrop(func(e eventbus.Event, _ any) { dropped = append(dropped, e) })

	// Not started, so the second publish overflows the queue.
	bus.PublishTodosCleared(eventbus.TodosClearedPayload{Count: 1})
	bus.PublishTodosCleared(eventbus.TodosClearedPayload{Count: 2})

	assert.Equal(t, []eventbus.Event{eventbus.EventTodosCleared}, dropped)
}

func TestEventBus_PanicRecovered(t *testing.T) {
	tb := testbus.New(t)

	panicked := make(chan any, 1)
	tb.OnPanic(func(_ eventbus.Event, _ any, recovered any) { panicked <- recovered })
	tb.SubscribeTodoRemoved(func(eventbus.TodoRemovedPayload) { panic("boom") })

	tb.PublishTodoRemoved(eventbus.TodoRemovedPayload{Item: todo.Item{ID: "1"}})

	select {
	case r := <-panicked:
		assert.Equal(t, "boom", r)
	case <-time.After(time.Second):
		t.Fatal("panic hook not called")
	}

	// the recording subscriber registered before the panicking one still ran
	tb.AssertPublished(t, eventbus.EventTodoRemoved)
}

func TestEventBus_NilIsNoop(t *testing.T) {
	var bus *eventbus.EventBus
	assert.NotPanics(t, func() {
		bus.PublishTodoAdded(eventbus.TodoAddedPayload{})
	})
}

func TestRegisterDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	tb := testbus.New(t)

	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.New(&syncWriter{w: &buf}).Level(zerolog.DebugLevel))

	tb.PublishTodoAdded(eventbus.TodoAddedPayload{Item: todo.Item{ID: "1", Text: "a"}})
	tb.PublishThemeChanged(eventbus.ThemeChangedPayload{})

	tb.AssertPublished(t, eventbus.EventThemeChanged)
	require.Contains(t, buf.String(), `"event":"todo.added"`)
	assert.Contains(t, buf.String(), `"id":"1"`)
}

func TestRegisterDebugLogger_Dropped(t *testing.T) {
	var buf bytes.Buffer
	bus := eventbus.New(1)
	eventbus.RegisterDebugLogger(bus, zerolog.New(&buf).Level(zerolog.DebugLevel))

	bus.PublishTodosCleared(eventbus.TodosClearedPayload{Count: 1})
	bus.PublishTodosCleared(eventbus.TodosClearedPayload{Count: 2})

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"count":2`)
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
