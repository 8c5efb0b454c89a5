// Package taskstest provides an in-memory service registry for tests of
// code that consumes the tasks services.
package taskstest

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/tasks"
)

var _ tasks.Todos = (*FakeTodos)(nil)

type fakeSub struct {
	fn      func([]todo.Item)
	removed atomic.Bool
}

// FakeTodos is an in-memory tasks.Todos with its own subscriber list.
// Ids are sequential ("1", "2", ...) so tests can refer to them directly.
type FakeTodos struct {
	log logging.Logger

	mu     sync.Mutex
	items  []todo.Item
	subs   []*fakeSub
	nextID int
}

// NewFakeTodos returns an empty FakeTodos logging to log.
func NewFakeTodos(log logging.Logger) *FakeTodos {
	return &FakeTodos{log: log}
}

func (f *FakeTodos) GetTodos() []todo.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

func (f *FakeTodos) GetActiveTodos() []todo.Item {
	return todo.FilterActive.Apply(f.GetTodos())
}

func (f *FakeTodos) GetCompletedTodos() []todo.Item {
	return todo.FilterCompleted.Apply(f.GetTodos())
}

func (f *FakeTodos) Counts() (completed, total int) {
	items := f.GetTodos()
	return len(todo.FilterCompleted.Apply(items)), len(items)
}

func (f *FakeTodos) AddTodo(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		f.log.Warn("Attempted to add empty todo", logging.Str("text", text))
		return
	}
	text = trimmed

	f.mu.Lock()
	f.nextID++
	item := todo.Item{
		ID:        strconv.Itoa(f.nextID),
		Text:      text,
		CreatedAt: time.Now(),
	}
	f.items = append(f.items, item)
	f.mu.Unlock()

	f.log.Info("Todo added", logging.Str("id", item.ID), logging.Str("text", item.Text))
	f.notify()
}

func (f *FakeTodos) ToggleTodo(id string) {
	f.mu.Lock()
	i := f.index(id)
	if i < 0 {
		f.mu.Unlock()
		return
	}
	items := slices.Clone(f.items)
	items[i] = items[i].Toggled()
	f.items = items
	f.mu.Unlock()

	f.notify()
}

func (f *FakeTodos) RemoveTodo(id string) {
	f.mu.Lock()
	i := f.index(id)
	if i < 0 {
		f.mu.Unlock()
		f.log.Warn("Todo not found for removal", logging.Str("id", id))
		return
	}
	removed := f.items[i]
	f.items = slices.Delete(slices.Clone(f.items), i, i+1)
	f.mu.Unlock()

	f.log.Info("Todo removed", logging.Str("id", id), logging.Str("text", removed.Text))
	f.notify()
}

func (f *FakeTodos) ClearCompleted() int {
	f.mu.Lock()
	kept := todo.FilterActive.Apply(f.items)
	n := len(f.items) - len(kept)
	if n > 0 {
		f.items = kept
	}
	f.mu.Unlock()

	if n > 0 {
		f.notify()
	}
	return n
}

func (f *FakeTodos) Subscribe(fn func([]todo.Item)) func() {
	sub := &fakeSub{fn: fn}

	f.mu.Lock()
	f.subs = append(f.subs, sub)
	f.mu.Unlock()

	return func() {
		sub.removed.Store(true)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.subs = slices.DeleteFunc(f.subs, func(s *fakeSub) bool { return s == sub })
	}
}

// SetTodos replaces the list and notifies subscribers.
func (f *FakeTodos) SetTodos(items []todo.Item) {
	f.mu.Lock()
	f.items = slices.Clone(items)
	f.mu.Unlock()
	f.notify()
}

// Reset empties the list and notifies subscribers.
func (f *FakeTodos) Reset() {
	f.SetTodos(nil)
}

// Subscribers returns the number of live subscriptions.
func (f *FakeTodos) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *FakeTodos) index(id string) int {
	return slices.IndexFunc(f.items, func(item todo.Item) bool { return item.ID == id })
}

func (f *FakeTodos) notify() {
	f.mu.Lock()
	subs := slices.Clone(f.subs)
	items := slices.Clone(f.items)
	f.mu.Unlock()

	for _, sub := range subs {
		if sub.removed.Load() {
			continue
		}
		sub.fn(slices.Clone(items))
	}
}
