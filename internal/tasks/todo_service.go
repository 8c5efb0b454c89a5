// Package tasks holds the application services and the composition root
// that wires them together.
package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/tasks/internal/core/eventbus"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/store"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/core/validate"
)

// Todos is the contract the presentation layer uses to read and change the
// task list.
type Todos interface {
	GetTodos() []todo.Item
	GetActiveTodos() []todo.Item
	GetCompletedTodos() []todo.Item
	AddTodo(text string)
	ToggleTodo(id string)
	RemoveTodo(id string)
	ClearCompleted() int
	Counts() (completed, total int)
	Subscribe(fn func([]todo.Item)) func()
}

var _ Todos = (*TodoService)(nil)

// TodoOption configures a TodoService.
type TodoOption func(*TodoService)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) TodoOption {
	return func(s *TodoService) {
		s.now = now
	}
}

// WithIDFunc overrides the identifier generator. It only takes effect when
// the service is the first to open the task collection.
func WithIDFunc(fn func() string) TodoOption {
	return func(s *TodoService) {
		s.collectionOpts = append(s.collectionOpts, store.WithIDFunc(fn))
	}
}

// TodoService owns the business rules for the task list. Invalid input and
// unknown ids are logged and ignored; they never mutate state.
type TodoService struct {
	log   logging.Logger
	bus   *eventbus.EventBus
	items *store.Collection[todo.Item]
	now   func() time.Time

	collectionOpts []store.CollectionOption
}

// NewTodoService creates a TodoService backed by the "todos" slice of
// master. bus may be nil.
func NewTodoService(log logging.Logger, master *store.Master, bus *eventbus.EventBus, opts ...TodoOption) *TodoService {
	s := &TodoService{
		log: log,
		bus: bus,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.items = store.OpenCollection(master, todo.SliceKey, s.collectionOpts...)
	return s
}

// GetTodos returns every task in creation order.
func (s *TodoService) GetTodos() []todo.Item {
	return s.items.Items()
}

// GetActiveTodos returns the tasks not yet completed.
func (s *TodoService) GetActiveTodos() []todo.Item {
	return s.items.Items(todo.IsActive)
}

// GetCompletedTodos returns the completed tasks.
func (s *TodoService) GetCompletedTodos() []todo.Item {
	return s.items.Items(todo.IsCompleted)
}

// Counts returns the number of completed tasks and the total.
func (s *TodoService) Counts() (completed, total int) {
	items := s.items.Items()
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(items)
}

// AddTodo creates a task from text. Text that is empty after trimming is
// rejected.
func (s *TodoService) AddTodo(text string) {
	if err := validate.TodoText(text); err != nil {
		s.log.Warn("Attempted to add empty todo", logging.Str("text", text))
		s.bus.PublishTodoRejected(eventbus.TodoRejectedPayload{Op: "add", Reason: err.Error()})
		return
	}

	item := s.items.AddItem(todo.Item{
		Text:      strings.TrimSpace(text),
		Completed: false,
		CreatedAt: s.now(),
	})

	s.log.Info("Todo added", logging.Str("id", item.ID), logging.Str("text", item.Text))
	s.bus.PublishTodoAdded(eventbus.TodoAddedPayload{Item: item})
}

// ToggleTodo flips the completion flag of the task with the given id.
func (s *TodoService) ToggleTodo(id string) {
	current, ok := s.items.Item(id)
	if !ok {
		s.log.Warn("Todo not found for toggle", logging.Str("id", id))
		s.bus.PublishTodoRejected(eventbus.TodoRejectedPayload{Op: "toggle", ID: id, Reason: "not found"})
		return
	}

	s.items.UpdateItem(id, todo.Item.Toggled)

	toggled := current.Toggled()
	s.log.Info("Todo toggled", logging.Str("id", id), logging.Bool("completed", toggled.Completed))
	s.bus.PublishTodoToggled(eventbus.TodoToggledPayload{Item: toggled})
}

// RemoveTodo deletes the task with the given id.
func (s *TodoService) RemoveTodo(id string) {
	current, ok := s.items.Item(id)
	if !ok {
		s.log.Warn("Todo not found for removal", logging.Str("id", id))
		s.bus.PublishTodoRejected(eventbus.TodoRejectedPayload{Op: "remove", ID: id, Reason: "not found"})
		return
	}

	s.items.RemoveItem(id)

	s.log.Info("Todo removed", logging.Str("id", id), logging.Str("text", current.Text))
	s.bus.PublishTodoRemoved(eventbus.TodoRemovedPayload{Item: current})
}

// ClearCompleted removes every completed task in a single update and
// returns how many were removed. Nothing is written when no task is
// completed.
func (s *TodoService) ClearCompleted() int {
	if len(s.GetCompletedTodos()) == 0 {
		return 0
	}

	n := s.items.RemoveWhere(todo.IsCompleted)

	s.log.Info("Completed todos cleared", logging.Int("count", n))
	s.bus.PublishTodosCleared(eventbus.TodosClearedPayload{Count: n})
	return n
}

// Match returns the tasks whose text matches the glob pattern.
func (s *TodoService) Match(pattern string) ([]todo.Item, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("match %q: %w", pattern, doublestar.ErrBadPattern)
	}

	return s.items.Items(func(item todo.Item) bool {
		ok, _ := doublestar.Match(pattern, item.Text)
		return ok
	}), nil
}

// Seed adds a task for every entry in texts.
func (s *TodoService) Seed(texts []string) {
	for _, text := range texts {
		s.AddTodo(text)
	}
}

// Subscribe registers fn to receive the full list after every change.
func (s *TodoService) Subscribe(fn func([]todo.Item)) func() {
	return s.items.Subscribe(fn)
}
