// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication. Events are delivered asynchronously on the
// goroutine running Start.
package eventbus

import (
	"github.com/colonyops/tasks/internal/core/notify"
	"github.com/colonyops/tasks/internal/core/theme"
	"github.com/colonyops/tasks/internal/core/todo"
)

// Event names a kind of event published on the bus.
type Event string

// Keep list sorted A-Z
const (
	EventNotificationPublished Event = "notification.published"
	EventThemeChanged          Event = "theme.changed"
	EventTodoAdded             Event = "todo.added"
	EventTodoRejected          Event = "todo.rejected"
	EventTodoRemoved           Event = "todo.removed"
	EventTodoToggled           Event = "todo.toggled"
	EventTodosCleared          Event = "todos.cleared"
)

// TodoAddedPayload is emitted after a task is created.
type TodoAddedPayload struct {
	Item todo.Item
}

// TodoToggledPayload is emitted after a task's completion flag flips. Item
// carries the new state.
type TodoToggledPayload struct {
	Item todo.Item
}

// TodoRemovedPayload is emitted after a task is deleted.
type TodoRemovedPayload struct {
	Item todo.Item
}

// TodoRejectedPayload is emitted when an intent is ignored because of
// invalid input or an unknown task.
type TodoRejectedPayload struct {
	Op     string
	ID     string
	Reason string
}

// TodosClearedPayload is emitted after completed tasks are cleared.
type TodosClearedPayload struct {
	Count int
}

// ThemeChangedPayload is emitted after the active theme changes.
type ThemeChangedPayload struct {
	Theme theme.Theme
}

// NotificationPublishedPayload carries a user-facing notification.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}
