// Package todo defines the task record tracked by the application.
package todo

import (
	"time"

	"github.com/colonyops/tasks/internal/core/store"
)

// SliceKey is the state slice holding the task list.
var SliceKey = store.Key[[]Item]("todos")

// Item is a single task.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID implements store.Record.
func (i Item) GetID() string {
	return i.ID
}

// WithID implements store.Record.
func (i Item) WithID(id string) Item {
	i.ID = id
	return i
}

// Toggled returns a copy of the item with its completion flag flipped.
func (i Item) Toggled() Item {
	i.Completed = !i.Completed
	return i
}

// IsActive reports whether the item is not completed.
func IsActive(i Item) bool {
	return !i.Completed
}

// IsCompleted reports whether the item is completed.
func IsCompleted(i Item) bool {
	return i.Completed
}
