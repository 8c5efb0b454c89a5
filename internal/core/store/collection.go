package store

import (
	"slices"

	"github.com/google/uuid"
)

// Record is implemented by values stored in a Collection. WithID returns a
// copy of the record carrying the given identifier.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
}

// CollectionOption configures a Collection at creation.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	newID func() string
}

// WithIDFunc overrides the identifier generator used by AddItem.
func WithIDFunc(fn func() string) CollectionOption {
	return func(o *collectionOptions) {
		o.newID = fn
	}
}

// Collection is a View over a list of identifiable records with item-level
// operations. The stored slice is replaced on every write, so slices handed
// out by Items or to subscribers are never modified afterwards.
type Collection[T Record[T]] struct {
	view  *View[[]T]
	newID func() string
}

func newCollection[T Record[T]](view *View[[]T], opts ...CollectionOption) *Collection[T] {
	o := collectionOptions{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{view: view, newID: o.newID}
}

// Name returns the slice key backing the collection.
func (c *Collection[T]) Name() string {
	return c.view.Name()
}

// Items returns a fresh copy of the records that satisfy every filter.
func (c *Collection[T]) Items(filters ...func(T) bool) []T {
	items := c.view.Get()
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, keep := range filters {
			if !keep(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.view.Get())
}

// AddItem assigns a fresh identifier to item, appends it and returns the
// stored record.
func (c *Collection[T]) AddItem(item T) T {
	created := item.WithID(c.newID())
	c.view.Update(func(items []T) []T {
		next := make([]T, 0, len(items)+1)
		next = append(next, items...)
		return append(next, created)
	})
	return created
}

// UpdateItem replaces the record with the given id by fn's result. It
// reports false, without notifying, when no such record exists.
func (c *Collection[T]) UpdateItem(id string, fn func(T) T) bool {
	return c.view.mutate(func(items []T) ([]T, bool) {
		idx := slices.IndexFunc(items, func(item T) bool { return item.GetID() == id })
		if idx < 0 {
			return items, false
		}
		next := slices.Clone(items)
		next[idx] = fn(items[idx])
		return next, true
	})
}

// RemoveItem drops the record with the given id. Subscribers are notified
// even when nothing matched; the return value reports whether a record was
// removed.
func (c *Collection[T]) RemoveItem(id string) bool {
	return c.RemoveWhere(func(item T) bool { return item.GetID() == id }) > 0
}

// RemoveWhere drops every record matching pred in a single write and
// returns how many were removed. Subscribers are always notified.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) int {
	removed := 0
	c.view.Update(func(items []T) []T {
		next := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			next = append(next, item)
		}
		return next
	})
	return removed
}

// FindItem returns the first record matching pred.
func (c *Collection[T]) FindItem(pred func(T) bool) (T, bool) {
	items := c.view.Get()
	if idx := slices.IndexFunc(items, pred); idx >= 0 {
		return items[idx], true
	}
	var zero T
	return zero, false
}

// Item returns the record with the given id.
func (c *Collection[T]) Item(id string) (T, bool) {
	return c.FindItem(func(item T) bool { return item.GetID() == id })
}

// SetItems replaces the whole collection.
func (c *Collection[T]) SetItems(items []T) {
	c.view.Set(slices.Clone(items))
}

// Subscribe registers fn to receive a copy of the full list after every
// write. See View.Subscribe for unsubscribe semantics.
func (c *Collection[T]) Subscribe(fn func([]T)) func() {
	return c.view.Subscribe(func(items []T) {
		fn(slices.Clone(items))
	})
}
