package store

import (
	"fmt"
	"slices"
	"sync"
)

type slot interface {
	reset()
	value() any
}

// Master owns every named state slice of the application. Views are created
// lazily on first lookup and cached for the Master's lifetime.
type Master struct {
	mu          sync.Mutex
	slots       map[string]slot
	collections map[string]any
	order       []string
}

// NewMaster returns an empty Master.
func NewMaster() *Master {
	return &Master{
		slots:       make(map[string]slot),
		collections: make(map[string]any),
	}
}

// Open returns the view for key, creating it with def on first use. Later
// calls return the same view and ignore def. Opening an existing key with a
// different value type panics.
func Open[T any](m *Master, key Key[T], def T) *View[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return open(m, key, def)
}

func open[T any](m *Master, key Key[T], def T) *View[T] {
	name := string(key)
	if s, ok := m.slots[name]; ok {
		v, ok := s.(*View[T])
		if !ok {
			panic(fmt.Sprintf("store: slice %q is %T, requested as %T", name, s, (*View[T])(nil)))
		}
		return v
	}

	v := newView(name, def)
	m.slots[name] = v
	m.order = append(m.order, name)
	return v
}

// OpenCollection returns the collection stored under key, creating it on
// first use. Options only apply to the call that creates it.
func OpenCollection[T Record[T]](m *Master, key Key[[]T], opts ...CollectionOption) *Collection[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := string(key)
	if c, ok := m.collections[name]; ok {
		col, ok := c.(*Collection[T])
		if !ok {
			panic(fmt.Sprintf("store: collection %q is %T, requested as %T", name, c, (*Collection[T])(nil)))
		}
		return col
	}

	col := newCollection(open(m, key, nil), opts...)
	m.collections[name] = col
	return col
}

// Clear reverts every known slice to its default and notifies its
// subscribers. Views handed out earlier remain valid.
func (m *Master) Clear() {
	m.mu.Lock()
	slots := make([]slot, 0, len(m.order))
	for _, name := range m.order {
		slots = append(slots, m.slots[name])
	}
	m.mu.Unlock()

	for _, s := range slots {
		s.reset()
	}
}

// Keys returns the slice names in creation order.
func (m *Master) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.order)
}

// Snapshot returns the current value of every slice keyed by name.
func (m *Master) Snapshot() map[string]any {
	m.mu.Lock()
	slots := make(map[string]slot, len(m.slots))
	for k, s := range m.slots {
		slots[k] = s
	}
	m.mu.Unlock()

	out := make(map[string]any, len(slots))
	for k, s := range slots {
		out[k] = s.value()
	}
	return out
}
