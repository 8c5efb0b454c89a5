// Package store provides small reactive state containers: a typed
// single-value View, a Collection of identifiable records built on top of
// it, and a Master registry that hands out one view per named slice.
//
// Notifications are synchronous. Subscribers run in registration order,
// after the new value is visible to Get. A mutation made while a view is
// notifying, including one made by a subscriber, is queued and delivered by
// the goroutine already notifying once the current pass ends, so every
// subscriber sees values in mutation order and last sees the current one.
package store

import (
	"sync"
	"sync/atomic"
)

// Key names a state slice and fixes its value type.
type Key[T any] string

type pass[T any] struct {
	subs  []*subscriber[T]
	value T
}

type subscriber[T any] struct {
	fn      func(T)
	removed atomic.Bool
}

// View is an observable cell holding one value of type T. The zero View is
// not usable; obtain views from a Master.
type View[T any] struct {
	name string
	def  T

	mu          sync.Mutex
	val         T
	set         bool
	subs        []*subscriber[T]
	pending     []pass[T]
	dispatching bool
}

func newView[T any](name string, def T) *View[T] {
	return &View[T]{name: name, def: def}
}

// Name returns the slice key the view was opened with.
func (v *View[T]) Name() string {
	return v.name
}

// Get returns the current value, or the default when the slice has never
// been set or was cleared.
func (v *View[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current()
}

// Set replaces the value and notifies subscribers with it.
func (v *View[T]) Set(value T) {
	v.mutate(func(T) (T, bool) { return value, true })
}

// Update applies fn to the current value (the default when unset) and
// stores the result. fn runs while the view is locked and must not call
// back into the view.
func (v *View[T]) Update(fn func(T) T) {
	v.mutate(func(cur T) (T, bool) { return fn(cur), true })
}

// Subscribe registers fn to receive every new value. The returned function
// removes the subscription; it is safe to call more than once and from
// inside a notification. A subscriber removed mid-notification is not
// called for the remainder of that pass.
func (v *View[T]) Subscribe(fn func(T)) func() {
	sub := &subscriber[T]{fn: fn}

	v.mu.Lock()
	v.subs = append(v.subs, sub)
	v.mu.Unlock()

	return func() {
		if sub.removed.Swap(true) {
			return
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		for i, s := range v.subs {
			if s == sub {
				v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
				break
			}
		}
	}
}

// mutate applies fn under the lock. When fn reports a change the new value
// is stored and subscribers are notified after the lock is released.
func (v *View[T]) mutate(fn func(cur T) (T, bool)) bool {
	v.mu.Lock()
	next, changed := fn(v.current())
	if !changed {
		v.mu.Unlock()
		return false
	}
	v.val = next
	v.set = true
	v.enqueue(next)
	v.mu.Unlock()

	v.dispatch()
	return true
}

func (v *View[T]) reset() {
	v.mu.Lock()
	var zero T
	v.val = zero
	v.set = false
	v.enqueue(v.def)
	v.mu.Unlock()

	v.dispatch()
}

// enqueue records a notification pass. Callers hold v.mu.
func (v *View[T]) enqueue(value T) {
	v.pending = append(v.pending, pass[T]{subs: v.snapshot(), value: value})
}

// dispatch drains queued passes unless another call is already draining.
func (v *View[T]) dispatch() {
	v.mu.Lock()
	if v.dispatching {
		v.mu.Unlock()
		return
	}
	v.dispatching = true

	for len(v.pending) > 0 {
		next := v.pending[0]
		v.pending = v.pending[1:]
		v.mu.Unlock()

		v.run(next)

		v.mu.Lock()
	}

	v.dispatching = false
	v.pending = nil
	v.mu.Unlock()
}

// run notifies one pass. A panicking subscriber drops the rest of the
// queue so later mutations can dispatch again.
func (v *View[T]) run(p pass[T]) {
	done := false
	defer func() {
		if !done {
			v.mu.Lock()
			v.dispatching = false
			v.pending = nil
			v.mu.Unlock()
		}
	}()

	notify(p.subs, p.value)
	done = true
}

func (v *View[T]) value() any {
	return v.Get()
}

func (v *View[T]) current() T {
	if !v.set {
		return v.def
	}
	return v.val
}

func (v *View[T]) snapshot() []*subscriber[T] {
	out := make([]*subscriber[T], len(v.subs))
	copy(out, v.subs)
	return out
}

func notify[T any](subs []*subscriber[T], value T) {
	for _, s := range subs {
		if s.removed.Load() {
			continue
		}
		s.fn(value)
	}
}
