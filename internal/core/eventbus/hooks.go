package eventbus

import "sync"

// hookList is a copy-on-read list of callbacks of one kind.
type hookList[F any] struct {
	mu  sync.RWMutex
	fns []F
}

func (l *hookList[F]) add(fn F) {
	l.mu.Lock()
	l.fns = append(l.fns, fn)
	l.mu.Unlock()
}

func (l *hookList[F]) each(call func(F)) {
	l.mu.RLock()
	fns := append([]F(nil), l.fns...)
	l.mu.RUnlock()

	for _, fn := range fns {
		call(fn)
	}
}

type hooks struct {
	onPublish hookList[func(Event, any)]
	onDrop    hookList[func(Event, any)]
	onPanic   hookList[func(Event, any, any)]
}

// OnPublish registers fn to run after an event is queued.
func (bus *EventBus) OnPublish(fn func(Event, any)) {
	bus.hooks.onPublish.add(fn)
}

// OnDrop registers fn to run when a full queue rejects an event.
func (bus *EventBus) OnDrop(fn func(Event, any)) {
	bus.hooks.onDrop.add(fn)
}

// OnPanic registers fn to run with the recovered value when a subscriber
// panics.
func (bus *EventBus) OnPanic(fn func(Event, any, any)) {
	bus.hooks.onPanic.add(fn)
}

// send queues an event without blocking. A full queue drops it.
func (bus *EventBus) send(event Event, payload any) {
	if bus == nil {
		return
	}

	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		bus.hooks.onPublish.each(func(fn func(Event, any)) { fn(event, payload) })
	default:
		bus.hooks.onDrop.each(func(fn func(Event, any)) { fn(event, payload) })
	}
}

// runOnPanic reports a subscriber panic. A hook that panics itself is
// ignored.
func (bus *EventBus) runOnPanic(event Event, payload any, recovered any) {
	bus.hooks.onPanic.each(func(fn func(Event, any, any)) {
		defer func() { _ = recover() }()
		fn(event, payload, recovered)
	})
}
