package eventbus

import (
	"context"
	"sync"
)

type envelope struct {
	event   Event
	payload any
}

// EventBus queues published events and dispatches them to subscribers in
// registration order. A nil *EventBus accepts publishes and drops them.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu       sync.RWMutex
	handlers map[Event][]func(any)
}

// New creates a bus with the given queue size.
func New(buffer int) *EventBus {
	return &EventBus{
		ch:       make(chan envelope, buffer),
		handlers: make(map[Event][]func(any)),
	}
}

// Start dispatches queued events until ctx is cancelled.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.handlers[event] = append(bus.handlers[event], fn)
	bus.mu.Unlock()
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	handlers := make([]func(any), len(bus.handlers[env.event]))
	copy(handlers, bus.handlers[env.event])
	bus.mu.RUnlock()

	for _, fn := range handlers {
		bus.safeCall(env, fn)
	}
}

func (bus *EventBus) safeCall(env envelope, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(env.event, env.payload, r)
		}
	}()
	fn(env.payload)
}

func subscribeTyped[P any](bus *EventBus, event Event, fn func(P)) {
	bus.subscribe(event, func(payload any) {
		if p, ok := payload.(P); ok {
			fn(p)
		}
	})
}

func (bus *EventBus) PublishTodoAdded(p TodoAddedPayload) { bus.send(EventTodoAdded, p) }

func (bus *EventBus) SubscribeTodoAdded(fn func(TodoAddedPayload)) {
	subscribeTyped(bus, EventTodoAdded, fn)
}

func (bus *EventBus) PublishTodoToggled(p TodoToggledPayload) { bus.send(EventTodoToggled, p) }

func (bus *EventBus) SubscribeTodoToggled(fn func(TodoToggledPayload)) {
	subscribeTyped(bus, EventTodoToggled, fn)
}

func (bus *EventBus) PublishTodoRemoved(p TodoRemovedPayload) { bus.send(EventTodoRemoved, p) }

func (bus *EventBus) SubscribeTodoRemoved(fn func(TodoRemovedPayload)) {
	subscribeTyped(bus, EventTodoRemoved, fn)
}

func (bus *EventBus) PublishTodoRejected(p TodoRejectedPayload) { bus.send(EventTodoRejected, p) }

func (bus *EventBus) SubscribeTodoRejected(fn func(TodoRejectedPayload)) {
	subscribeTyped(bus, EventTodoRejected, fn)
}

func (bus *EventBus) PublishTodosCleared(p TodosClearedPayload) { bus.send(EventTodosCleared, p) }

func (bus *EventBus) SubscribeTodosCleared(fn func(TodosClearedPayload)) {
	subscribeTyped(bus, EventTodosCleared, fn)
}

func (bus *EventBus) PublishThemeChanged(p ThemeChangedPayload) { bus.send(EventThemeChanged, p) }

func (bus *EventBus) SubscribeThemeChanged(fn func(ThemeChangedPayload)) {
	subscribeTyped(bus, EventThemeChanged, fn)
}

func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	subscribeTyped(bus, EventNotificationPublished, fn)
}
