package eventbus

import (
	"fmt"

	"github.com/rs/zerolog"
)

// RegisterDebugLogger logs queued events at debug level with the task or
// theme they concern. Dropped events are warnings and subscriber panics are
// errors.
func RegisterDebugLogger(bus *EventBus, logger zerolog.Logger) {
	bus.OnPublish(func(event Event, payload any) {
		describe(logger.Debug().Str("event", string(event)), payload).Msg("event queued")
	})

	bus.OnDrop(func(event Event, payload any) {
		describe(logger.Warn().Str("event", string(event)), payload).Msg("event dropped: queue full")
	})

	bus.OnPanic(func(event Event, _ any, recovered any) {
		logger.Error().
			Str("event", string(event)).
			Str("panic", fmt.Sprint(recovered)).
			Msg("subscriber panicked")
	})
}

func describe(e *zerolog.Event, payload any) *zerolog.Event {
	switch p := payload.(type) {
	case TodoAddedPayload:
		return e.Str("id", p.Item.ID)
	case TodoToggledPayload:
		return e.Str("id", p.Item.ID).Bool("completed", p.Item.Completed)
	case TodoRemovedPayload:
		return e.Str("id", p.Item.ID)
	case TodoRejectedPayload:
		return e.Str("op", p.Op).Str("reason", p.Reason)
	case TodosClearedPayload:
		return e.Int("count", p.Count)
	case ThemeChangedPayload:
		return e.Str("theme", p.Theme.Name)
	case NotificationPublishedPayload:
		return e.Str("level", string(p.Level))
	}
	return e
}
