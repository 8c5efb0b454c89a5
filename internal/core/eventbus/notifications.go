package eventbus

import (
	"fmt"

	"github.com/colonyops/tasks/internal/core/notify"
)

// NotificationRouter maps domain events to user-facing notifications.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-notification mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeTodoAdded(func(p TodoAddedPayload) {
		r.notifyf(notify.LevelInfo, "added %q", p.Item.Text)
	})

	r.bus.SubscribeTodoToggled(func(p TodoToggledPayload) {
		if p.Item.Completed {
			r.notifyf(notify.LevelInfo, "completed %q", p.Item.Text)
			return
		}
		r.notifyf(notify.LevelInfo, "reopened %q", p.Item.Text)
	})

	r.bus.SubscribeTodoRemoved(func(p TodoRemovedPayload) {
		r.notifyf(notify.LevelInfo, "removed %q", p.Item.Text)
	})

	r.bus.SubscribeTodoRejected(func(p TodoRejectedPayload) {
		r.notifyf(notify.LevelWarning, "%s: %s", p.Op, p.Reason)
	})

	r.bus.SubscribeTodosCleared(func(p TodosClearedPayload) {
		r.notifyf(notify.LevelInfo, "cleared %d completed", p.Count)
	})

	r.bus.SubscribeThemeChanged(func(p ThemeChangedPayload) {
		r.notifyf(notify.LevelInfo, "theme %s", p.Theme.Name)
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
