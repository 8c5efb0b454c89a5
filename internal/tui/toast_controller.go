package tui

import (
	"time"

	"github.com/colonyops/tasks/internal/core/notify"
)

const (
	defaultToastTTL   = 4 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of the notification stack shown
// under the task list.
type ToastController struct {
	ttl     time.Duration
	limit   int
	toasts  []toast
	ticking bool
	now     func() time.Time
}

// NewToastController returns a controller using the default TTL and
// stack size.
func NewToastController() *ToastController {
	return &ToastController{ttl: defaultToastTTL, limit: defaultMaxToasts, now: time.Now}
}

// Push adds a notification to the stack, evicting the oldest when full.
// A stamped notification keeps only the part of its TTL not already spent
// waiting in the buffer, and is dropped when none is left.
func (c *ToastController) Push(n notify.Notification) {
	remaining := c.ttl
	if !n.CreatedAt.IsZero() {
		now := c.now()
		if n.Expired(now, c.ttl) {
			return
		}
		remaining -= now.Sub(n.CreatedAt)
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: remaining})
	if len(c.toasts) > c.limit {
		c.toasts = c.toasts[len(c.toasts)-c.limit:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the active toasts, oldest first.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking reports whether a tick command is in flight.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking records whether a tick command is in flight.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
