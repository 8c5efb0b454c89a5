// Package notify defines user-facing notifications shown by the TUI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// New returns a notification stamped with the current time.
func New(level Level, message string) Notification {
	return Notification{Level: level, Message: message, CreatedAt: time.Now()}
}

// Expired reports whether the notification is older than ttl at now.
func (n Notification) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.CreatedAt) >= ttl
}
