package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasks/internal/core/notify"
	"github.com/colonyops/tasks/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// renderToasts renders the stack oldest first, right aligned to width.
func renderToasts(s styles.Styles, c *ToastController, width int) string {
	toasts := c.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(s, t))
	}

	stack := strings.Join(rendered, "\n")
	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}

func renderToast(s styles.Styles, t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		style = s.ToastError
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		style = s.ToastWarning
	default:
		icon = styles.IconNotifyInfo
		style = s.ToastInfo
	}

	return style.Width(toastWidth).Render(icon + " " + t.notification.Message)
}
