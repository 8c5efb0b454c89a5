// Package styles builds lipgloss styles for the CLI and TUI from a theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/tasks/internal/core/theme"
)

// Styles is the full set of styles derived from one theme.
type Styles struct {
	Theme theme.Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style

	Item          lipgloss.Style
	ItemCompleted lipgloss.Style
	ItemSelected  lipgloss.Style
	Check         lipgloss.Style
	Cursor        lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style

	Input lipgloss.Style
	Help  lipgloss.Style
	Modal lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New derives every style from t.
func New(t theme.Theme) Styles {
	fg := lipgloss.Color(t.Foreground)
	primary := lipgloss.Color(t.Primary)
	secondary := lipgloss.Color(t.Secondary)
	muted := lipgloss.Color(t.Muted)
	surface := lipgloss.Color(t.Surface)
	selection := lipgloss.Color(Blend(t.Surface, t.Primary, 0.25))

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(fg)

	return Styles{
		Theme: t,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(secondary),
		Text:     lipgloss.NewStyle().Foreground(fg),
		Muted:    lipgloss.NewStyle().Foreground(muted),

		Item:          lipgloss.NewStyle().Foreground(fg),
		ItemCompleted: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		ItemSelected:  lipgloss.NewStyle().Foreground(fg).Background(selection).Bold(true),
		Check:         lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Cursor:        lipgloss.NewStyle().Foreground(primary).Bold(true),

		FilterActive:   lipgloss.NewStyle().Foreground(fg).Background(surface).Padding(0, 1).Bold(true),
		FilterInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(surface).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(muted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		ToastInfo:    toast.BorderForeground(primary),
		ToastWarning: toast.BorderForeground(lipgloss.Color(t.Warning)),
		ToastError:   toast.BorderForeground(lipgloss.Color(t.Error)),
	}
}

// Blend mixes two hex colors in Lab space. t=0 yields a, t=1 yields b.
// Invalid input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
