// Package theme defines the built-in color themes.
package theme

import (
	"errors"
	"sort"
)

// ErrUnknown is returned when a theme name is not built in.
var ErrUnknown = errors.New("unknown theme")

// DefaultName is the name of the default theme.
const DefaultName = "tokyo-night"

// Theme is a named semantic palette. Colors are hex strings.
type Theme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Foreground string `json:"foreground"`
	Muted      string `json:"muted"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

var themes = map[string]Theme{
	"tokyo-night": {
		Primary:    "#7aa2f7",
		Secondary:  "#7dcfff",
		Foreground: "#c0caf5",
		Muted:      "#565f89",
		Background: "#1a1b26",
		Surface:    "#3b4261",
		Success:    "#9ece6a",
		Warning:    "#e0af68",
		Error:      "#f7768e",
	},
	"gruvbox": {
		Primary:    "#83a598",
		Secondary:  "#8ec07c",
		Foreground: "#ebdbb2",
		Muted:      "#665c54",
		Background: "#282828",
		Surface:    "#3c3836",
		Success:    "#b8bb26",
		Warning:    "#fabd2f",
		Error:      "#fb4934",
	},
	"catppuccin": {
		Primary:    "#89b4fa", // Blue
		Secondary:  "#94e2d5", // Teal
		Foreground: "#cdd6f4", // Text
		Muted:      "#6c7086", // Overlay0
		Background: "#1e1e2e", // Base
		Surface:    "#313244", // Surface0
		Success:    "#a6e3a1", // Green
		Warning:    "#f9e2af", // Yellow
		Error:      "#f38ba8", // Red
	},
	"light": {
		Primary:    "#007bff",
		Secondary:  "#17a2b8",
		Foreground: "#333333",
		Muted:      "#888888",
		Background: "#ffffff",
		Surface:    "#f1f3f5",
		Success:    "#28a745",
		Warning:    "#d39e00",
		Error:      "#dc3545",
	},
}

// Names returns sorted names of all built-in themes.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	t.Name = name
	return t, true
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// After returns the theme that follows name in sorted order, wrapping
// around. Unknown names yield the first theme.
func After(name string) Theme {
	names := Names()
	next := names[0]
	for i, n := range names {
		if n == name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	t, _ := Lookup(next)
	return t
}
