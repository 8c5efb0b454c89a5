package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/theme"
)

type keyBindingHelp struct {
	key  string
	desc string
}

func helpFor(bindings ...key.Binding) []keyBindingHelp {
	out := make([]keyBindingHelp, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, keyBindingHelp{key: h.Key, desc: h.Desc})
	}
	return out
}

// helpMarkdown renders the key reference as a markdown document.
func helpMarkdown(k keyMap) string {
	var sb strings.Builder
	sb.WriteString("# Tasks\n\n")
	sb.WriteString("Keep a single list of things to do. Nothing is saved when you quit.\n\n")

	sections := []struct {
		title    string
		bindings []keyBindingHelp
	}{
		{"Moving around", helpFor(k.Up, k.Down, k.Focus, k.Add, k.Cancel)},
		{"Changing tasks", helpFor(k.Submit, k.Toggle, k.Remove, k.ClearDone)},
		{"View", helpFor(k.Filter, k.Theme, k.DismissNote, k.Help, k.Quit)},
	}

	for _, section := range sections {
		fmt.Fprintf(&sb, "## %s\n\n| Key | Action |\n| --- | --- |\n", section.title)
		for _, b := range section.bindings {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", b.key, b.desc)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderHelp renders the key reference with glamour, falling back to the
// raw markdown when rendering fails.
func renderHelp(t theme.Theme, k keyMap, width int) string {
	md := helpMarkdown(k)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.Glamour(t)),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		logging.Component("tui").Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		logging.Component("tui").Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return md
	}

	return strings.TrimRight(out, "\n")
}
