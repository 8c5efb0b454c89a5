package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// confirmDialog wraps an embedded huh form asking a single yes/no question.
type confirmDialog struct {
	form  *huh.Form
	value *bool
}

func newConfirmDialog(completed int, width int) *confirmDialog {
	value := new(bool)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear completed tasks?").
				Description(fmt.Sprintf("%d completed %s will be removed.", completed, plural(completed, "task", "tasks"))).
				Affirmative("Clear").
				Negative("Keep").
				Value(value),
		),
	).
		WithShowHelp(false).
		WithWidth(max(min(width-4, 50), 30))

	return &confirmDialog{form: form, value: value}
}

func (d *confirmDialog) Init() tea.Cmd {
	return d.form.Init()
}

func (d *confirmDialog) Update(msg tea.Msg) tea.Cmd {
	model, cmd := d.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		d.form = f
	}
	return cmd
}

// Done reports whether the user answered or aborted.
func (d *confirmDialog) Done() bool {
	return d.form.State == huh.StateCompleted || d.form.State == huh.StateAborted
}

// Confirmed reports whether the user accepted.
func (d *confirmDialog) Confirmed() bool {
	return d.form.State == huh.StateCompleted && *d.value
}

func (d *confirmDialog) View() string {
	return d.form.View()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
