package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tasks/internal/core/notify"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-8, 10)
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpText = renderHelp(m.styles.Theme, m.keys, m.width)
		}
		return m, nil

	case todosChangedMsg:
		m.items = msg.items
		m.clampCursor()
		return m, m.waitTodos()

	case themeChangedMsg:
		m.applyTheme(msg.theme)
		return m, m.waitTheme()

	case drainNotificationsMsg:
		for _, n := range m.notes.Drain() {
			m.toasts.Push(n)
		}
		return m, tea.Batch(m.notes.WaitForSignal(), m.startToastTick())

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) startToastTick() tea.Cmd {
	if m.toasts.Ticking() || !m.toasts.HasToasts() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

// pushToast shows a local notification without going through the bus.
func (m *Model) pushToast(level notify.Level, msg string) tea.Cmd {
	m.toasts.Push(notify.New(level, msg))
	return m.startToastTick()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.Close()
		return tea.Quit
	}

	switch {
	case m.confirm != nil:
		return m.handleConfirmKey(msg)
	case m.showHelp:
		if key.Matches(msg, m.keys.Cancel, m.keys.Help, m.keys.Quit) {
			m.showHelp = false
		}
		return nil
	case m.focus == focusInput:
		return m.handleInputKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel) {
		m.confirm = nil
		return nil
	}

	return m.updateConfirm(msg)
}

// updateConfirm forwards msg to the dialog and applies the answer once the
// form finishes.
func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	cmd := m.confirm.Update(msg)
	if !m.confirm.Done() {
		return cmd
	}

	confirmed := m.confirm.Confirmed()
	m.confirm = nil
	if confirmed {
		m.todos.ClearCompleted()
		m.refresh()
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		m.todos.AddTodo(text)
		m.input.Reset()
		m.refresh()
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
		return nil
	case key.Matches(msg, m.keys.Cancel, m.keys.Focus):
		m.input.Blur()
		m.focus = focusList
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.selected(); ok {
			m.todos.ToggleTodo(item.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Remove):
		if item, ok := m.selected(); ok {
			m.todos.RemoveTodo(item.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.clampCursor()

	case key.Matches(msg, m.keys.Add, m.keys.Focus):
		m.focus = focusInput
		return m.input.Focus()

	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(m.themes.Cycle())

	case key.Matches(msg, m.keys.ClearDone):
		return m.clearCompleted()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpText = renderHelp(m.styles.Theme, m.keys, m.width)

	case key.Matches(msg, m.keys.DismissNote):
		m.toasts.Dismiss()
	}

	return nil
}

func (m *Model) clearCompleted() tea.Cmd {
	completed, _ := m.counts()
	if completed == 0 {
		return m.pushToast(notify.LevelInfo, "nothing to clear")
	}

	if !m.opts.ConfirmClear {
		m.todos.ClearCompleted()
		m.refresh()
		return nil
	}

	m.confirm = newConfirmDialog(completed, m.width)
	return m.confirm.Init()
}
