// Package tui implements the Bubble Tea view of the task list.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/theme"
	"github.com/colonyops/tasks/internal/core/todo"
	"github.com/colonyops/tasks/internal/tasks"
)

const inputPlaceholder = "What needs to be done?"

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type (
	todosChangedMsg struct{ items []todo.Item }
	themeChangedMsg struct{ theme theme.Theme }
)

// Options configures the initial view state.
type Options struct {
	Filter       todo.Filter
	ConfirmClear bool
}

// Model is the root Bubble Tea model. It reads and changes state only
// through the Todos and Themes services.
type Model struct {
	todos  tasks.Todos
	themes tasks.Themes
	opts   Options

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles styles.Styles

	items  []todo.Item
	filter todo.Filter
	cursor int
	focus  focusArea

	todosBox    *mailbox[[]todo.Item]
	themeBox    *mailbox[theme.Theme]
	unsubscribe []func()

	notes  *NotificationBuffer
	toasts *ToastController

	confirm  *confirmDialog
	showHelp bool
	helpText string

	width  int
	height int
}

// New creates the model and subscribes it to both services. notes may be
// nil when no event bus is wired. Call Close to release the subscriptions.
func New(todos tasks.Todos, themes tasks.Themes, notes *NotificationBuffer, opts Options) *Model {
	if notes == nil {
		notes = NewNotificationBuffer()
	}
	if opts.Filter == "" {
		opts.Filter = todo.FilterAll
	}

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "+ "
	input.CharLimit = 256
	input.Focus()

	m := &Model{
		todos:    todos,
		themes:   themes,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		items:    todos.GetTodos(),
		filter:   opts.Filter,
		focus:    focusInput,
		todosBox: newMailbox[[]todo.Item](),
		themeBox: newMailbox[theme.Theme](),
		notes:    notes,
		toasts:   NewToastController(),
	}
	m.applyTheme(themes.GetTheme())

	m.unsubscribe = append(m.unsubscribe,
		todos.Subscribe(m.todosBox.put),
		themes.Subscribe(m.themeBox.put),
	)

	return m
}

// Close releases the service subscriptions. It is safe to call twice.
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitTodos(),
		m.waitTheme(),
		m.notes.WaitForSignal(),
	)
}

func (m *Model) waitTodos() tea.Cmd {
	return m.todosBox.wait(func(items []todo.Item) tea.Msg { return todosChangedMsg{items: items} })
}

func (m *Model) waitTheme() tea.Cmd {
	return m.themeBox.wait(func(t theme.Theme) tea.Msg { return themeChangedMsg{theme: t} })
}

func (m *Model) applyTheme(t theme.Theme) {
	m.styles = styles.New(t)
	m.input.PromptStyle = m.styles.Cursor
	m.input.TextStyle = m.styles.Text
	m.input.PlaceholderStyle = m.styles.Muted
	m.help.Styles.ShortKey = m.styles.Subtitle
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	m.help.Styles.FullKey = m.styles.Subtitle
	m.help.Styles.FullDesc = m.styles.Help
	m.help.Styles.FullSeparator = m.styles.Help
	if m.showHelp {
		m.helpText = renderHelp(t, m.keys, m.width)
	}
}

// visible returns the items shown under the current filter.
func (m *Model) visible() []todo.Item {
	return m.filter.Apply(m.items)
}

func (m *Model) selected() (todo.Item, bool) {
	items := m.visible()
	if m.cursor < 0 || m.cursor >= len(items) {
		return todo.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// refresh re-reads the list after a local change so the view never waits
// on the subscription round trip.
func (m *Model) refresh() {
	m.items = m.todos.GetTodos()
	m.clampCursor()
}

func (m *Model) counts() (completed, total int) {
	for _, item := range m.items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(m.items)
}
