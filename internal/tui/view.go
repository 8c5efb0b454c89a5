package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/todo"
)

func (m *Model) View() string {
	if m.showHelp {
		footer := m.styles.Help.Render("esc close")
		return lipgloss.JoinVertical(lipgloss.Left, m.helpText, "", footer)
	}

	sections := []string{m.renderHeader(), m.renderFilters(), m.renderInput()}

	if m.confirm != nil {
		sections = append(sections, m.styles.Modal.Render(m.confirm.View()))
	} else {
		sections = append(sections, m.renderList())
	}

	if toasts := renderToasts(m.styles, m.toasts, m.width); toasts != "" {
		sections = append(sections, toasts)
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	completed, total := m.counts()
	title := m.styles.Title.Render(styles.IconCheckList + "Tasks")
	status := m.styles.Muted.Render(fmt.Sprintf("%d of %d completed", completed, total))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", status)
}

func (m *Model) renderFilters() string {
	tabs := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		label := fmt.Sprintf("%s (%d)", f, len(f.Apply(m.items)))
		if f == m.filter {
			tabs = append(tabs, m.styles.FilterActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderInput() string {
	style := m.styles.Input
	if m.focus == focusInput {
		style = style.BorderForeground(lipgloss.Color(m.styles.Theme.Primary))
	}
	if m.width > 0 {
		style = style.Width(max(m.width-2, 20))
	}
	return style.Render(m.input.View())
}

func (m *Model) renderList() string {
	items := m.visible()
	if len(items) == 0 {
		return m.styles.Muted.Italic(true).Render(emptyMessage(m.filter, len(m.items)))
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderItem(item, i == m.cursor && m.focus == focusList))
	}
	return sb.String()
}

func (m *Model) renderItem(item todo.Item, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render(styles.IconCursor) + " "
	}

	check := m.styles.Muted.Render(styles.IconUnchecked)
	text := m.styles.Item.Render(item.Text)
	if item.Completed {
		check = m.styles.Check.Render(styles.IconChecked)
		text = m.styles.ItemCompleted.Render(item.Text)
	}
	if selected {
		text = m.styles.ItemSelected.Render(item.Text)
	}

	return cursor + check + " " + text
}

func emptyMessage(f todo.Filter, total int) string {
	if total == 0 {
		return "No tasks yet. Add one above to get started!"
	}
	switch f {
	case todo.FilterActive:
		return "Nothing left to do."
	case todo.FilterCompleted:
		return "No completed tasks."
	default:
		return "No tasks."
	}
}
