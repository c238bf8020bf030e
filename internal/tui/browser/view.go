package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"

	"github.com/mattsolo1/grove-tabgroups/pkg/render"
)

func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	header := theme.DefaultTheme.Header.Render("Tab Groups")
	if m.workspace != "" {
		header += " " + theme.DefaultTheme.Muted.Render(m.workspace)
	}

	status := ""
	if m.statusMessage != "" {
		status = theme.DefaultTheme.Info.Render(m.statusMessage)
	}

	fullView := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderTreeView(),
		"",
		status,
		m.help.View(),
	)

	// Add top margin to prevent border cutoff
	return "\n" + fullView
}

func (m Model) renderTreeView() string {
	if len(m.view.rows) == 0 {
		return theme.DefaultTheme.Muted.Render("No tab groups yet. Add some with 'tg group add' or 'tg tab add'.")
	}

	printer := render.Printer{Options: render.OptionsFrom(m.view.settings), Color: true}
	marked := make(map[string]bool, len(m.marked))
	for _, n := range m.marked {
		marked[n.Key()] = true
	}

	var b strings.Builder
	end := min(m.scrollOffset+m.getViewportHeight(), len(m.view.rows))
	for i := m.scrollOffset; i < end; i++ {
		row := m.view.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = theme.DefaultTheme.Highlight.Render("▶ ")
		}
		line := printer.Line(row)
		if marked[m.view.nodes[i].Key()] {
			line = theme.DefaultTheme.Selected.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
