package browser

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

var clipboardWriteAll = clipboard.WriteAll

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			m.help.Toggle()
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	n := m.current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.nodes)-1 {
			m.cursor++
			m.adjustScroll()
		}
	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.adjustScroll()
	case key.Matches(msg, m.keys.GoToBottom):
		m.cursor = len(m.view.nodes) - 1
		m.clampCursor()

	case key.Matches(msg, m.keys.Toggle):
		if n != nil && n.Len() > 0 {
			m.fold(n, !n.Collapsed())
		}
	case key.Matches(msg, m.keys.Expand):
		if n != nil && n.Collapsed() {
			m.fold(n, false)
		}
	case key.Matches(msg, m.keys.Collapse):
		switch {
		case n == nil:
		case n.Len() > 0 && !n.Collapsed():
			m.fold(n, true)
		case n.Parent() != s.Tree.Root():
			m.follow(n.Parent())
		}
	case key.Matches(msg, m.keys.CollapseAll):
		if err := s.SetCollapseAll(!s.Settings.CollapseAll); err != nil {
			m.setError("collapse all", err)
		}
		m.follow(n)

	case key.Matches(msg, m.keys.Cut):
		if n != nil {
			m.marked = append(m.marked, n)
			m.statusMessage = fmt.Sprintf("%d marked; press p on a target to drop", len(m.marked))
		}
	case key.Matches(msg, m.keys.Paste):
		m.drop(n)

	case key.Matches(msg, m.keys.Delete):
		if n == nil {
			break
		}
		if _, err := s.Delete([]string{n.Key()}); err != nil {
			m.setError("remove", err)
			break
		}
		m.statusMessage = fmt.Sprintf("Removed %s; press u within %s to undo", n.DisplayLabel(s.Settings.ShowAlias), s.Config.RestoreWindow)
		m.clampCursor()
	case key.Matches(msg, m.keys.Restore):
		restored, err := s.RestoreLastDelete()
		if err != nil {
			m.setError("undo", err)
			break
		}
		m.statusMessage = fmt.Sprintf("Restored %d item(s)", len(restored))
		if len(restored) > 0 {
			m.follow(restored[0])
		}

	case key.Matches(msg, m.keys.ToggleAlias):
		if err := s.SetShowAlias(!s.Settings.ShowAlias); err != nil {
			m.setError("toggle aliases", err)
		}
	case key.Matches(msg, m.keys.ToggleDescription):
		if err := s.SetShowDescription(!s.Settings.ShowDescription); err != nil {
			m.setError("toggle descriptions", err)
		}

	case key.Matches(msg, m.keys.Open):
		if n == nil {
			break
		}
		if loc := location(n); loc != "" {
			m.selected = loc
			return m, tea.Quit
		}
		if n.Len() > 0 {
			m.fold(n, !n.Collapsed())
		}
	case key.Matches(msg, m.keys.Copy):
		if n == nil {
			break
		}
		loc := location(n)
		if loc == "" {
			m.statusMessage = "Groups have no file location"
			break
		}
		if err := clipboardWriteAll(loc); err != nil {
			m.setError("copy", err)
			break
		}
		m.statusMessage = "Copied " + loc
	}
	return m, nil
}

func (m *Model) fold(n *tree.Node, collapsed bool) {
	if _, err := m.session.Fold(n.Key(), collapsed, false); err != nil {
		m.setError("fold", err)
	}
	m.follow(n)
}

// drop moves the marked nodes onto target, or to the top level when the tree is
// empty of rows.
func (m *Model) drop(target *tree.Node) {
	if len(m.marked) == 0 {
		m.statusMessage = "Nothing marked; press x on a node first"
		return
	}
	sel := ""
	if target != nil {
		sel = target.Key()
	}

	res, err := m.session.Drop(sel, tree.DragPayload(m.marked))
	m.marked = nil
	if err != nil {
		m.setError("move", err)
		return
	}
	m.statusMessage = fmt.Sprintf("Moved %d item(s)", len(res.Moved))
	if len(res.Skipped) > 0 {
		m.statusMessage += fmt.Sprintf(", skipped %d (%s)", len(res.Skipped), service.SkipSummary(res))
	}
	if len(res.Moved) > 0 {
		m.follow(res.Moved[0])
	}
}

func location(n *tree.Node) string {
	switch d := n.Data().(type) {
	case *tree.TabData:
		return d.FilePath
	case *tree.LineData:
		return fmt.Sprintf("%s:%d", d.FilePath, d.LineNumber+1)
	}
	return ""
}
