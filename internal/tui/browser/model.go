package browser

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattsolo1/grove-core/tui/components/help"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/render"
	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// view holds what the session last asked to be displayed. It is shared by every
// copy of Model so refreshes survive bubbletea's value semantics.
type view struct {
	nodes    []*tree.Node
	rows     []render.Row
	settings models.ViewSettings
}

// Refresh rebuilds the visible rows.
func (v *view) Refresh(t *tree.Tree, settings models.ViewSettings) {
	v.settings = settings
	v.nodes = render.Visible(t)
	v.rows = make([]render.Row, len(v.nodes))
	opts := render.OptionsFrom(settings)
	for i, n := range v.nodes {
		v.rows[i] = render.NewRow(n, opts)
	}
}

// Model is the main model for the tab group browser TUI
type Model struct {
	session   *service.Session
	workspace string
	keys      KeyMap
	help      help.Model
	view      *view

	cursor       int
	scrollOffset int
	width        int
	height       int

	marked        []*tree.Node
	statusMessage string
	selected      string
}

// New creates a browser over s and routes the session's refreshes to it.
func New(s *service.Session, workspace string) Model {
	helpModel := help.NewBuilder().
		WithKeys(keys).
		WithTitle("Tab Groups - Help").
		Build()

	v := &view{}
	s.SetRefresher(v)
	v.Refresh(s.Tree, s.Settings)

	return Model{
		session:   s,
		workspace: workspace,
		keys:      keys,
		help:      helpModel,
		view:      v,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the location chosen with Open, as "path" or "path:line".
func (m Model) Selected() string {
	return m.selected
}

func (m Model) current() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.view.nodes) {
		return nil
	}
	return m.view.nodes[m.cursor]
}

// follow puts the cursor back on n after the rows were rebuilt.
func (m *Model) follow(n *tree.Node) {
	for i, c := range m.view.nodes {
		if c == n {
			m.cursor = i
			m.adjustScroll()
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.nodes) {
		m.cursor = len(m.view.nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

func (m Model) getViewportHeight() int {
	// header, blank, blank, status, footer
	h := m.height - 6
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) adjustScroll() {
	height := m.getViewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+height {
		m.scrollOffset = m.cursor - height + 1
	}
}

func (m *Model) setError(action string, err error) {
	m.statusMessage = fmt.Sprintf("%s: %v", action, err)
}
