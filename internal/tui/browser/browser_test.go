package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/store"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newModel(t *testing.T) (Model, *service.Session) {
	t.Helper()
	s := service.New(nil, store.NewMemory(), nil, nil)
	require.NoError(t, s.Load())
	_, err := s.CreateGroup("", "Work", tree.ColorBlue)
	require.NoError(t, err)
	_, err = s.CreateGroup("Work", "Inner", tree.ColorDefault)
	require.NoError(t, err)
	_, err = s.CreateGroup("", "Play", tree.ColorDefault)
	require.NoError(t, err)

	m := New(s, "repo")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, s
}

func TestBrowserRows(t *testing.T) {
	m, _ := newModel(t)
	require.Len(t, m.view.rows, 3)
	assert.Equal(t, "Work", m.view.rows[0].Label)
	assert.Equal(t, "Inner", m.view.rows[1].Label)
	assert.Contains(t, m.View(), "Play")
}

func TestBrowserFoldFollowsRefresh(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	work, err := s.Lookup("Work")
	require.NoError(t, err)
	assert.True(t, work.Collapsed())
	assert.Len(t, m.view.rows, 2, "rows rebuilt by the session refresh")

	m = press(t, m, runes("l"))
	assert.False(t, work.Collapsed())
	assert.Len(t, m.view.rows, 3)
}

func TestBrowserCutAndDrop(t *testing.T) {
	m, s := newModel(t)

	// Mark Play (last row) and drop it on Work (first row).
	m = press(t, m, runes("G"), runes("x"), runes("g"), runes("p"))
	work, err := s.Lookup("Work")
	require.NoError(t, err)
	require.Equal(t, 2, work.Len())
	assert.Equal(t, "Play", work.Child(1).DisplayLabel(true))
	assert.Empty(t, m.marked)
	assert.Contains(t, m.statusMessage, "Moved 1")

	// Dropping a group into its own descendant is skipped.
	m = press(t, m, runes("g"), runes("x"), runes("l"))
	m.cursor = 1
	m = press(t, m, runes("p"))
	assert.Contains(t, m.statusMessage, "Moved 0")
	assert.Equal(t, 2, work.Len())
	assert.Equal(t, s.Tree.Root(), work.Parent())
}

func TestBrowserDeleteAndRestore(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, runes("G"), runes("d"))
	assert.Len(t, m.view.rows, 2)
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, runes("u"))
	assert.Len(t, m.view.rows, 3)
	assert.Equal(t, 3, s.Tree.Size())
	assert.Contains(t, m.statusMessage, "Restored 1")
}

func TestBrowserOpenSelectsLocation(t *testing.T) {
	s := service.New(nil, store.NewMemory(), nil, nil)
	require.NoError(t, s.Load())
	ref := tree.FileRef{Path: "/src/main.go"}
	tab := tree.NewTab(ref)
	tab.AddChild(tree.NewLine(ref, 4, "x := 1"))
	s.Tree.Root().AddChild(tab)

	m := New(s, "")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.cursor = 1
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, "/src/main.go:5", next.(Model).Selected())
}

func TestBrowserCopyLocation(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	s := service.New(nil, store.NewMemory(), nil, nil)
	require.NoError(t, s.Load())
	ref := tree.FileRef{Path: "/src/main.go"}
	tab := tree.NewTab(ref)
	tab.AddChild(tree.NewLine(ref, 9, "return nil"))
	s.Tree.Root().AddChild(tab)

	m := New(s, "")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.cursor = 1
	m = press(t, m, runes("y"))
	assert.Equal(t, "/src/main.go:10", copied)
	assert.Equal(t, "Copied /src/main.go:10", m.statusMessage)
}
