package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

func fixture(t *testing.T) (*tree.Tree, *tree.Node, *tree.Node, *tree.Node) {
	t.Helper()
	tr := tree.New()
	group := tree.NewGroup("Work", tree.ColorBlue)
	ref := tree.FileRef{Path: "/src/main.go", URI: tree.URIFor("/src/main.go")}
	tab := tree.NewTab(ref)
	line := tree.NewLine(ref, 9, "func main() {")
	require.True(t, tr.Root().AddChild(group))
	require.True(t, group.AddChild(tab))
	require.True(t, tab.AddChild(line))
	return tr, group, tab, line
}

func TestNewRow(t *testing.T) {
	_, group, tab, line := fixture(t)
	group.SetDescription("daily")
	tab.SetLabel("entry")

	row := NewRow(group, Options{ShowDescription: true, ShowAlias: true})
	assert.Equal(t, "Work", row.Label)
	assert.Equal(t, "daily", row.Description)
	assert.Equal(t, tree.ColorBlue, row.Color)
	assert.True(t, row.Collapsible)
	assert.Equal(t, 0, row.Depth)
	assert.Equal(t, group.ID(), row.ID)

	row = NewRow(tab, Options{ShowAlias: true})
	assert.Equal(t, "entry", row.Label)
	assert.Empty(t, row.Description)
	assert.Equal(t, "/src/main.go", row.Tooltip)

	row = NewRow(tab, Options{ShowAlias: false, ShowDescription: true})
	assert.Equal(t, "main.go", row.Label)

	row = NewRow(line, Options{})
	assert.Equal(t, "10: func main() {", row.Label)
	assert.False(t, row.Collapsible)
	assert.Equal(t, 2, row.Depth)
	assert.Contains(t, row.Tooltip, "/src/main.go:10")
}

func TestRowIDChangesWithState(t *testing.T) {
	_, group, _, _ := fixture(t)
	before := NewRow(group, Options{}).ID
	group.SetCollapsed(true)
	after := NewRow(group, Options{}).ID
	assert.NotEqual(t, before, after)
}

func TestRowsSkipCollapsedChildren(t *testing.T) {
	tr, group, tab, _ := fixture(t)

	assert.Len(t, Rows(tr, Options{}), 3)

	tab.SetCollapsed(true)
	rows := Rows(tr, Options{})
	require.Len(t, rows, 2)
	assert.True(t, rows[1].Collapsed)

	group.SetCollapsed(true)
	assert.Len(t, Rows(tr, Options{}), 1)
}

func TestPrinterPlain(t *testing.T) {
	tr, _, _, _ := fixture(t)
	tr.Root().AddChild(tree.NewGroup("Play", tree.ColorDefault))

	var buf bytes.Buffer
	require.NoError(t, Printer{Options: Options{ShowAlias: true}}.Print(&buf, tr))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "▾ "))
	assert.Contains(t, lines[0], "Work")
	assert.True(t, strings.HasPrefix(lines[1], "  ▾ "))
	assert.Contains(t, lines[2], "10: func main() {")
	assert.Contains(t, lines[3], "Play")
}

func TestPrinterShowKeys(t *testing.T) {
	tr, group, _, _ := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, Printer{ShowKeys: true}.Print(&buf, tr))
	assert.Contains(t, buf.String(), "["+group.Key()+"]")
	assert.NotContains(t, buf.String(), "["+group.ID()+"]")
}

func TestPrinterColorKeepsIndentation(t *testing.T) {
	_, group, _, line := fixture(t)
	p := Printer{Color: true}

	assert.True(t, strings.HasPrefix(p.Line(NewRow(line, Options{})), "      "))
	assert.True(t, strings.HasPrefix(p.Line(NewRow(group, Options{})), "▾ "))
	assert.Contains(t, p.Line(NewRow(group, Options{})), "Work")
}
