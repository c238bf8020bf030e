package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildChain(t *testing.T) (*Tree, *Node, *Node, *Node, *Node) {
	t.Helper()
	tr := New()
	top := NewGroup("top", ColorDefault)
	mid := NewGroup("mid", ColorDefault)
	tab := NewTab(FileRef{Path: "/a.go"})
	line := NewLine(FileRef{Path: "/a.go"}, 1, "func a() {}")
	tr.Root().AddChild(top)
	top.AddChild(mid)
	mid.AddChild(tab)
	tab.AddChild(line)
	return tr, top, mid, tab, line
}

func TestCollapseSubtree(t *testing.T) {
	tr, top, mid, tab, line := buildChain(t)
	before := map[*Node]uint64{mid: mid.Version(), tab: tab.Version(), line: line.Version()}

	CollapseSubtree(mid, true, false)

	assert.False(t, mid.Collapsed(), "node itself untouched without includeSelf")
	assert.True(t, tab.Collapsed())
	assert.True(t, line.Collapsed())
	assert.False(t, top.Collapsed())
	assert.False(t, tr.Root().Collapsed())
	assert.Equal(t, before[mid], mid.Version())
	assert.Greater(t, tab.Version(), before[tab])
	assert.Greater(t, line.Version(), before[line])

	CollapseSubtree(mid, true, true)
	assert.True(t, mid.Collapsed())
	assert.False(t, top.Collapsed())
}

func TestCollapseAncestors(t *testing.T) {
	tr, top, mid, tab, line := buildChain(t)
	CollapseSubtree(tr.Root(), true, true)
	v := top.Version()

	CollapseAncestors(tab, false)

	assert.False(t, tab.Collapsed())
	assert.False(t, mid.Collapsed())
	assert.False(t, top.Collapsed())
	assert.False(t, tr.Root().Collapsed())
	assert.True(t, line.Collapsed(), "descendants keep their state")
	assert.Greater(t, top.Version(), v)
}

func TestReveal(t *testing.T) {
	tr, top, mid, tab, line := buildChain(t)
	CollapseSubtree(tr.Root(), true, true)

	Reveal(line)

	assert.False(t, tab.Collapsed())
	assert.False(t, mid.Collapsed())
	assert.False(t, top.Collapsed())
	assert.True(t, line.Collapsed())
}
