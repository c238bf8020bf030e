package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	tree  *Tree
	work  *Node
	play  *Node
	tabA  *Node
	tabB  *Node
	lineA *Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tree:  New(),
		work:  NewGroup("Work", ColorBlue),
		play:  NewGroup("Play", ColorGreen),
		tabA:  NewTab(FileRef{Path: "/a.ts"}),
		tabB:  NewTab(FileRef{Path: "/b.ts"}),
		lineA: NewLine(FileRef{Path: "/a.ts"}, 10, "const a = 1"),
	}
	root := f.tree.Root()
	require.True(t, root.AddChild(f.work))
	require.True(t, root.AddChild(f.play))
	require.True(t, f.work.AddChild(f.tabA))
	require.True(t, f.tabA.AddChild(f.lineA))
	require.True(t, f.play.AddChild(f.tabB))
	return f
}

func TestReparentContainment(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tree.Reparent(f.tabB, f.tree.Root(), -1))
	assert.Same(t, f.tree.Root(), f.tabB.Parent())

	err := f.tree.Reparent(f.tabB, f.tabA, -1)
	assert.ErrorIs(t, err, ErrInvalidContainment)
	assert.Same(t, f.tree.Root(), f.tabB.Parent())
	assert.Equal(t, []*Node{f.lineA}, f.tabA.Children())

	err = f.tree.Reparent(f.lineA, f.tabB, -1)
	assert.ErrorIs(t, err, ErrInvalidContainment)
	assert.Same(t, f.tabA, f.lineA.Parent())
	assert.Zero(t, f.tabB.Len())

	err = f.tree.Reparent(f.work, f.tabA, -1)
	assert.ErrorIs(t, err, ErrCycleRejected)

	err = f.tree.Reparent(f.tree.Root(), f.work, -1)
	assert.ErrorIs(t, err, ErrInvalidContainment)
}

func TestMoveIntoContainer(t *testing.T) {
	f := newFixture(t)

	res := f.tree.Move(f.play, [][]string{f.tabA.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Empty(t, res.Message)
	assert.Equal(t, []*Node{f.tabA}, res.Moved)
	assert.Equal(t, []*Node{f.tabB, f.tabA}, f.play.Children())
	assert.Zero(t, f.work.Len())
	assert.Same(t, f.tabA, f.lineA.Parent())
}

func TestMoveOntoLeafInsertsBefore(t *testing.T) {
	f := newFixture(t)
	tabC := NewTab(FileRef{Path: "/c.ts"})
	f.work.AddChild(tabC)

	res := f.tree.Move(f.tabB, [][]string{tabC.AncestorPath(), f.tabA.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Equal(t, []*Node{tabC, f.tabA, f.tabB}, f.play.Children())
}

func TestMoveWithinSameParent(t *testing.T) {
	f := newFixture(t)
	tabC := NewTab(FileRef{Path: "/c.ts"})
	tabD := NewTab(FileRef{Path: "/d.ts"})
	f.work.AddChild(tabC)
	f.work.AddChild(tabD)

	res := f.tree.Move(tabD, [][]string{f.tabA.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Equal(t, []*Node{tabC, f.tabA, tabD}, f.work.Children())
}

func TestMoveLinesBetweenTabs(t *testing.T) {
	f := newFixture(t)
	other := NewTab(FileRef{Path: "/a.ts"})
	f.play.AddChild(other)
	second := NewLine(FileRef{Path: "/a.ts"}, 2, "let b")
	other.AddChild(second)

	res := f.tree.Move(second, [][]string{f.lineA.AncestorPath()})
	assert.True(t, res.Succeeded)
	assert.Equal(t, []*Node{f.lineA, second}, other.Children())

	res = f.tree.Move(f.tabB, [][]string{f.lineA.AncestorPath()})
	assert.False(t, res.Succeeded)
	assert.Contains(t, res.Message, "cannot move")
	assert.Same(t, other, f.lineA.Parent())
	assert.Zero(t, f.tabB.Len())
}

func TestMoveTabToRoot(t *testing.T) {
	f := newFixture(t)

	res := f.tree.Move(nil, [][]string{f.tabB.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Same(t, f.tree.Root(), f.tabB.Parent())
	assert.Equal(t, 2, f.tree.Root().IndexOf(f.tabB))
}

func TestMoveLineToGroupRejected(t *testing.T) {
	f := newFixture(t)

	res := f.tree.Move(f.play, [][]string{f.lineA.AncestorPath()})

	assert.False(t, res.Succeeded)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrInvalidContainment)
	assert.Same(t, f.tabA, f.lineA.Parent())
}

func TestMoveCycleSkippedSilently(t *testing.T) {
	f := newFixture(t)
	inner := NewGroup("inner", ColorDefault)
	f.work.AddChild(inner)

	res := f.tree.Move(inner, [][]string{f.work.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Empty(t, res.Message)
	assert.Empty(t, res.Moved)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrCycleRejected)
	assert.Same(t, f.tree.Root(), f.work.Parent())
}

func TestMoveBatchWithStalePath(t *testing.T) {
	f := newFixture(t)
	doomed := NewTab(FileRef{Path: "/gone.ts"})
	f.work.AddChild(doomed)
	stale := doomed.AncestorPath()
	f.work.RemoveChild(doomed)

	res := f.tree.Move(f.play, [][]string{stale, f.tabA.AncestorPath()})

	assert.True(t, res.Succeeded)
	assert.Equal(t, []*Node{f.tabA}, res.Moved)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrPathNotFound)
	assert.Same(t, f.play, f.tabA.Parent())
	assert.Nil(t, doomed.Parent())
}

func TestMoveDetachedTarget(t *testing.T) {
	f := newFixture(t)
	loose := NewGroup("loose", ColorDefault)

	res := f.tree.Move(loose, [][]string{f.tabA.AncestorPath()})

	assert.Empty(t, res.Moved)
	assert.Same(t, f.work, f.tabA.Parent())
}
