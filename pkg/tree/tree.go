package tree

// Tree owns the root node of one session's hierarchy. It is created once per session
// and passed to whatever needs it.
type Tree struct {
	root *Node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{root: newNode(&TreeData{})}
}

func (t *Tree) Root() *Node { return t.root }

// Reset drops every node below the root.
func (t *Tree) Reset() {
	t.root.clearChildren()
	t.root.bump()
}

// Resolve looks up a node by ancestor path from the root.
func (t *Tree) Resolve(path []string) (*Node, error) {
	return t.root.ResolvePath(path)
}

// Contains reports whether n is attached to this tree.
func (t *Tree) Contains(n *Node) bool {
	return n != nil && n.Root() == t.root
}

// Find returns the node with the given logical key (a version suffix is ignored).
func (t *Tree) Find(id string) *Node {
	key := keyOf(id)
	if t.root.Key() == key {
		return t.root
	}
	for n := range t.root.Collect(nil) {
		if n.Key() == key {
			return n
		}
	}
	return nil
}

// Size counts the nodes below the root.
func (t *Tree) Size() int {
	count := 0
	for range t.root.Collect(nil) {
		count++
	}
	return count
}
