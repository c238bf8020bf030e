package tree

// CollapseSubtree sets state on every descendant of n, and on n itself when
// includeSelf is set, in depth-first pre-order. Every visited node gets a new
// version, whether or not its flag changed, so the renderer redraws the whole subtree.
func CollapseSubtree(n *Node, state, includeSelf bool) {
	if includeSelf {
		n.collapsed = state
		n.bump()
	}
	for d := range n.Collect(nil) {
		d.collapsed = state
		d.bump()
	}
}

// CollapseAncestors sets state on n and on every ancestor up to the root.
func CollapseAncestors(n *Node, state bool) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.collapsed = state
		cur.bump()
	}
}

// Reveal expands every container above n so that n is visible.
func Reveal(n *Node) {
	if n.parent != nil {
		CollapseAncestors(n.parent, false)
	}
}
