package tree

import (
	"iter"
	"slices"
)

// Collect yields the descendants of n matching pred in depth-first pre-order. A nil
// pred matches everything. The walk uses an explicit stack.
func (n *Node) Collect(pred func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := slices.Clone(n.children)
		slices.Reverse(stack)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if pred == nil || pred(cur) {
				if !yield(cur) {
					return
				}
			}
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack = append(stack, cur.children[i])
			}
		}
	}
}

// OfKind is a Collect predicate selecting one kind.
func OfKind(k Kind) func(*Node) bool {
	return func(n *Node) bool { return n.kind == k }
}

func (n *Node) Groups() iter.Seq[*Node] { return n.Collect(OfKind(KindGroup)) }
func (n *Node) Tabs() iter.Seq[*Node]   { return n.Collect(OfKind(KindTab)) }
func (n *Node) Lines() iter.Seq[*Node]  { return n.Collect(OfKind(KindLine)) }
