package tree

import (
	"fmt"
	"slices"
	"strings"
)

// PathSep joins ancestor path segments in drag payload strings.
const PathSep = "/"

// lineage returns the logical keys from the topmost ancestor down to n, inclusive.
func (n *Node) lineage() []string {
	var keys []string
	for cur := n; cur != nil; cur = cur.parent {
		keys = append(keys, cur.Key())
	}
	slices.Reverse(keys)
	return keys
}

// isAncestorOrSelf reports whether n's lineage is a prefix of other's lineage.
func (n *Node) isAncestorOrSelf(other *Node) bool {
	mine, theirs := n.lineage(), other.lineage()
	if len(mine) > len(theirs) {
		return false
	}
	return slices.Equal(mine, theirs[:len(mine)])
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	return n != other && n.isAncestorOrSelf(other)
}

// AncestorPath returns the ids from the topmost ancestor's child down to n. The root
// itself has an empty path, so root.ResolvePath(x.AncestorPath()) yields x.
func (n *Node) AncestorPath() []string {
	var ids []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		ids = append(ids, cur.ID())
	}
	slices.Reverse(ids)
	return ids
}

// PathString joins the ancestor path for use in drag payloads.
func (n *Node) PathString() string {
	return strings.Join(n.AncestorPath(), PathSep)
}

// ResolvePath walks down from n through child ids. Segments match on logical identity
// so ids with a stale version still resolve.
func (n *Node) ResolvePath(path []string) (*Node, error) {
	cur := n
	for _, seg := range path {
		want := keyOf(seg)
		var next *Node
		for _, c := range cur.children {
			if c.Key() == want {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, seg)
		}
		cur = next
	}
	return cur, nil
}

// SplitPath breaks a drag payload string into segments. The empty string is the root.
func SplitPath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, PathSep)
}

// DragPayload encodes the selection as path strings, dropping any node whose ancestor
// is also selected. Selection order is kept.
func DragPayload(nodes []*Node) []string {
	var out []string
	seen := make(map[*Node]bool, len(nodes))
	for _, n := range nodes {
		if n == nil || seen[n] {
			continue
		}
		covered := false
		for _, other := range nodes {
			if other != nil && other.IsAncestorOf(n) {
				covered = true
				break
			}
		}
		seen[n] = true
		if !covered {
			out = append(out, n.PathString())
		}
	}
	return out
}
