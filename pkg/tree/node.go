package tree

import (
	"fmt"
	"slices"
)

// Node is a single entry in the hierarchy. The parent pointer is a non-owning back
// reference; a node is owned by exactly one parent's child list.
type Node struct {
	kind    Kind
	token   string
	version uint64

	parent    *Node
	children  []*Node
	collapsed bool

	data Payload
}

func newNode(p Payload) *Node {
	return &Node{
		kind:    p.Kind(),
		token:   newToken(),
		version: 1,
		data:    p,
	}
}

// NewGroup creates a detached group node.
func NewGroup(label string, color Color) *Node {
	if color == "" {
		color = ColorDefault
	}
	return newNode(&GroupData{Label: label, Color: color})
}

// NewTab creates a detached tab node for a document.
func NewTab(ref FileRef) *Node {
	uri := ref.URI
	if uri == "" {
		uri = URIFor(ref.Path)
	}
	return newNode(&TabData{
		FilePath:     ref.Path,
		FileURI:      uri,
		WorkspaceRef: ref.WorkspaceRef,
	})
}

// NewLine creates a detached line node. lineNumber is zero-based and text is the
// excerpt captured at creation time.
func NewLine(ref FileRef, lineNumber int, text string) *Node {
	uri := ref.URI
	if uri == "" {
		uri = URIFor(ref.Path)
	}
	return newNode(&LineData{
		FilePath:   ref.Path,
		FileURI:    uri,
		LineNumber: lineNumber,
		LineText:   text,
	})
}

// Restore rebuilds a detached node with an existing logical identity. The id may
// carry a stale version; restored nodes always start again at version 1.
func Restore(id string, p Payload) (*Node, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if parsed.Kind != p.Kind() {
		return nil, fmt.Errorf("%w: id %q carries %s payload", ErrMalformedID, id, p.Kind())
	}
	return &Node{
		kind:    parsed.Kind,
		token:   parsed.Token,
		version: 1,
		data:    p,
	}, nil
}

func (n *Node) Kind() Kind { return n.kind }

// Key is the logical identity of the node: kind and token without the version.
func (n *Node) Key() string {
	return ID{Kind: n.kind, Token: n.token}.Key()
}

// ID renders the full identifier, including the version. Renderers key rows by it so
// a bumped version reads as "same node, redraw".
func (n *Node) ID() string {
	return ID{Kind: n.kind, Token: n.token, Version: n.version}.String()
}

func (n *Node) Version() uint64 { return n.version }

func (n *Node) bump() { n.version++ }

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Len() int { return len(n.children) }

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IndexOf returns the position of a direct child, or -1.
func (n *Node) IndexOf(child *Node) int {
	return slices.Index(n.children, child)
}

func (n *Node) Collapsed() bool { return n.collapsed }

// SetCollapsed changes the collapse flag and bumps the version when it flips.
func (n *Node) SetCollapsed(state bool) {
	if n.collapsed == state {
		return
	}
	n.collapsed = state
	n.bump()
}

func (n *Node) Data() Payload { return n.data }

func (n *Node) Group() (*GroupData, bool) {
	d, ok := n.data.(*GroupData)
	return d, ok
}

func (n *Node) Tab() (*TabData, bool) {
	d, ok := n.data.(*TabData)
	return d, ok
}

func (n *Node) Line() (*LineData, bool) {
	d, ok := n.data.(*LineData)
	return d, ok
}

// FilePath returns the document path of tab and line nodes.
func (n *Node) FilePath() (string, bool) {
	return filePathOf(n.data)
}

// DisplayLabel is the text a row shows for the node.
func (n *Node) DisplayLabel(showAlias bool) string {
	return displayLabel(n.data, showAlias)
}

// Root walks up to the node without a parent.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth is the number of ancestors above the node.
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// AddChild appends item. See InsertChild.
func (n *Node) AddChild(item *Node) bool {
	return n.InsertChild(item, -1)
}

// InsertChild moves item under n at index. It is a no-op returning false when item is
// n, an ancestor of n, or a root node. An item with a parent is detached first; the
// index is then applied to the remaining children and appends when out of [0, len].
func (n *Node) InsertChild(item *Node, index int) bool {
	if item == nil || item.kind == KindTree || item.isAncestorOrSelf(n) {
		return false
	}
	if item.parent != nil {
		item.parent.RemoveChild(item)
	}
	if index >= 0 && index <= len(n.children) {
		n.children = slices.Insert(n.children, index, item)
	} else {
		n.children = append(n.children, item)
	}
	item.parent = n
	item.bump()
	return true
}

// RemoveChild detaches a direct child. It reports false when item is not one.
func (n *Node) RemoveChild(item *Node) bool {
	i := n.IndexOf(item)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	item.parent = nil
	return true
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) clearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// SetLabel sets the group label, or the alias of a tab or line.
func (n *Node) SetLabel(label string) {
	switch d := n.data.(type) {
	case *GroupData:
		d.Label = label
	case *TabData:
		d.Label = label
	case *LineData:
		d.Label = label
	case *TreeData:
		return
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", n.data))
	}
	n.bump()
}

// SetDescription sets the annotation shown next to the label.
func (n *Node) SetDescription(desc string) {
	switch d := n.data.(type) {
	case *GroupData:
		d.Description = desc
	case *TabData:
		d.Description = desc
	case *LineData:
		d.Description = desc
	case *TreeData:
		return
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", n.data))
	}
	n.bump()
}

// SetColor recolors a group. It reports false for other kinds.
func (n *Node) SetColor(c Color) bool {
	d, ok := n.data.(*GroupData)
	if !ok {
		return false
	}
	d.Color = c
	n.bump()
	return true
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(%q)", n.kind, n.DisplayLabel(true))
}
