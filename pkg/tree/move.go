package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Skip records a source the move engine left in place.
type Skip struct {
	Path string
	Err  error
}

// MoveResult aggregates one batch. Succeeded is false only when a skip produced a
// user-facing message; moved items stay moved either way.
type MoveResult struct {
	Succeeded bool
	Message   string
	Moved     []*Node
	Skipped   []Skip
}

// Reparent moves src under parent at index (negative appends), enforcing cycle
// freedom and the containment rules. On error nothing changes.
func (t *Tree) Reparent(src, parent *Node, index int) error {
	if !t.Contains(src) || !t.Contains(parent) {
		return fmt.Errorf("%w: node is not attached to this tree", ErrPathNotFound)
	}
	if src == t.root {
		return fmt.Errorf("%w: the root cannot be moved", ErrInvalidContainment)
	}
	if src.isAncestorOrSelf(parent) {
		return ErrCycleRejected
	}
	if err := CanContain(parent, src); err != nil {
		return err
	}
	if index >= 0 && src.parent == parent && parent.IndexOf(src) < index {
		index--
	}
	parent.InsertChild(src, index)
	return nil
}

// Move drops every source path onto target (the root when nil). Stale paths and
// cycle attempts are skipped silently; containment violations are skipped with a
// message.
func (t *Tree) Move(target *Node, paths [][]string) MoveResult {
	if target == nil {
		target = t.root
	}
	var res MoveResult
	var messages []string
	for _, path := range paths {
		raw := strings.Join(path, PathSep)
		if !t.Contains(target) {
			res.Skipped = append(res.Skipped, Skip{Path: raw, Err: fmt.Errorf("%w: drop target is detached", ErrPathNotFound)})
			continue
		}
		src, err := t.root.ResolvePath(path)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Path: raw, Err: err})
			continue
		}
		if src == t.root || src == target {
			res.Skipped = append(res.Skipped, Skip{Path: raw, Err: ErrCycleRejected})
			continue
		}
		parent, index := dropPoint(target, src)
		if err := t.Reparent(src, parent, index); err != nil {
			res.Skipped = append(res.Skipped, Skip{Path: raw, Err: err})
			if errors.Is(err, ErrInvalidContainment) {
				messages = append(messages, fmt.Sprintf("cannot move %s: %v", src.DisplayLabel(true), err))
			}
			continue
		}
		res.Moved = append(res.Moved, src)
	}
	res.Succeeded = len(messages) == 0
	res.Message = strings.Join(messages, "; ")
	return res
}

// dropPoint turns a drop target into a parent and insertion index. Containers take
// the source at the end; leaves take it just before themselves.
func dropPoint(target, src *Node) (*Node, int) {
	switch target.data.(type) {
	case *TreeData, *GroupData:
		return target, -1
	case *TabData:
		if src.kind == KindLine {
			return target, -1
		}
		return target.parent, target.parent.IndexOf(target)
	case *LineData:
		tab := target.parent
		if src.kind == KindLine {
			return tab, tab.IndexOf(target)
		}
		return tab.parent, tab.parent.IndexOf(tab)
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", target.data))
	}
}
