package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Lookup resolves a selector to a node. A selector is empty (the root), an id path
// ("group:…/tab:…" as produced by drag payloads), a single node key, or a label path
// such as "Work/main.go/L12" where line segments are one-based.
func (s *Session) Lookup(sel string) (*tree.Node, error) {
	sel = strings.Trim(strings.TrimSpace(sel), tree.PathSep)
	if sel == "" {
		return s.Tree.Root(), nil
	}

	segments := tree.SplitPath(sel)
	if isIDPath(segments) {
		n, err := s.Tree.Resolve(segments)
		if err == nil {
			return n, nil
		}
		if len(segments) == 1 {
			if found := s.Tree.Find(segments[0]); found != nil {
				return found, nil
			}
		}
		return nil, err
	}

	cur := s.Tree.Root()
	for _, seg := range segments {
		next := matchLabel(cur, seg)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", tree.ErrPathNotFound, seg)
		}
		cur = next
	}
	return cur, nil
}

func isIDPath(segments []string) bool {
	for _, seg := range segments {
		if _, err := tree.ParseID(seg); err != nil {
			return false
		}
	}
	return len(segments) > 0
}

func matchLabel(parent *tree.Node, seg string) *tree.Node {
	for _, c := range parent.Children() {
		if c.DisplayLabel(true) == seg || c.DisplayLabel(false) == seg {
			return c
		}
		if line, ok := c.Line(); ok && strings.HasPrefix(seg, "L") {
			if n, err := strconv.Atoi(seg[1:]); err == nil && n == line.LineNumber+1 {
				return c
			}
		}
	}
	return nil
}

func (s *Session) lookupAll(sels []string) ([]*tree.Node, error) {
	nodes := make([]*tree.Node, 0, len(sels))
	for _, sel := range sels {
		n, err := s.Lookup(sel)
		if err != nil {
			return nil, err
		}
		if n == s.Tree.Root() {
			return nil, ErrRootSelected
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
