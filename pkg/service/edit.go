package service

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Rename sets a group's label, or the alias of a tab or line. An empty alias falls
// back to the derived name; an empty group label is rejected.
func (s *Session) Rename(sel, label string) (*tree.Node, error) {
	n, err := s.lookupOne(sel)
	if err != nil {
		return nil, err
	}
	label = strings.TrimSpace(label)
	if n.Kind() == tree.KindGroup && label == "" {
		return nil, ErrEmptyLabel
	}
	n.SetLabel(label)
	return n, s.commit()
}

// SetColor recolors a group.
func (s *Session) SetColor(sel string, color tree.Color) (*tree.Node, error) {
	n, err := s.lookupOne(sel)
	if err != nil {
		return nil, err
	}
	if !n.SetColor(color) {
		return nil, fmt.Errorf("%s nodes have no color", n.Kind())
	}
	return n, s.commit()
}

// Describe sets the annotation of any node.
func (s *Session) Describe(sel, description string) (*tree.Node, error) {
	n, err := s.lookupOne(sel)
	if err != nil {
		return nil, err
	}
	n.SetDescription(strings.TrimSpace(description))
	return n, s.commit()
}

// Fold collapses or expands a node. With recursive set the whole subtree follows.
// Expanding also opens every container above the node.
func (s *Session) Fold(sel string, collapsed, recursive bool) (*tree.Node, error) {
	n, err := s.Lookup(sel)
	if err != nil {
		return nil, err
	}
	switch {
	case recursive:
		tree.CollapseSubtree(n, collapsed, n != s.Tree.Root())
	case n == s.Tree.Root():
		return nil, ErrRootSelected
	default:
		n.SetCollapsed(collapsed)
	}
	if !collapsed {
		tree.Reveal(n)
	}
	return n, s.commit()
}

// Reveal expands the containers above a node so it is visible.
func (s *Session) Reveal(sel string) (*tree.Node, error) {
	n, err := s.lookupOne(sel)
	if err != nil {
		return nil, err
	}
	tree.Reveal(n)
	return n, s.commit()
}

// SetCollapseAll switches the global collapse mode and applies it to every node.
func (s *Session) SetCollapseAll(collapsed bool) error {
	s.Settings.CollapseAll = collapsed
	tree.CollapseSubtree(s.Tree.Root(), collapsed, false)
	if err := s.saveSettings(); err != nil {
		return err
	}
	return s.commit()
}

// SetShowDescription toggles description display.
func (s *Session) SetShowDescription(show bool) error {
	return s.updateView(func(v *models.ViewSettings) { v.ShowDescription = show })
}

// SetShowAlias toggles whether aliases replace derived names.
func (s *Session) SetShowAlias(show bool) error {
	return s.updateView(func(v *models.ViewSettings) { v.ShowAlias = show })
}

func (s *Session) updateView(apply func(*models.ViewSettings)) error {
	apply(&s.Settings)
	if err := s.saveSettings(); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func (s *Session) lookupOne(sel string) (*tree.Node, error) {
	nodes, err := s.lookupAll([]string{sel})
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}
