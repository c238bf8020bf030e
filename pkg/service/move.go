package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Drop applies a raw drag payload (one ancestor-path string per dragged node) to the
// selected target. Per-item failures are skipped; the batch is persisted once.
func (s *Session) Drop(targetSel string, payload []string) (tree.MoveResult, error) {
	target, err := s.Lookup(targetSel)
	if err != nil {
		return tree.MoveResult{}, fmt.Errorf("find drop target: %w", err)
	}

	paths := make([][]string, 0, len(payload))
	for _, p := range payload {
		paths = append(paths, tree.SplitPath(p))
	}
	res := s.Tree.Move(target, paths)

	entry := s.Logger.WithFields(logrus.Fields{
		"moved":   len(res.Moved),
		"skipped": len(res.Skipped),
	})
	if !res.Succeeded {
		entry.Warn(res.Message)
	} else {
		entry.Debug("Moved nodes")
	}
	return res, s.commit()
}

// Move resolves source selectors, encodes them as a drag payload and drops them on
// the target. Selectors that do not resolve are reported as skipped.
func (s *Session) Move(targetSel string, sourceSels []string) (tree.MoveResult, error) {
	var nodes []*tree.Node
	var skipped []tree.Skip
	for _, sel := range sourceSels {
		n, err := s.Lookup(sel)
		if err != nil {
			skipped = append(skipped, tree.Skip{Path: sel, Err: err})
			continue
		}
		nodes = append(nodes, n)
	}

	res, err := s.Drop(targetSel, tree.DragPayload(nodes))
	res.Skipped = append(skipped, res.Skipped...)
	return res, err
}

// SkipSummary renders skipped items for display.
func SkipSummary(res tree.MoveResult) string {
	var parts []string
	for _, sk := range res.Skipped {
		parts = append(parts, fmt.Sprintf("%s: %v", sk.Path, sk.Err))
	}
	return strings.Join(parts, "\n")
}
