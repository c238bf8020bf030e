package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// deletion is the persisted record of the most recent delete.
type deletion struct {
	At    time.Time     `json:"at"`
	Items []deletedItem `json:"items"`
}

type deletedItem struct {
	ParentPath []string        `json:"parent_path"`
	Index      int             `json:"index"`
	Record     snapshot.Record `json:"record"`
}

// Delete removes the selected nodes and their subtrees. Selecting a node together
// with one of its ancestors removes the ancestor only. The removal can be undone with
// RestoreLastDelete until the restore window passes.
func (s *Session) Delete(sels []string) ([]*tree.Node, error) {
	nodes, err := s.lookupAll(sels)
	if err != nil {
		return nil, err
	}
	nodes = topmost(nodes)

	del := deletion{At: s.now()}
	for _, n := range nodes {
		parent := n.Parent()
		del.Items = append(del.Items, deletedItem{
			ParentPath: parent.AncestorPath(),
			Index:      parent.IndexOf(n),
			Record:     snapshot.EncodeNode(n),
		})
		parent.RemoveChild(n)
	}

	data, err := json.Marshal(del)
	if err != nil {
		return nil, fmt.Errorf("encode deletion: %w", err)
	}
	if err := s.backend.Set(models.KeyLastDelete, string(data)); err != nil {
		return nil, fmt.Errorf("persist deletion: %w", err)
	}

	s.Logger.WithField("count", len(nodes)).Info("Deleted nodes")
	return nodes, s.commit()
}

// RestoreLastDelete puts back the nodes removed by the last Delete, at their former
// parent and position. A parent that no longer exists is replaced by the root; nodes
// the root cannot hold (lines) are dropped with a warning.
func (s *Session) RestoreLastDelete() ([]*tree.Node, error) {
	raw, ok, err := s.backend.Get(models.KeyLastDelete)
	if err != nil {
		return nil, fmt.Errorf("read deletion: %w", err)
	}
	if !ok || raw == "" {
		return nil, ErrNothingToRestore
	}

	var del deletion
	if err := json.Unmarshal([]byte(raw), &del); err != nil {
		s.clearDeletion()
		return nil, fmt.Errorf("%w: %v", ErrNothingToRestore, err)
	}
	if s.now().Sub(del.At) > s.Config.RestoreWindow {
		s.clearDeletion()
		return nil, ErrRestoreExpired
	}

	var restored []*tree.Node
	for _, item := range slices.Backward(del.Items) {
		n, err := snapshot.DecodeNode(item.Record, s.Tree)
		if err != nil {
			s.Logger.WithError(err).Warn("Skipping unrestorable node")
			continue
		}
		parent, err := s.Tree.Resolve(item.ParentPath)
		if err != nil || tree.CanContain(parent, n) != nil {
			parent = s.Tree.Root()
		}
		if err := tree.CanContain(parent, n); err != nil {
			s.Logger.WithFields(logrus.Fields{
				"node": n.Key(),
			}).Warn("Dropping restored node without a valid parent")
			continue
		}
		parent.InsertChild(n, item.Index)
		restored = append(restored, n)
	}
	slices.Reverse(restored)

	if err := s.backend.Delete(models.KeyLastDelete); err != nil {
		return nil, fmt.Errorf("clear deletion: %w", err)
	}
	return restored, s.commit()
}

// clearDeletion forgets an unusable deletion record. Failing to forget it only means
// the next restore attempt fails the same way.
func (s *Session) clearDeletion() {
	if err := s.backend.Delete(models.KeyLastDelete); err != nil {
		s.Logger.WithError(err).Warn("Could not clear deletion record")
	}
}

// topmost drops nodes that have an ancestor in the same selection, keeping order.
func topmost(nodes []*tree.Node) []*tree.Node {
	var out []*tree.Node
	for _, n := range nodes {
		if slices.Contains(out, n) {
			continue
		}
		covered := false
		for _, other := range nodes {
			if other.IsAncestorOf(n) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, n)
		}
	}
	return out
}
