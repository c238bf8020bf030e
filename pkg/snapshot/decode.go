package snapshot

import (
	"fmt"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Decode replaces the contents of t with the tree described by rec. A tree record
// reuses t's root; any other record becomes the single child of the root.
//
// Decoding is staged off to the side. If any record is invalid, t is left empty and
// the error is returned; it is never partially loaded.
func Decode(rec Record, t *tree.Tree) error {
	staging := tree.New()
	seen := map[string]bool{}

	var err error
	if rec.Kind == tree.KindTree {
		err = decodeChildren(rec.Children, staging.Root(), seen)
	} else {
		err = decodeInto(rec, staging.Root(), seen)
	}

	t.Reset()
	if err != nil {
		return err
	}
	for _, c := range staging.Root().Children() {
		t.Root().AddChild(c)
	}
	return nil
}

// DecodeNode rebuilds a detached subtree, used to restore deleted nodes. Keys that
// already exist in t are rejected.
func DecodeNode(rec Record, t *tree.Tree) (*tree.Node, error) {
	seen := map[string]bool{}
	for n := range t.Root().Collect(nil) {
		seen[n.Key()] = true
	}
	n, err := buildNode(rec, seen)
	if err != nil {
		return nil, err
	}
	if err := decodeChildren(rec.Children, n, seen); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeChildren(recs []Record, parent *tree.Node, seen map[string]bool) error {
	for _, rec := range recs {
		if err := decodeInto(rec, parent, seen); err != nil {
			return err
		}
	}
	return nil
}

func decodeInto(rec Record, parent *tree.Node, seen map[string]bool) error {
	n, err := buildNode(rec, seen)
	if err != nil {
		return err
	}
	if err := tree.CanContain(parent, n); err != nil {
		return err
	}
	parent.AddChild(n)
	return decodeChildren(rec.Children, n, seen)
}

func buildNode(rec Record, seen map[string]bool) (*tree.Node, error) {
	kind, err := tree.ParseKind(string(rec.Kind))
	if err != nil {
		return nil, err
	}

	var data tree.Payload
	p := rec.Payload
	switch kind {
	case tree.KindTree:
		return nil, fmt.Errorf("%w: nested tree record", tree.ErrInvalidContainment)
	case tree.KindGroup:
		color, err := tree.ParseColor(string(p.Color))
		if err != nil {
			color = tree.ColorDefault
		}
		data = &tree.GroupData{Label: p.Label, Color: color, Description: p.Description}
	case tree.KindTab:
		data = &tree.TabData{
			FilePath:     p.FilePath,
			FileURI:      p.FileURI,
			Label:        p.Label,
			Description:  p.Description,
			WorkspaceRef: p.WorkspaceRef,
		}
	case tree.KindLine:
		line := 0
		if p.LineNumber != nil {
			line = *p.LineNumber
		}
		if line < 0 {
			return nil, fmt.Errorf("%w: negative line number in %s", tree.ErrMalformedID, p.ID)
		}
		data = &tree.LineData{
			FilePath:    p.FilePath,
			FileURI:     p.FileURI,
			LineNumber:  line,
			LineText:    p.LineText,
			Label:       p.Label,
			Description: p.Description,
		}
	default:
		return nil, fmt.Errorf("%w: %q", tree.ErrUnknownNodeKind, rec.Kind)
	}

	n, err := tree.Restore(p.ID, data)
	if err != nil {
		return nil, err
	}
	if seen[n.Key()] {
		return nil, fmt.Errorf("%w: %s", tree.ErrDuplicateID, n.Key())
	}
	seen[n.Key()] = true
	if p.Collapsed {
		n.SetCollapsed(true)
	}
	return n, nil
}
