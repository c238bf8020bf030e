// Package render turns nodes into display rows. It is a reference adapter for hosts
// without their own tree view, such as the tg command line.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Options are the view toggles that affect a row.
type Options struct {
	ShowDescription bool
	ShowAlias       bool
}

// Row is the displayable form of one node.
type Row struct {
	// ID changes whenever the node's visible state does.
	ID          string
	Kind        tree.Kind
	Label       string
	Description string
	Tooltip     string
	Icon        string
	Color       tree.Color
	Collapsible bool
	Collapsed   bool
	Depth       int
}

// NewRow builds the row for n.
func NewRow(n *tree.Node, opts Options) Row {
	row := Row{
		ID:          n.ID(),
		Kind:        n.Kind(),
		Label:       n.DisplayLabel(opts.ShowAlias),
		Collapsible: n.Len() > 0,
		Collapsed:   n.Collapsed(),
		Depth:       n.Depth() - 1,
		Color:       tree.ColorDefault,
	}

	var desc string
	switch d := n.Data().(type) {
	case *tree.TreeData:
		row.Icon = ""
	case *tree.GroupData:
		row.Icon = "▣"
		row.Color = d.Color
		row.Collapsible = true
		desc = d.Description
		row.Tooltip = fmt.Sprintf("%s (%d items)", d.Label, n.Len())
	case *tree.TabData:
		row.Icon = "▤"
		desc = d.Description
		if desc == "" && opts.ShowAlias && d.Label != "" {
			desc = filepath.Base(d.FilePath)
		}
		row.Tooltip = d.FilePath
	case *tree.LineData:
		row.Icon = "↳"
		desc = d.Description
		row.Tooltip = fmt.Sprintf("%s:%d\n%s", d.FilePath, d.LineNumber+1, d.LineText)
	default:
		panic(fmt.Sprintf("render: unhandled payload %T", d))
	}
	if opts.ShowDescription {
		row.Description = desc
	}
	return row
}

// Plain renders the row as uncolored text with indentation and a fold marker.
func (r Row) Plain() string {
	var b strings.Builder
	b.WriteString(r.prefix())
	b.WriteString(r.Icon)
	b.WriteString(" ")
	b.WriteString(r.Label)
	if r.Description != "" {
		b.WriteString("  ")
		b.WriteString(r.Description)
	}
	return b.String()
}

// OptionsFrom maps persisted view settings to row options.
func OptionsFrom(s models.ViewSettings) Options {
	return Options{ShowDescription: s.ShowDescription, ShowAlias: s.ShowAlias}
}

// prefix is the indentation and fold marker in front of the icon.
func (r Row) prefix() string {
	indent := strings.Repeat("  ", max(r.Depth, 0))
	switch {
	case !r.Collapsible:
		return indent + "  "
	case r.Collapsed:
		return indent + "▸ "
	default:
		return indent + "▾ "
	}
}
