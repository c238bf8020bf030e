// Package snapshot converts a tree to and from the nested record used for persistence.
package snapshot

import (
	"fmt"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Record is the persisted form of one node. Children is omitted when empty.
type Record struct {
	Kind     tree.Kind `json:"kind" yaml:"kind" toml:"kind"`
	Payload  Payload   `json:"payload" yaml:"payload" toml:"payload"`
	Children []Record  `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Payload carries id plus the fields of the node's variant.
type Payload struct {
	ID           string     `json:"id" yaml:"id" toml:"id"`
	Label        string     `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Color        tree.Color `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Collapsed    bool       `json:"collapsed,omitempty" yaml:"collapsed,omitempty" toml:"collapsed,omitempty"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	FilePath     string     `json:"filePath,omitempty" yaml:"filePath,omitempty" toml:"filePath,omitempty"`
	FileURI      string     `json:"fileUri,omitempty" yaml:"fileUri,omitempty" toml:"fileUri,omitempty"`
	WorkspaceRef string     `json:"workspaceRef,omitempty" yaml:"workspaceRef,omitempty" toml:"workspaceRef,omitempty"`
	LineNumber   *int       `json:"lineNumber,omitempty" yaml:"lineNumber,omitempty" toml:"lineNumber"`
	LineText     string     `json:"lineText,omitempty" yaml:"lineText,omitempty" toml:"lineText,omitempty"`
}

// Encode snapshots the whole tree, root included.
func Encode(t *tree.Tree) Record {
	return EncodeNode(t.Root())
}

// EncodeNode snapshots n and its descendants depth-first.
func EncodeNode(n *tree.Node) Record {
	rec := Record{Kind: n.Kind(), Payload: payloadOf(n)}
	for _, c := range n.Children() {
		rec.Children = append(rec.Children, EncodeNode(c))
	}
	return rec
}

func payloadOf(n *tree.Node) Payload {
	p := Payload{ID: n.ID()}
	switch d := n.Data().(type) {
	case *tree.TreeData:
	case *tree.GroupData:
		p.Label = d.Label
		p.Color = d.Color
		p.Collapsed = n.Collapsed()
		p.Description = d.Description
	case *tree.TabData:
		p.FilePath = d.FilePath
		p.FileURI = d.FileURI
		p.WorkspaceRef = d.WorkspaceRef
		p.Label = d.Label
		p.Description = d.Description
		p.Collapsed = n.Collapsed()
	case *tree.LineData:
		line := d.LineNumber
		p.FilePath = d.FilePath
		p.FileURI = d.FileURI
		p.LineNumber = &line
		p.LineText = d.LineText
		p.Label = d.Label
		p.Description = d.Description
	default:
		panic(fmt.Sprintf("snapshot: unhandled payload %T", d))
	}
	return p
}
