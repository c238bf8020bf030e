package tree

import (
	"fmt"
	"path/filepath"
)

// Payload is the variant data of a node. It is implemented only by the four data
// types in this package, so a type switch over them is exhaustive.
type Payload interface {
	Kind() Kind
	payload()
}

// TreeData is the empty payload of the root node.
type TreeData struct{}

// GroupData is the payload of a labeled container.
type GroupData struct {
	Label       string
	Color       Color
	Description string
}

// TabData is the payload of a node referencing a document.
type TabData struct {
	FilePath string
	FileURI  string
	// Label is an alias shown instead of the file name when set.
	Label        string
	Description  string
	WorkspaceRef string
}

// LineData is the payload of a node referencing one line of its tab's document.
type LineData struct {
	FilePath    string
	FileURI     string
	LineNumber  int // zero-based
	LineText    string
	Label       string
	Description string
}

func (*TreeData) Kind() Kind  { return KindTree }
func (*GroupData) Kind() Kind { return KindGroup }
func (*TabData) Kind() Kind   { return KindTab }
func (*LineData) Kind() Kind  { return KindLine }

func (*TreeData) payload()  {}
func (*GroupData) payload() {}
func (*TabData) payload()   {}
func (*LineData) payload()  {}

// FileRef locates a document for tab and line creation.
type FileRef struct {
	Path         string
	URI          string
	WorkspaceRef string
}

// URIFor returns a file URI for an absolute path.
func URIFor(path string) string {
	return "file://" + filepath.ToSlash(path)
}

// displayLabel derives the row label for a payload. Aliases win unless hidden.
func displayLabel(p Payload, showAlias bool) string {
	switch d := p.(type) {
	case *TreeData:
		return ""
	case *GroupData:
		return d.Label
	case *TabData:
		if showAlias && d.Label != "" {
			return d.Label
		}
		return filepath.Base(d.FilePath)
	case *LineData:
		if showAlias && d.Label != "" {
			return d.Label
		}
		return fmt.Sprintf("%d: %s", d.LineNumber+1, d.LineText)
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", p))
	}
}

// filePathOf returns the document path carried by tab and line payloads.
func filePathOf(p Payload) (string, bool) {
	switch d := p.(type) {
	case *TabData:
		return d.FilePath, true
	case *LineData:
		return d.FilePath, true
	case *TreeData, *GroupData:
		return "", false
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", p))
	}
}
