// Package search finds nodes in a tab group tree by their visible text.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

const defaultLimit = 50

// Options narrows a search.
type Options struct {
	// Kind restricts results to one node kind. Empty matches every kind.
	Kind  tree.Kind
	Limit int
}

// Result is one matching node.
type Result struct {
	Node *tree.Node
	// Path is the display-label path from the root, joined with " / ".
	Path string
	// Field names where the first term matched: label, description, file or text.
	Field string
}

// Search returns nodes, in tree order, whose label, description, file path or line
// text contain every whitespace-separated term of query. Matching ignores case.
func Search(t *tree.Tree, query string, opts *Options) []Result {
	if opts == nil {
		opts = &Options{}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	fold := cases.Fold()
	terms := strings.Fields(fold.String(query))
	if len(terms) == 0 {
		return nil
	}

	var results []Result
	for n := range t.Root().Collect(nil) {
		if n == t.Root() || (opts.Kind != "" && n.Kind() != opts.Kind) {
			continue
		}
		fields := fieldsOf(n)
		field, ok := matchAll(fold, fields, terms)
		if !ok {
			continue
		}
		results = append(results, Result{Node: n, Path: labelPath(n), Field: field})
		if len(results) == limit {
			break
		}
	}
	return results
}

type field struct {
	name, text string
}

func fieldsOf(n *tree.Node) []field {
	fields := []field{{"label", n.DisplayLabel(true)}}
	switch d := n.Data().(type) {
	case *tree.GroupData:
		fields = append(fields, field{"description", d.Description})
	case *tree.TabData:
		fields = append(fields, field{"description", d.Description}, field{"file", d.FilePath})
	case *tree.LineData:
		fields = append(fields,
			field{"description", d.Description},
			field{"file", d.FilePath},
			field{"text", d.LineText},
		)
	}
	return fields
}

// matchAll reports whether every term occurs in some field, and the field holding
// the first term.
func matchAll(fold cases.Caser, fields []field, terms []string) (string, bool) {
	folded := make([]string, len(fields))
	for i, f := range fields {
		folded[i] = fold.String(f.text)
	}

	first := ""
	for i, term := range terms {
		hit := ""
		for j, text := range folded {
			if strings.Contains(text, term) {
				hit = fields[j].name
				break
			}
		}
		if hit == "" {
			return "", false
		}
		if i == 0 {
			first = hit
		}
	}
	return first, true
}

func labelPath(n *tree.Node) string {
	var parts []string
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		parts = append([]string{cur.DisplayLabel(true)}, parts...)
	}
	return strings.Join(parts, " / ")
}
