package service

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// GroupByDirectory gathers the tabs sitting directly under the root into groups named
// after their directory, reusing root groups that already carry that name. It
// returns the number of tabs moved.
func (s *Session) GroupByDirectory() (int, error) {
	root := s.Tree.Root()
	groups := make(map[string]*tree.Node)
	for _, c := range root.Children() {
		if d, ok := c.Group(); ok {
			if _, seen := groups[d.Label]; !seen {
				groups[d.Label] = c
			}
		}
	}

	moved := 0
	for _, c := range root.Children() {
		d, ok := c.Tab()
		if !ok {
			continue
		}
		label := DirectoryLabel(d.FilePath)
		group, ok := groups[label]
		if !ok {
			group = tree.NewGroup(label, s.Config.DefaultColor)
			root.InsertChild(group, root.IndexOf(c))
			groups[label] = group
		}
		if err := s.Tree.Reparent(c, group, -1); err != nil {
			s.Logger.WithError(err).Warn("Could not group tab")
			continue
		}
		moved++
	}
	return moved, s.commit()
}

// DirectoryLabel turns the directory of path into a title-cased label, so
// /src/tab-groups/x.go becomes "Tab Groups".
func DirectoryLabel(path string) string {
	name := filepath.Base(filepath.Dir(path))
	if name == "." || name == string(filepath.Separator) {
		return "Root"
	}
	name = strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(name))
	if name == "" {
		return "Root"
	}
	return cases.Title(language.English).String(strings.ToLower(name))
}
