package service

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
	"github.com/mattsolo1/grove-tabgroups/pkg/workspace"
)

// CreateGroup adds a group under the selected container. An empty color uses the
// configured default.
func (s *Session) CreateGroup(parentSel, label string, color tree.Color) (*tree.Node, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	parent, err := s.Lookup(parentSel)
	if err != nil {
		return nil, fmt.Errorf("find parent: %w", err)
	}
	if color == "" {
		color = s.Config.DefaultColor
	}

	group := tree.NewGroup(label, color)
	if err := tree.CanContain(parent, group); err != nil {
		return nil, err
	}
	parent.AddChild(group)
	tree.Reveal(group)

	s.Logger.WithFields(logrus.Fields{
		"label": label,
		"color": color,
	}).Debug("Created group")
	return group, s.commit()
}

// CreateTabs adds one tab per file under the selected container. Files are checked
// concurrently; if any is unreadable nothing is created. A file that already has a
// tab directly under the container reuses it.
func (s *Session) CreateTabs(ctx context.Context, parentSel string, paths []string) ([]*tree.Node, error) {
	parent, err := s.Lookup(parentSel)
	if err != nil {
		return nil, fmt.Errorf("find parent: %w", err)
	}

	refs := make([]tree.FileRef, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			ref, err := statSource(gctx, p)
			if err != nil {
				return err
			}
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tabs := make([]*tree.Node, 0, len(refs))
	byPath := make(map[string]*tree.Node, len(refs))
	for _, ref := range refs {
		if tab, ok := byPath[ref.Path]; ok {
			tabs = append(tabs, tab)
			continue
		}
		tab := findTab(parent, ref.Path)
		if tab == nil {
			tab = tree.NewTab(ref)
			if err := tree.CanContain(parent, tab); err != nil {
				return nil, err
			}
		}
		byPath[ref.Path] = tab
		tabs = append(tabs, tab)
	}
	for _, tab := range tabs {
		if tab.Parent() == nil {
			parent.AddChild(tab)
		}
	}
	if len(tabs) > 0 {
		tree.Reveal(tabs[0])
	}

	s.Logger.WithField("count", len(tabs)).Debug("Created tabs")
	return tabs, s.commit()
}

// CreateLine adds a line node for a zero-based line of path. The selector may name
// the tab for that file, a line inside it, or a container; in the last case the
// container's tab for the file is reused or a new one is created. The excerpt is read
// before the tree is touched, so a failed read leaves the tree unchanged.
func (s *Session) CreateLine(ctx context.Context, parentSel, path string, lineNumber int) (*tree.Node, error) {
	parent, err := s.Lookup(parentSel)
	if err != nil {
		return nil, fmt.Errorf("find parent: %w", err)
	}
	if parent.Kind() == tree.KindLine {
		parent = parent.Parent()
	}

	ref, err := statSource(ctx, path)
	if err != nil {
		return nil, err
	}

	var tab *tree.Node
	if data, ok := parent.Tab(); ok {
		if data.FilePath != ref.Path {
			return nil, fmt.Errorf("%w: line of %s cannot be placed under tab of %s", tree.ErrInvalidContainment, ref.Path, data.FilePath)
		}
		tab = parent
	} else {
		tab = findTab(parent, ref.Path)
	}
	if tab != nil {
		for _, c := range tab.Children() {
			if d, ok := c.Line(); ok && d.LineNumber == lineNumber {
				return c, nil
			}
		}
	}

	text, err := s.readExcerpt(ctx, ref.Path, lineNumber)
	if err != nil {
		return nil, err
	}

	line := tree.NewLine(ref, lineNumber, text)
	if tab == nil {
		tab = tree.NewTab(ref)
		if err := tree.CanContain(parent, tab); err != nil {
			return nil, err
		}
		parent.AddChild(tab)
	}
	tab.AddChild(line)
	tree.Reveal(line)

	s.Logger.WithFields(logrus.Fields{
		"file": ref.Path,
		"line": lineNumber,
	}).Debug("Created line")
	return line, s.commit()
}

type excerpt struct {
	text string
	err  error
}

// readExcerpt reads the line off the event path and hands the result back once
// available. Cancellation abandons the creation.
func (s *Session) readExcerpt(ctx context.Context, path string, lineNumber int) (string, error) {
	result := make(chan excerpt, 1)
	go func() {
		text, err := readLine(path, lineNumber)
		result <- excerpt{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, ctx.Err())
	case r := <-result:
		if r.err != nil {
			return "", r.err
		}
		return truncate(strings.TrimSpace(r.text), s.Config.ExcerptLength), nil
	}
}

func readLine(path string, lineNumber int) (string, error) {
	if lineNumber < 0 {
		return "", fmt.Errorf("%w: negative line %d", ErrSourceUnavailable, lineNumber)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; scanner.Scan(); i++ {
		if i == lineNumber {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return "", fmt.Errorf("%w: %s has no line %d", ErrSourceUnavailable, path, lineNumber+1)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// statSource checks that path is a readable regular file and captures its workspace.
func statSource(ctx context.Context, path string) (tree.FileRef, error) {
	if err := ctx.Err(); err != nil {
		return tree.FileRef{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return tree.FileRef{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return tree.FileRef{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if info.IsDir() {
		return tree.FileRef{}, fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, abs)
	}

	ref := tree.FileRef{Path: abs, URI: tree.URIFor(abs)}
	if ws, err := workspace.Detect(abs); err == nil {
		ref.WorkspaceRef = ws.Root
	}
	return ref, nil
}

func findTab(parent *tree.Node, path string) *tree.Node {
	for _, c := range parent.Children() {
		if d, ok := c.Tab(); ok && d.FilePath == path {
			return c
		}
	}
	return nil
}
