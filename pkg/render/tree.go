package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

var palette = map[tree.Color]lipgloss.Color{
	tree.ColorRed:    lipgloss.Color("#e06c75"),
	tree.ColorOrange: lipgloss.Color("#d19a66"),
	tree.ColorYellow: lipgloss.Color("#e5c07b"),
	tree.ColorGreen:  lipgloss.Color("#98c379"),
	tree.ColorBlue:   lipgloss.Color("#61afef"),
	tree.ColorPurple: lipgloss.Color("#c678dd"),
	tree.ColorPink:   lipgloss.Color("#ff79c6"),
	tree.ColorGray:   lipgloss.Color("#7f848e"),
}

var (
	descStyle = lipgloss.NewStyle().Faint(true)
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370"))
)

// Visible lists the nodes of t in display order; children of collapsed nodes are
// omitted.
func Visible(t *tree.Tree) []*tree.Node {
	var nodes []*tree.Node
	stack := reversed(t.Root().Children())
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, n)
		if !n.Collapsed() {
			stack = append(stack, reversed(n.Children())...)
		}
	}
	return nodes
}

// Rows builds a row for every visible node.
func Rows(t *tree.Tree, opts Options) []Row {
	nodes := Visible(t)
	rows := make([]Row, len(nodes))
	for i, n := range nodes {
		rows[i] = NewRow(n, opts)
	}
	return rows
}

func reversed(nodes []*tree.Node) []*tree.Node {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// Printer writes a tree as indented text.
type Printer struct {
	Options Options
	// Color enables palette styling.
	Color bool
	// ShowKeys appends each node's logical key for use as a selector.
	ShowKeys bool
}

// Print writes every visible row of t to w.
func (p Printer) Print(w io.Writer, t *tree.Tree) error {
	for _, row := range Rows(t, p.Options) {
		if _, err := fmt.Fprintln(w, p.Line(row)); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single row.
func (p Printer) Line(row Row) string {
	if !p.Color {
		text := row.Plain()
		if p.ShowKeys {
			text += "  [" + key(row.ID) + "]"
		}
		return text
	}

	var b strings.Builder
	b.WriteString(row.prefix())
	label := row.Icon + " " + row.Label
	if c, ok := palette[row.Color]; ok {
		label = lipgloss.NewStyle().Foreground(c).Bold(row.Kind == tree.KindGroup).Render(label)
	}
	b.WriteString(label)
	if row.Description != "" {
		b.WriteString("  ")
		b.WriteString(descStyle.Render(row.Description))
	}
	if p.ShowKeys {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render("[" + key(row.ID) + "]"))
	}
	return b.String()
}

func key(id string) string {
	parsed, err := tree.ParseID(id)
	if err != nil {
		return id
	}
	return parsed.Key()
}
