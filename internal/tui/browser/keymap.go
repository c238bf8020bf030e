package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattsolo1/grove-core/tui/keymap"
)

// KeyMap defines the keybindings for the tab group browser
type KeyMap struct {
	keymap.Base
	Toggle            key.Binding
	Expand            key.Binding
	Collapse          key.Binding
	CollapseAll       key.Binding
	GoToTop           key.Binding
	GoToBottom        key.Binding
	Cut               key.Binding
	Paste             key.Binding
	Delete            key.Binding
	Restore           key.Binding
	ToggleAlias       key.Binding
	ToggleDescription key.Binding
	Open              key.Binding
	Copy              key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	baseHelp := k.Base.FullHelp()
	return append(baseHelp, []key.Binding{
		k.Toggle,
		k.Expand,
		k.Collapse,
		k.CollapseAll,
		k.GoToTop,
		k.GoToBottom,
	}, []key.Binding{
		k.Cut,
		k.Paste,
		k.Delete,
		k.Restore,
	}, []key.Binding{
		k.ToggleAlias,
		k.ToggleDescription,
		k.Open,
		k.Copy,
	})
}

var keys = KeyMap{
	Base: keymap.NewBase(),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "fold/unfold"),
	),
	Expand: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse or go to parent"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("Z"),
		key.WithHelp("Z", "collapse/expand all"),
	),
	GoToTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	GoToBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Cut: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "mark for move"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "drop marked here"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove"),
	),
	Restore: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo remove"),
	),
	ToggleAlias: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle aliases"),
	),
	ToggleDescription: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "toggle descriptions"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select file and quit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy file location"),
	),
}
