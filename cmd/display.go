package cmd

import (
	"io"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/render"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Display is the command line's view of the tree. Mutating commands print the
// refreshed tree once they finish.
type Display struct {
	Out     io.Writer
	Quiet   bool
	NoColor bool

	armed    bool
	pending  bool
	tree     *tree.Tree
	settings models.ViewSettings
}

// Refresh records the latest state. Refreshes before Arm, such as the one from the
// initial load, are ignored.
func (d *Display) Refresh(t *tree.Tree, settings models.ViewSettings) {
	if !d.armed {
		return
	}
	d.pending = true
	d.tree = t
	d.settings = settings
}

// Arm starts tracking refreshes.
func (d *Display) Arm() { d.armed = true }

// Flush prints the tree if a mutation refreshed it.
func (d *Display) Flush() error {
	if !d.pending || d.Quiet {
		return nil
	}
	d.pending = false
	return d.printer(false).Print(d.Out, d.tree)
}

func (d *Display) printer(keys bool) render.Printer {
	return render.Printer{
		Options:  render.OptionsFrom(d.settings),
		Color:    !d.NoColor,
		ShowKeys: keys,
	}
}
