package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/cmd/config"
	"github.com/mattsolo1/grove-tabgroups/internal/tui/browser"
	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

func NewTuiCmd(svc **service.Session, display *Display) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and rearrange tab groups interactively",
		Long: `Browse and rearrange tab groups interactively. Pressing enter on a tab or line
prints its location, so the browser can feed an editor:

  $EDITOR "$(tg tui)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			name := ""
			if ws, err := config.CurrentWorkspace(); err == nil {
				name = ws.Name
			}

			// The browser is the display while it runs.
			display.Quiet = true
			model := browser.New(s, name)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			if m, ok := final.(browser.Model); ok && m.Selected() != "" {
				fmt.Fprintln(os.Stdout, m.Selected())
			}
			return nil
		},
	}
}
