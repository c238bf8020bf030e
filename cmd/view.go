package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

func NewViewCmd(svc **service.Session) *cobra.Command {
	var (
		description bool
		alias       bool
		collapseAll bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show or change display settings",
		Long: `Show or change the display settings of the current workspace. Without flags
the current settings are listed.

Examples:
  tg view --description=false    # Hide descriptions
  tg view --alias=false          # Show file names instead of aliases
  tg view --collapse-all         # Collapse every node`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			flags := cmd.Flags()
			changed := false

			if flags.Changed("description") {
				if err := s.SetShowDescription(description); err != nil {
					return err
				}
				changed = true
			}
			if flags.Changed("alias") {
				if err := s.SetShowAlias(alias); err != nil {
					return err
				}
				changed = true
			}
			if flags.Changed("collapse-all") {
				if err := s.SetCollapseAll(collapseAll); err != nil {
					return err
				}
				changed = true
			}
			if changed {
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SETTING\tVALUE")
			fmt.Fprintln(w, "-------\t-----")
			fmt.Fprintf(w, "description\t%t\n", s.Settings.ShowDescription)
			fmt.Fprintf(w, "alias\t%t\n", s.Settings.ShowAlias)
			fmt.Fprintf(w, "collapse-all\t%t\n", s.Settings.CollapseAll)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&description, "description", true, "Show descriptions next to labels")
	cmd.Flags().BoolVar(&alias, "alias", true, "Show aliases instead of file names and excerpts")
	cmd.Flags().BoolVar(&collapseAll, "collapse-all", false, "Collapse every node")
	return cmd
}
