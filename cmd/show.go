package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
)

func NewShowCmd(svc **service.Session, display *Display) *cobra.Command {
	var (
		jsonOutput bool
		showKeys   bool
	)

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Show the tab groups of the current workspace",
		Long: `Show the tab groups of the current workspace. Collapsed nodes hide their
contents. Use --keys to print the ids accepted wherever a node is expected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if jsonOutput {
				data, err := s.Export(snapshot.FormatJSON)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(os.Stdout, string(data))
				return err
			}

			if s.Tree.Root().Len() == 0 {
				fmt.Fprintln(os.Stdout, "No tab groups yet. Start with 'tg group add <label>' or 'tg tab add <file>'.")
				return nil
			}
			display.settings = s.Settings
			return display.printer(showKeys).Print(os.Stdout, s.Tree)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the tree as JSON")
	cmd.Flags().BoolVar(&showKeys, "keys", false, "Show node ids")
	return cmd
}
