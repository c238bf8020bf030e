package cmd

import (
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

var resetUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.reset")

func NewResetCmd(svc **service.Session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every group, tab and line of the current workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if !force {
				return fmt.Errorf("this removes %d item(s); rerun with --force to confirm", s.Tree.Size())
			}
			if err := s.Reset(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			resetUlog.Success("Reset").
				Pretty("* Removed all tab groups").
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Confirm the reset")
	return cmd
}

func NewOrganizeCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "organize",
		Short: "Group top-level tabs by directory",
		Long: `Move every top-level tab into a group named after its directory. Groups with
that name at the top level are reused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := (*svc).GroupByDirectory()
			if err != nil {
				return fmt.Errorf("organize: %w", err)
			}
			resetUlog.Success("Organized").
				Field("moved", moved).
				Pretty(fmt.Sprintf("* Grouped %d tab(s)", moved)).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}
}
