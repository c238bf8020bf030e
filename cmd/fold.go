package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

func NewFoldCmd(svc **service.Session) *cobra.Command {
	return newFoldCmd(svc, true)
}

func NewUnfoldCmd(svc **service.Session) *cobra.Command {
	return newFoldCmd(svc, false)
}

func newFoldCmd(svc **service.Session, collapsed bool) *cobra.Command {
	var recursive bool

	use, short := "fold [node]", "Collapse a node"
	if !collapsed {
		use, short = "unfold [node]", "Expand a node and the groups above it"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `. With --recursive everything inside the node follows; without a
node, --recursive applies to the whole tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := ""
			if len(args) == 1 {
				sel = args[0]
			} else if !recursive {
				return fmt.Errorf("specify a node or use --recursive")
			}
			if _, err := (*svc).Fold(sel, collapsed, recursive); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Apply to every node inside")
	return cmd
}

func NewRevealCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <node>",
		Short: "Expand the groups above a node so it is visible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := (*svc).Reveal(args[0])
			return err
		},
	}
}
