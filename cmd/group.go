package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

var groupUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.group")

func NewGroupCmd(svc **service.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage tab groups",
	}
	cmd.AddCommand(newGroupAddCmd(svc))
	return cmd
}

func newGroupAddCmd(svc **service.Session) *cobra.Command {
	var (
		parent string
		color  string
	)

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Create a group",
		Long: `Create a group at the top level or inside another group.

Examples:
  tg group add Work                  # Top-level group
  tg group add Backend --in Work     # Nested group
  tg group add Urgent --color red    # Colored group`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := tree.ParseColor(color)
			if err != nil {
				return err
			}
			if color == "" {
				c = ""
			}

			group, err := (*svc).CreateGroup(parent, args[0], c)
			if err != nil {
				return fmt.Errorf("create group: %w", err)
			}

			data, _ := group.Group()
			groupUlog.Success("Group created").
				Field("id", group.Key()).
				Field("label", data.Label).
				Field("color", string(data.Color)).
				Pretty(fmt.Sprintf("* Created group %s", data.Label)).
				PrettyOnly().
				Log(context.Background())
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "in", "", "Parent group (label path or id)")
	cmd.Flags().StringVar(&color, "color", "", "Group color: "+paletteList())
	return cmd
}
