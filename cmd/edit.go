package cmd

import (
	"context"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

var editUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.edit")

func NewRenameCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <node> <label>",
		Short: "Rename a group or set the alias of a tab or line",
		Long: `Rename a group, or give a tab or line an alias shown instead of its file
name or excerpt. An empty label clears an alias.

Examples:
  tg rename Work Office
  tg rename Work/main.go "entry point"
  tg rename Work/main.go ""`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := (*svc).Rename(args[0], args[1])
			if err != nil {
				return fmt.Errorf("rename: %w", err)
			}
			editUlog.Success("Renamed").
				Field("id", n.Key()).
				Field("label", args[1]).
				Pretty(fmt.Sprintf("* Renamed %s", n.DisplayLabel(true))).
				PrettyOnly().
				Log(context.Background())
			return nil
		},
	}
}

func NewColorCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "color <group> <color>",
		Short: "Change the color of a group",
		Long:  "Change the color of a group. Colors: " + paletteList(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := tree.ParseColor(args[1])
			if err != nil {
				return err
			}
			n, err := (*svc).SetColor(args[0], c)
			if err != nil {
				return fmt.Errorf("set color: %w", err)
			}
			editUlog.Success("Color changed").
				Field("id", n.Key()).
				Field("color", string(c)).
				Pretty(fmt.Sprintf("* %s is now %s", n.DisplayLabel(true), c)).
				PrettyOnly().
				Log(context.Background())
			return nil
		},
	}
}

func NewDescribeCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <node> [text...]",
		Short: "Set the description shown next to a node",
		Long: `Set the description shown next to a node. Without text the description is
cleared.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			n, err := (*svc).Describe(args[0], text)
			if err != nil {
				return fmt.Errorf("describe: %w", err)
			}
			editUlog.Success("Description updated").
				Field("id", n.Key()).
				Field("description", text).
				PrettyOnly().
				Log(context.Background())
			return nil
		},
	}
}

func paletteList() string {
	names := make([]string, len(tree.Palette))
	for i, c := range tree.Palette {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
