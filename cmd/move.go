package cmd

import (
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

var moveUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.move")

func NewMoveCmd(svc **service.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mv <node>... <target>",
		Aliases: []string{"move"},
		Short:   "Move nodes onto a target",
		Long: `Move nodes the way a drag and drop would. Dropping on a group appends inside
it; dropping on a tab or line places the nodes next to it, except that lines dropped
on a tab of the same file go inside. Use "/" as the target for the top level.

Items that cannot move, such as a group dropped into itself, are skipped and the rest
still move. A drop that breaks nesting rules, such as a line dropped into a group,
still moves the valid items but exits with an error naming the rejected ones.

Examples:
  tg mv main.go Work
  tg mv Work/a.go Work/b.go /
  tg mv Work/main.go/L12 Play/main.go`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, target := args[:len(args)-1], args[len(args)-1]

			res, err := (*svc).Move(target, sources)
			if err != nil {
				return fmt.Errorf("move: %w", err)
			}

			if !res.Succeeded {
				return fmt.Errorf("move: moved %d item(s), rejected: %s", len(res.Moved), res.Message)
			}

			pretty := fmt.Sprintf("* Moved %d item(s)", len(res.Moved))
			if len(res.Skipped) > 0 {
				pretty += fmt.Sprintf(", skipped %d:\n%s", len(res.Skipped), service.SkipSummary(res))
			}
			moveUlog.Success("Moved").
				Field("moved", len(res.Moved)).
				Field("skipped", len(res.Skipped)).
				Field("target", target).
				Pretty(pretty).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}
	return cmd
}
