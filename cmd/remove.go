package cmd

import (
	"errors"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

var removeUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.remove")

func NewRemoveCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <node>...",
		Aliases: []string{"remove"},
		Short:   "Remove nodes and everything inside them",
		Long: `Remove nodes and everything inside them. 'tg restore' puts them back if run
within the restore window.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			removed, err := s.Delete(args)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			removeUlog.Success("Removed").
				Field("count", len(removed)).
				Pretty(fmt.Sprintf("* Removed %d item(s). Run 'tg restore' within %s to undo.", len(removed), s.Config.RestoreWindow)).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}
}

func NewRestoreCmd(svc **service.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Undo the last removal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restored, err := (*svc).RestoreLastDelete()
			switch {
			case errors.Is(err, service.ErrNothingToRestore), errors.Is(err, service.ErrRestoreExpired):
				removeUlog.Info("Nothing restored").
					Field("reason", err.Error()).
					Pretty(err.Error()).
					PrettyOnly().
					Log(cmd.Context())
				return nil
			case err != nil:
				return fmt.Errorf("restore: %w", err)
			}
			removeUlog.Success("Restored").
				Field("count", len(restored)).
				Pretty(fmt.Sprintf("* Restored %d item(s)", len(restored))).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}
}
