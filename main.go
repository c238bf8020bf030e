package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/cmd"
	"github.com/mattsolo1/grove-tabgroups/cmd/config"
	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/store"
)

var (
	svc     *service.Session
	st      *store.Store
	display = &cmd.Display{Out: os.Stdout}
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"tg",
		"Workspace-scoped tab groups, tabs and line bookmarks",
	)
	config.AddGlobalFlags(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&display.Quiet, "quiet", "q", false, "Do not print the tree after changes")
	rootCmd.PersistentFlags().BoolVar(&display.NoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()
		if !cmd.NeedsSession(c) {
			return nil
		}

		var err error
		svc, st, err = config.InitSession(display)
		if err != nil {
			return err
		}
		display.Arm()
		return nil
	}
	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if st == nil {
			return nil
		}
		defer st.Close()
		return display.Flush()
	}

	rootCmd.AddCommand(cmd.NewGroupCmd(&svc))
	rootCmd.AddCommand(cmd.NewTabCmd(&svc))
	rootCmd.AddCommand(cmd.NewLineCmd(&svc))
	rootCmd.AddCommand(cmd.NewRenameCmd(&svc))
	rootCmd.AddCommand(cmd.NewColorCmd(&svc))
	rootCmd.AddCommand(cmd.NewDescribeCmd(&svc))
	rootCmd.AddCommand(cmd.NewRemoveCmd(&svc))
	rootCmd.AddCommand(cmd.NewRestoreCmd(&svc))
	rootCmd.AddCommand(cmd.NewMoveCmd(&svc))
	rootCmd.AddCommand(cmd.NewFoldCmd(&svc))
	rootCmd.AddCommand(cmd.NewUnfoldCmd(&svc))
	rootCmd.AddCommand(cmd.NewRevealCmd(&svc))
	rootCmd.AddCommand(cmd.NewShowCmd(&svc, display))
	rootCmd.AddCommand(cmd.NewViewCmd(&svc))
	rootCmd.AddCommand(cmd.NewFindCmd(&svc))
	rootCmd.AddCommand(cmd.NewResetCmd(&svc))
	rootCmd.AddCommand(cmd.NewOrganizeCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewImportCmd(&svc))
	rootCmd.AddCommand(cmd.NewTuiCmd(&svc, display))
	rootCmd.AddCommand(cmd.NewWorkspacesCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if st != nil {
			st.Close()
		}
		stop()
		os.Exit(1)
	}
}
