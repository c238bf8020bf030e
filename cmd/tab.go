package cmd

import (
	"fmt"
	"strconv"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
)

var tabUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.tab")

func NewTabCmd(svc **service.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tab",
		Short: "Manage tabs",
	}
	cmd.AddCommand(newTabAddCmd(svc))
	return cmd
}

func newTabAddCmd(svc **service.Session) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Add files as tabs",
		Long: `Add one tab per file. Every file must exist; if any is missing no tab is
added. A file that already has a tab in the same place reuses it.

Examples:
  tg tab add main.go go.mod
  tg tab add --in Work/Backend server.go`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tabs, err := (*svc).CreateTabs(cmd.Context(), parent, args)
			if err != nil {
				return fmt.Errorf("add tabs: %w", err)
			}

			names := make([]string, len(tabs))
			for i, tab := range tabs {
				names[i] = tab.DisplayLabel(true)
			}
			tabUlog.Success("Tabs added").
				Field("count", len(tabs)).
				Field("parent", parent).
				Pretty(fmt.Sprintf("* Added %s", strings.Join(names, ", "))).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "in", "", "Parent group (label path or id)")
	return cmd
}

func NewLineCmd(svc **service.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Manage line bookmarks",
	}
	cmd.AddCommand(newLineAddCmd(svc))
	return cmd
}

func newLineAddCmd(svc **service.Session) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "add <file>:<line>",
		Short: "Bookmark a line of a file",
		Long: `Bookmark a line of a file under its tab. Line numbers start at 1. The tab is
created when the parent does not have one for the file yet.

Examples:
  tg line add main.go:12
  tg line add --in Work server.go:40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, lineNumber, err := parseFileLine(args[0])
			if err != nil {
				return err
			}

			line, err := (*svc).CreateLine(cmd.Context(), parent, path, lineNumber-1)
			if err != nil {
				return fmt.Errorf("add line: %w", err)
			}

			tabUlog.Success("Line added").
				Field("id", line.Key()).
				Field("file", path).
				Field("line", lineNumber).
				Pretty(fmt.Sprintf("* Added %s", line.DisplayLabel(true))).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "in", "", "Parent group or tab (label path or id)")
	return cmd
}

// parseFileLine splits "path:line" on the last colon.
func parseFileLine(arg string) (string, int, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return "", 0, fmt.Errorf("expected <file>:<line>, got %q", arg)
	}
	n, err := strconv.Atoi(arg[i+1:])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("invalid line number in %q", arg)
	}
	return arg[:i], n, nil
}
