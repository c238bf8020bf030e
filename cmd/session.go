package cmd

import "github.com/spf13/cobra"

// skipSessionAnnotation marks commands that run without loading a workspace tree.
const skipSessionAnnotation = "tg.skip-session"

// NeedsSession reports whether cmd operates on the current workspace's tree.
func NeedsSession(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipSessionAnnotation] == "true" {
			return false
		}
	}
	return true
}
