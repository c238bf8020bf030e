package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/cmd/config"
)

func NewWorkspacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workspaces",
		Short: "List workspaces with saved tab groups",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipSessionAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := config.OpenStore()
			if err != nil {
				return err
			}
			defer st.Close()

			infos, err := st.Workspaces()
			if err != nil {
				return fmt.Errorf("list workspaces: %w", err)
			}
			if len(infos) == 0 {
				fmt.Println("No workspaces have saved state")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WORKSPACE\tKEYS\tUPDATED")
			fmt.Fprintln(w, "---------\t----\t-------")
			for _, info := range infos {
				updated := "-"
				if !info.UpdatedAt.IsZero() {
					updated = info.UpdatedAt.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", info.Name, info.Keys, updated)
			}
			return w.Flush()
		},
	}
}
