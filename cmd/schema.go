package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of exported snapshots",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipSessionAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := snapshot.Schema()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}
			_, err = fmt.Fprintln(os.Stdout, string(data))
			return err
		},
	}
}
