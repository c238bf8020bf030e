package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
)

var transferUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.transfer")

func NewExportCmd(svc **service.Session) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tree as JSON, YAML or TOML",
		Long: `Write the tree of the current workspace as JSON, YAML or TOML, to stdout or a file.

Examples:
  tg export > groups.json
  tg export --format yaml -o groups.yaml
  tg export -o groups.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			data, err := (*svc).Export(f)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" {
				_, err := os.Stdout.Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			transferUlog.Success("Exported").
				Field("path", output).
				Field("format", string(f)).
				Pretty(fmt.Sprintf("* Exported to %s", output)).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: json, yaml or toml (default from file extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func NewImportCmd(svc **service.Session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the tree with an exported one",
		Long: `Replace the tree of the current workspace with one written by 'tg export'.
The current tree is kept if the file cannot be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var (
				data []byte
				err  error
			)
			if path == "-" {
				data, err = io.ReadAll(os.Stdin)
				path = ""
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			f, err := resolveFormat(format, path)
			if err != nil {
				return err
			}
			s := *svc
			if err := s.Import(data, f); err != nil {
				return err
			}
			transferUlog.Success("Imported").
				Field("path", args[0]).
				Field("nodes", s.Tree.Size()).
				Pretty(fmt.Sprintf("* Imported %d item(s)", s.Tree.Size())).
				PrettyOnly().
				Log(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json, yaml or toml (default from file extension, else json)")
	return cmd
}

// resolveFormat prefers the explicit flag, then the file extension.
func resolveFormat(flag, path string) (snapshot.Format, error) {
	if flag == "" && path != "" {
		flag = strings.TrimPrefix(filepath.Ext(path), ".")
		switch flag {
		case "yaml", "yml", "toml":
		default:
			flag = ""
		}
	}
	return snapshot.ParseFormat(flag)
}
