package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-tabgroups/pkg/search"
	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

var findUlog = grovelogging.NewUnifiedLogger("grove-tabgroups.cmd.find")

func NewFindCmd(svc **service.Session) *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "find <query>...",
		Short: "Find nodes by label, description, file or line text",
		Long: `Find nodes whose label, description, file path or line text contain every
word of the query, ignoring case.

Examples:
  tg find handler
  tg find --kind line TODO`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &search.Options{Limit: limit}
			if kind != "" {
				k, err := tree.ParseKind(kind)
				if err != nil {
					return err
				}
				opts.Kind = k
			}

			results := search.Search((*svc).Tree, strings.Join(args, " "), opts)
			if len(results) == 0 {
				findUlog.Info("No matches").
					Field("query", strings.Join(args, " ")).
					Pretty("No matches found").
					PrettyOnly().
					Log(cmd.Context())
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPATH\tID")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Node.Kind(), r.Path, r.Node.Key())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only match nodes of this kind: group, tab or line")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of results")
	return cmd
}
