package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
)

func newReposCmd() *cobra.Command {
	var (
		jsonOutput bool
		fullPaths  bool
	)

	cmd := &cobra.Command{
		Use:     "repos",
		Short:   "List repositories matched by the repos file",
		Aliases: []string{"r"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the repositories "rgit status" would inspect.

The repos file is read, include globs are expanded, excludes are applied
and the result is printed sorted, one path per line. Use "rgit doctor"
to find rules that match nothing.`,
		Example: `  rgit repos             # List repositories
  rgit repos --full      # Do not shorten the home directory to ~
  rgit repos --json      # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repos, err := resolveRepos(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				if repos == nil {
					repos = []string{}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(repos)
			}

			if len(repos) == 0 {
				log.FromContext(ctx).Printf("No repositories matched. Edit %s or run 'rgit doctor'.\n", displayPath(cfg.ReposFilePath(home)))
				return nil
			}

			for _, repo := range repos {
				if fullPaths {
					out.Println(repo)
				} else {
					out.Println(displayPath(repo))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&fullPaths, "full", false, "Print absolute paths")

	return cmd
}
