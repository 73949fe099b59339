package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/log"
)

func newStatusCmd() *cobra.Command {
	var opts statusOptions

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Report dirty repositories and unpushed branches",
		Aliases: []string{"mrs", "st"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Report dirty repositories and unpushed branches.

Every repository matched by the repos file is inspected. A local branch is
unpushed when its commits are contained in no remote-tracking branch.
For each repository needing attention the path is printed, followed by
"git branch -vv" for the unpushed branches and "git status --short".

Repositories that cannot be read are reported as ERROR lines; they do not
change the exit code.`,
		Example: `  rgit status              # Report repositories needing attention
  rgit status -a           # Include clean repositories
  rgit status -p           # Only print paths, e.g. for xargs
  rgit status --json       # Machine-readable report
  rgit status -vv          # Explain why each branch counts as (un)pushed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("all") {
				opts.all = cfg.Status.ShowClean
			}
			if !cmd.Flags().Changed("jobs") {
				opts.jobs = cfg.Jobs
			}
			// -v output would interleave with the bar
			opts.progress = isatty.IsTerminal(os.Stderr.Fd()) &&
				log.FromContext(cmd.Context()).Level() == log.Normal
			return runStatus(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.paths, "paths", "p", false, "Only print paths of repositories needing attention")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Include repositories that need no attention")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of repositories inspected concurrently")
	cmd.MarkFlagsMutuallyExclusive("paths", "json")

	cmd.RegisterFlagCompletionFunc("jobs", cobra.NoFileCompletions)

	return cmd
}
