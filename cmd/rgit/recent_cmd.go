package main

import (
	"github.com/spf13/cobra"
)

func newRecentCmd() *cobra.Command {
	var opts recentOptions

	cmd := &cobra.Command{
		Use:     "recent [filter]",
		Short:   "List recently checked-out branches",
		Aliases: []string{"rb"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the branches of the current repository, most recently checked out first.

The HEAD reflog is scanned for checkouts and branch renames. Each branch
appears once, at its latest use; branches that were deleted since are
skipped. The optional filter fuzzy-matches branch names.`,
		Example: `  rgit recent                  # Table of recent branches
  rgit recent feat             # Only branches fuzzy-matching "feat"
  rgit recent -n 5             # The five most recent
  rgit recent -c               # Copy the most recent match to the clipboard
  git checkout $(rgit recent -i)  # Pick interactively`,
		ValidArgsFunction: completeRecentBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.filter = args[0]
			}
			if !cmd.Flags().Changed("limit") {
				opts.limit = cfg.Recent.Limit
			}
			return runRecent(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of branches (0 = all)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Pick a branch interactively and print it")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the first branch to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive", "copy")

	cmd.RegisterFlagCompletionFunc("limit", cobra.NoFileCompletions)

	return cmd
}
