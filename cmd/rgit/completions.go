package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/recent"
)

// completeRecentBranches completes the filter argument of "rgit recent"
// with branch names in recency order. Completion runs without
// PersistentPreRunE, so the working directory is used directly.
func completeRecentBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	names, err := recentBranchNames(ctx, backend, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

func recentBranchNames(ctx context.Context, b git.Backend, dir string) ([]string, error) {
	repo, err := b.Discover(ctx, dir)
	if err != nil {
		return nil, err
	}
	usages, err := recent.Load(ctx, b, repo, time.Now())
	if err != nil {
		return nil, err
	}

	names := make([]string, len(usages))
	for i, u := range usages {
		names[i] = u.Branch
	}
	return names, nil
}
