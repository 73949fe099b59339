package git

import (
	"context"
	"io"
)

// ReportOptions controls git's own human-readable output.
type ReportOptions struct {
	// Color forces git to emit colors even though it writes to a pipe.
	Color bool
}

func (o ReportOptions) args(args ...string) []string {
	if o.Color {
		return append([]string{"-c", "color.ui=always"}, args...)
	}
	return args
}

// BranchVerbose writes `git branch -vv --list <branches...>` for repo to w.
func BranchVerbose(ctx context.Context, repo string, branches []string, w io.Writer, opts ReportOptions) error {
	args := opts.args("branch", "-vv", "--list")
	args = append(args, branches...)
	return streamGit(ctx, repo, w, args...)
}

// StatusShort writes `git status --short` for repo to w.
func StatusShort(ctx context.Context, repo string, w io.Writer, opts ReportOptions) error {
	return streamGit(ctx, repo, w, opts.args("status", "--short")...)
}
