package status

import (
	"cmp"
	"context"
	"slices"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
)

// RepoStatus is the outcome of inspecting one repository. The --json shape
// lives with the status command.
type RepoStatus struct {
	Path     string
	Dirty    bool
	Unpushed []string
	// Err is set when the repository could not be inspected.
	Err error
}

// NeedsAttention reports whether the repository is dirty, has unpushed
// branches or failed to load.
func (s RepoStatus) NeedsAttention() bool {
	return s.Err != nil || s.Dirty || len(s.Unpushed) > 0
}

// remoteHead is a remote-tracking branch head, keyed by commit.
type remoteHead struct {
	commit string
	name   string
}

// Detect inspects the repository at path.
// Errors are *git.RepoAccessError or *git.QueryError and are not retried.
func Detect(ctx context.Context, backend git.Backend, path string) (RepoStatus, error) {
	l := log.FromContext(ctx)

	root, err := backend.Discover(ctx, path)
	if err != nil {
		return RepoStatus{Path: path}, err
	}

	dirty, err := backend.IsDirty(ctx, root)
	if err != nil {
		return RepoStatus{Path: path}, err
	}

	remotes, err := backend.ListBranches(ctx, root, git.Remote)
	if err != nil {
		return RepoStatus{Path: path}, err
	}

	byCommit := make(map[string]string, len(remotes))
	for _, r := range remotes {
		byCommit[r.Head] = r.Name
	}
	heads := make([]remoteHead, 0, len(byCommit))
	for commit, name := range byCommit {
		heads = append(heads, remoteHead{commit: commit, name: name})
	}
	slices.SortFunc(heads, func(a, b remoteHead) int { return cmp.Compare(a.name, b.name) })

	locals, err := backend.ListBranches(ctx, root, git.Local)
	if err != nil {
		return RepoStatus{Path: path}, err
	}

	status := RepoStatus{Path: path, Dirty: dirty, Unpushed: []string{}}
	for _, branch := range locals {
		l.Debug("  considering branch", "repo", root, "branch", branch.Name, "head", branch.Head)

		pushed, err := isPushed(ctx, backend, root, branch, byCommit, heads)
		if err != nil {
			return RepoStatus{Path: path}, err
		}
		if !pushed {
			status.Unpushed = append(status.Unpushed, branch.Name)
		}
	}

	return status, nil
}

// isPushed reports whether branch's head is a remote head or contained in one.
func isPushed(ctx context.Context, backend git.Backend, root string, branch git.BranchRef, byCommit map[string]string, heads []remoteHead) (bool, error) {
	l := log.FromContext(ctx)

	if name, ok := byCommit[branch.Head]; ok {
		l.Debug("  matches", "repo", root, "remote", name)
		return true, nil
	}

	for _, h := range heads {
		ahead, behind, err := backend.AheadBehind(ctx, root, branch.Head, h.commit)
		if err != nil {
			return false, err
		}
		l.Debug("   ", "repo", root, "remote", h.name, "head", h.commit, "ahead", ahead, "behind", behind)
		if ahead == 0 {
			return true, nil
		}
	}
	return false, nil
}
