package status

import (
	"context"
	"fmt"

	"github.com/raphi011/rgit/internal/git"
)

// fakeBackend is an in-memory git.Backend over a tiny commit graph.
type fakeBackend struct {
	parents  map[string][]string // commit -> parent commits
	local    []git.BranchRef
	remote   []git.BranchRef
	dirty    bool
	notRepo  bool
	queryErr error // returned by AheadBehind when set

	aheadBehindCalls int
}

var _ git.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) Discover(_ context.Context, path string) (string, error) {
	if f.notRepo {
		return "", &git.RepoAccessError{Path: path, Err: git.ErrNotRepo}
	}
	return path, nil
}

func (f *fakeBackend) IsDirty(context.Context, string) (bool, error) {
	return f.dirty, nil
}

func (f *fakeBackend) ListBranches(_ context.Context, _ string, scope git.Scope) ([]git.BranchRef, error) {
	if scope == git.Remote {
		return f.remote, nil
	}
	return f.local, nil
}

func (f *fakeBackend) AheadBehind(_ context.Context, repo, a, b string) (int, int, error) {
	f.aheadBehindCalls++
	if f.queryErr != nil {
		return 0, 0, &git.QueryError{Op: "ahead/behind", Repo: repo, Err: f.queryErr}
	}
	fromA := f.reachable(a)
	fromB := f.reachable(b)
	ahead, behind := 0, 0
	for c := range fromA {
		if !fromB[c] {
			ahead++
		}
	}
	for c := range fromB {
		if !fromA[c] {
			behind++
		}
	}
	return ahead, behind, nil
}

func (f *fakeBackend) Reflog(context.Context, string, string) ([]git.ReflogEntry, error) {
	return nil, nil
}

func (f *fakeBackend) BranchExists(_ context.Context, _ string, name string) (bool, error) {
	for _, b := range f.local {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBackend) reachable(commit string) map[string]bool {
	seen := make(map[string]bool)
	stack := []string{commit}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[c] {
			continue
		}
		seen[c] = true
		stack = append(stack, f.parents[c]...)
	}
	return seen
}

// linearHistory returns a parents map for a chain c0 <- c1 <- ... <- c(n-1)
// under the given prefix.
func linearHistory(prefix string, n int) map[string][]string {
	parents := make(map[string][]string)
	for i := 1; i < n; i++ {
		parents[fmt.Sprintf("%s%d", prefix, i)] = []string{fmt.Sprintf("%s%d", prefix, i-1)}
	}
	return parents
}
