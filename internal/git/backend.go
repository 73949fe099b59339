package git

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotRepo indicates a path is not inside a git repository.
var ErrNotRepo = errors.New("not a git repository")

// Scope selects which branches ListBranches returns.
type Scope int

const (
	Local Scope = iota
	Remote
)

func (s Scope) String() string {
	if s == Remote {
		return "remote"
	}
	return "local"
}

// BranchRef is a branch and the commit it points to.
// Remote branch names include the remote, e.g. "origin/main".
type BranchRef struct {
	Name string
	Head string // full commit id
}

// ReflogEntry is one reference update from a reflog.
type ReflogEntry struct {
	Message string
	When    time.Time
}

// Backend is the set of repository queries rgit needs.
// Implementations must be safe for concurrent use on different repositories.
type Backend interface {
	// Discover returns the root of the repository containing path.
	Discover(ctx context.Context, path string) (string, error)
	// IsDirty reports uncommitted changes, untracked files included.
	IsDirty(ctx context.Context, repo string) (bool, error)
	// ListBranches returns branches in ref order. Symbolic refs are skipped.
	ListBranches(ctx context.Context, repo string, scope Scope) ([]BranchRef, error)
	// AheadBehind counts commits reachable from a but not b (ahead) and from
	// b but not a (behind).
	AheadBehind(ctx context.Context, repo, a, b string) (ahead, behind int, err error)
	// Reflog returns the reflog of ref, most recent first.
	Reflog(ctx context.Context, repo, ref string) ([]ReflogEntry, error)
	// BranchExists reports whether a local branch exists.
	BranchExists(ctx context.Context, repo, name string) (bool, error)
}

// RepoAccessError is returned when a path is not a usable repository.
type RepoAccessError struct {
	Path string
	Err  error
}

func (e *RepoAccessError) Error() string {
	return fmt.Sprintf("not a Git repo: %s", e.Path)
}

func (e *RepoAccessError) Unwrap() error {
	return e.Err
}

// QueryError is returned when a git query fails.
type QueryError struct {
	Op   string // e.g. "list remote branches"
	Repo string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
