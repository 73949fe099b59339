package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/rgit/internal/cmd"
)

// CLI implements Backend using the git binary.
// It holds no state, so one value can serve any number of goroutines.
type CLI struct{}

var _ Backend = CLI{}

// Discover returns the top-level directory of the repository containing path.
func (CLI) Discover(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &RepoAccessError{Path: path, Err: fmt.Errorf("%w: %w", ErrNotRepo, err)}
	}
	return strings.TrimSpace(string(out)), nil
}

// IsDirty reports whether the working tree has changes, untracked files included.
func (CLI) IsDirty(ctx context.Context, repo string) (bool, error) {
	out, err := outputGit(ctx, repo, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return false, &QueryError{Op: "working tree status", Repo: repo, Err: err}
	}
	return len(bytes.TrimSpace(out)) > 0, nil
}

// ListBranches lists local (refs/heads) or remote-tracking (refs/remotes) branches.
func (CLI) ListBranches(ctx context.Context, repo string, scope Scope) ([]BranchRef, error) {
	prefix := "refs/heads/"
	if scope == Remote {
		prefix = "refs/remotes/"
	}

	out, err := outputGit(ctx, repo, "for-each-ref",
		"--format=%(refname)%00%(objectname)%00%(symref)", prefix)
	if err != nil {
		return nil, &QueryError{Op: "list " + scope.String() + " branches", Repo: repo, Err: err}
	}
	return parseBranchRefs(out, prefix), nil
}

// parseBranchRefs parses NUL-separated for-each-ref output.
// Symbolic refs such as origin/HEAD are skipped.
func parseBranchRefs(out []byte, prefix string) []BranchRef {
	var refs []BranchRef
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) < 2 {
			continue
		}
		if len(fields) > 2 && fields[2] != "" {
			continue
		}
		refs = append(refs, BranchRef{
			Name: strings.TrimPrefix(fields[0], prefix),
			Head: fields[1],
		})
	}
	return refs
}

// AheadBehind counts commits in a...b: ahead is reachable only from a,
// behind only from b.
func (CLI) AheadBehind(ctx context.Context, repo, a, b string) (int, int, error) {
	out, err := outputGit(ctx, repo, "rev-list", "--left-right", "--count", a+"..."+b)
	if err != nil {
		return 0, 0, &QueryError{Op: "ahead/behind " + short(a) + " " + short(b), Repo: repo, Err: err}
	}
	ahead, behind, err := parseAheadBehind(out)
	if err != nil {
		return 0, 0, &QueryError{Op: "ahead/behind " + short(a) + " " + short(b), Repo: repo, Err: err}
	}
	return ahead, behind, nil
}

func parseAheadBehind(out []byte) (int, int, error) {
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(string(out)))
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse behind count: %w", err)
	}
	return ahead, behind, nil
}

// Reflog reads the reflog of ref (e.g. "HEAD") and returns it most recent first.
// A ref that does not resolve (unborn HEAD, missing branch) yields an empty slice.
func (CLI) Reflog(ctx context.Context, repo, ref string) ([]ReflogEntry, error) {
	err := runGit(ctx, repo, "rev-parse", "--verify", "--quiet", ref)
	if err != nil {
		var cmdErr *cmd.Error
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, &QueryError{Op: "resolve " + ref, Repo: repo, Err: err}
	}

	// %gd with --date=unix renders the selector as <ref>@{<unix-time>}.
	out, err := outputGit(ctx, repo, "log", "--walk-reflogs", "--date=unix",
		"--format=%gd%x00%gs", ref, "--")
	if err != nil {
		return nil, &QueryError{Op: "read reflog " + ref, Repo: repo, Err: err}
	}

	entries, err := parseReflog(out)
	if err != nil {
		return nil, &QueryError{Op: "parse reflog " + ref, Repo: repo, Err: err}
	}
	return entries, nil
}

// parseReflog parses `git log -g --date=unix --format=%gd%x00%gs` output.
// Each line has the shape
//
//	<ref>@{<unix-time>}\x00<message>
//
// git already lists the most recent entry first.
func parseReflog(data []byte) ([]ReflogEntry, error) {
	var entries []ReflogEntry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		selector, message, ok := strings.Cut(line, "\x00")
		open := strings.LastIndex(selector, "@{")
		if !ok || open < 0 || !strings.HasSuffix(selector, "}") {
			return nil, fmt.Errorf("malformed reflog line %q", line)
		}
		secs, err := strconv.ParseInt(selector[open+2:len(selector)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed reflog timestamp in %q: %w", line, err)
		}

		entries = append(entries, ReflogEntry{
			Message: message,
			When:    time.Unix(secs, 0),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// BranchExists reports whether refs/heads/<name> exists.
func (CLI) BranchExists(ctx context.Context, repo, name string) (bool, error) {
	err := runGit(ctx, repo, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	var cmdErr *cmd.Error
	if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
		return false, nil
	}
	return false, &QueryError{Op: "find branch " + name, Repo: repo, Err: err}
}

// short abbreviates a commit id for messages.
func short(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}
