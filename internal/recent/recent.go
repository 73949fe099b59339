// Package recent reconstructs recently used branches from the HEAD reflog.
package recent

import (
	"context"
	"strings"
	"time"

	"github.com/raphi011/rgit/internal/format"
	"github.com/raphi011/rgit/internal/git"
)

// BranchUsage is the most recent time a branch was checked out.
type BranchUsage struct {
	Branch string    `json:"branch"`
	SeenAt time.Time `json:"seen_at"`
	Age    string    `json:"age"`
}

// Event is the kind of reflog message a branch name was taken from.
type Event int

const (
	Checkout Event = iota + 1
	Rename
)

const (
	checkoutPrefix = "checkout: "
	renamePrefix   = "Branch: renamed "
	headsPrefix    = "refs/heads/"
)

// Match extracts the target branch from a reflog message. Two shapes are
// recognised:
//
//	checkout: moving from <old> to <branch>
//	Branch: renamed <old> to refs/heads/<branch>
//
// Any other message yields ok == false.
func Match(message string) (branch string, event Event, ok bool) {
	switch {
	case strings.HasPrefix(message, checkoutPrefix):
		rest := message[len(checkoutPrefix):]
		name := rest[strings.LastIndexByte(rest, ' ')+1:]
		return name, Checkout, name != ""

	case strings.HasPrefix(message, renamePrefix):
		rest := message[len(renamePrefix):]
		i := strings.LastIndex(rest, " to "+headsPrefix)
		if i <= 0 {
			return "", 0, false
		}
		name := rest[i+len(" to "+headsPrefix):]
		if name == "" || strings.ContainsAny(name, " \t") {
			return "", 0, false
		}
		return name, Rename, true
	}
	return "", 0, false
}

// Extract walks history (most recent first) and returns each locally existing
// branch once, at its most recent checkout. The result is ordered by recency.
func Extract(history []git.ReflogEntry, local map[string]bool, now time.Time) []BranchUsage {
	seen := make(map[string]bool)
	var usages []BranchUsage

	for _, entry := range history {
		name, _, ok := Match(entry.Message)
		if !ok || seen[name] || !local[name] {
			continue
		}
		seen[name] = true
		usages = append(usages, BranchUsage{
			Branch: name,
			SeenAt: entry.When.Local(),
			Age:    format.Since(entry.When, now),
		})
	}
	return usages
}

// Load reads the HEAD reflog and local branches of repo and extracts usages.
func Load(ctx context.Context, backend git.Backend, repo string, now time.Time) ([]BranchUsage, error) {
	history, err := backend.Reflog(ctx, repo, "HEAD")
	if err != nil {
		return nil, err
	}

	branches, err := backend.ListBranches(ctx, repo, git.Local)
	if err != nil {
		return nil, err
	}
	local := make(map[string]bool, len(branches))
	for _, b := range branches {
		local[b.Name] = true
	}

	return Extract(history, local, now), nil
}
