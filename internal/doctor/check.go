package doctor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/resolve"
)

// checkEnv verifies the git binary is available.
func checkEnv(lookGit func() error) []Issue {
	if err := lookGit(); err != nil {
		return []Issue{{
			Key:         "git",
			Description: err.Error(),
			Category:    CategoryEnv,
		}}
	}
	return nil
}

// checkRules finds rules that contribute nothing to the resolved set.
func checkRules(reports []resolve.RuleReport) []Issue {
	var issues []Issue

	for _, r := range reports {
		key := ruleKey(r.Rule)

		if r.Rule.Kind == resolve.Exclude {
			if r.Unused() {
				issues = append(issues, Issue{
					Key:         key,
					Description: "excludes no repository",
					Category:    CategoryRules,
				})
			}
			continue
		}

		switch {
		case r.Unused() && len(r.NonRepos) > 0:
			issues = append(issues, Issue{
				Key:         key,
				Description: fmt.Sprintf("matches %d paths but none is a git repository", len(r.NonRepos)),
				Hint:        "first match: " + r.NonRepos[0],
				Category:    CategoryRules,
			})
		case r.Unused():
			issues = append(issues, Issue{
				Key:         key,
				Description: "matches nothing",
				Category:    CategoryRules,
			})
		}
	}

	return issues
}

func ruleKey(r resolve.Rule) string {
	if r.Line > 0 {
		return fmt.Sprintf("line %d: %s", r.Line, r.String())
	}
	return r.String()
}

// checkRepos opens every resolved path with backend and reports those git
// rejects or that resolve to a different repository root.
func checkRepos(ctx context.Context, backend git.Backend, paths []string, jobs int) []Issue {
	found := make([]*Issue, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, jobs))

	for i, path := range paths {
		g.Go(func() error {
			root, err := backend.Discover(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				found[i] = &Issue{
					Key:         path,
					Description: describeRepoError(err),
					Category:    CategoryRepos,
				}
				return nil
			}
			if !samePath(root, path) {
				found[i] = &Issue{
					Key:         path,
					Description: "is inside repository " + root + ", not its root",
					Category:    CategoryRepos,
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	var issues []Issue
	for _, issue := range found {
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

func describeRepoError(err error) string {
	var accessErr *git.RepoAccessError
	if errors.As(err, &accessErr) {
		return strings.TrimSpace(accessErr.Err.Error())
	}
	return err.Error()
}

// samePath compares paths after resolving symlinks, so /tmp and
// /private/tmp style aliases are equal.
func samePath(a, b string) bool {
	if a == b {
		return true
	}
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	return errA == nil && errB == nil && ra == rb
}
