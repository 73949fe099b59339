package status

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
)

// DefaultJobs bounds concurrent repository inspections.
const DefaultJobs = 8

// DetectAll inspects every path and returns one RepoStatus per path in input
// order. A failure is stored in RepoStatus.Err and does not stop the others.
// jobs <= 0 means DefaultJobs.
func DetectAll(ctx context.Context, backend git.Backend, paths []string, jobs int) []RepoStatus {
	return DetectAllNotify(ctx, backend, paths, jobs, nil)
}

// DetectAllNotify is DetectAll with a callback invoked once per finished
// repository. notify may be called concurrently and may be nil.
// When the context logger is at Info level or above, repositories are
// inspected one at a time so their diagnostics do not interleave.
func DetectAllNotify(ctx context.Context, backend git.Backend, paths []string, jobs int, notify func(RepoStatus)) []RepoStatus {
	if jobs <= 0 {
		jobs = DefaultJobs
	}
	// -v and -vv output is only readable in resolved order
	if log.FromContext(ctx).Enabled(log.Info) {
		jobs = 1
	}

	results := make([]RepoStatus, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			log.FromContext(ctx).Infof("Checking repo: %s", path)

			st, err := Detect(ctx, backend, path)
			if err != nil {
				st = RepoStatus{Path: path, Err: err}
			}
			results[i] = st
			if notify != nil {
				notify(st)
			}
			return nil // errors are reported per repo
		})
	}

	_ = g.Wait() // always nil, goroutines record errors on their result

	return results
}
