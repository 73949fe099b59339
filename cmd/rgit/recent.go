package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
	"github.com/raphi011/rgit/internal/recent"
	"github.com/raphi011/rgit/internal/ui/picker"
	"github.com/raphi011/rgit/internal/ui/static"
)

// errNotInRepo is returned when the working directory is outside a repository.
var errNotInRepo = errors.New("please run this from inside of a Git repo")

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type recentOptions struct {
	filter      string
	limit       int
	json        bool
	interactive bool
	copy        bool
}

func runRecent(ctx context.Context, opts recentOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	repo, err := backend.Discover(ctx, workDir)
	if err != nil {
		if errors.Is(err, git.ErrNotRepo) {
			return errNotInRepo
		}
		return err
	}

	usages, err := recent.Load(ctx, backend, repo, time.Now())
	if err != nil {
		return err
	}
	l.Debug("reflog scanned", "repo", repo, "branches", len(usages))

	if opts.interactive {
		return pickRecent(ctx, out, repo, usages, opts.filter)
	}

	hits := recent.Limit(recent.Filter(usages, opts.filter), opts.limit)

	if opts.json {
		if hits == nil {
			hits = []recent.Hit{}
		}
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		if opts.filter != "" && len(usages) > 0 {
			l.Printf("No recent branch matches %q.\n", opts.filter)
			return nil
		}
		l.Println("No relevant entries found in reflog.")
		return nil
	}

	if opts.copy {
		branch := hits[0].Branch
		if err := copyToClipboard(branch); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		l.Printf("Copied %s to clipboard\n", branch)
		return nil
	}

	out.Print(static.RenderRecent(hits, cfg.DateFormat))
	return nil
}

// pickRecent runs the picker and prints the chosen branch on stdout.
func pickRecent(ctx context.Context, out *output.Printer, repo string, usages []recent.BranchUsage, filter string) error {
	if len(usages) == 0 {
		log.FromContext(ctx).Println("No relevant entries found in reflog.")
		return nil
	}

	branch, ok, err := picker.Run(ctx, usages, filter)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	// The reflog was read before the picker opened; the branch may be gone.
	exists, err := backend.BranchExists(ctx, repo, branch)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("branch %s no longer exists", branch)
	}

	out.Println(branch)
	return nil
}
