package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/output"
	"github.com/raphi011/rgit/internal/status"
	"github.com/raphi011/rgit/internal/ui/progress"
	"github.com/raphi011/rgit/internal/ui/styles"
)

type statusOptions struct {
	paths    bool
	json     bool
	all      bool
	jobs     int
	progress bool // draw a progress bar on stderr
}

// statusJSON is the --json shape of one repository.
type statusJSON struct {
	Path     string   `json:"path"`
	Dirty    bool     `json:"dirty"`
	Unpushed []string `json:"unpushed_branches"`
	Error    string   `json:"error,omitempty"`
}

func runStatus(ctx context.Context, opts statusOptions) error {
	repos, err := resolveRepos(ctx)
	if err != nil {
		return err
	}

	var notify func(status.RepoStatus)
	var bar *progress.Bar
	if opts.progress && len(repos) > 1 {
		bar = progress.New(os.Stderr, len(repos), "repositories")
		bar.Start()
		notify = func(status.RepoStatus) { bar.Advance() }
	}

	results := status.DetectAllNotify(ctx, backend, repos, opts.jobs, notify)
	if bar != nil {
		bar.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var shown []status.RepoStatus
	for _, r := range results {
		if opts.all || r.NeedsAttention() {
			shown = append(shown, r)
		}
	}

	out := output.FromContext(ctx)

	switch {
	case opts.json:
		return printStatusJSON(out, shown)
	case opts.paths:
		for _, r := range shown {
			out.Println(r.Path)
		}
		return nil
	}

	for i, r := range shown {
		if i > 0 {
			out.Println()
		}
		printRepoStatus(ctx, out, r)
	}
	return nil
}

func printStatusJSON(out *output.Printer, results []status.RepoStatus) error {
	items := make([]statusJSON, len(results))
	for i, r := range results {
		items[i] = statusJSON{
			Path:     r.Path,
			Dirty:    r.Dirty,
			Unpushed: r.Unpushed,
		}
		if items[i].Unpushed == nil {
			items[i].Unpushed = []string{}
		}
		if r.Err != nil {
			items[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(out.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// printRepoStatus prints the heading of one repository followed by git's
// own branch and working tree reports.
func printRepoStatus(ctx context.Context, out *output.Printer, r status.RepoStatus) {
	heading := styles.HeadingStyle.Render(displayPath(r.Path))

	if r.Err != nil {
		out.Printf("%s %s\n", heading, styles.RenderFailed())
		out.Println(styles.ErrorStyle.Render(fmt.Sprintf("ERROR: %v", r.Err)))
		return
	}

	out.Printf("%s %s\n", heading, styles.RenderMarkers(r.Dirty, len(r.Unpushed)))

	opts := git.ReportOptions{Color: out.IsTerminal()}
	if len(r.Unpushed) > 0 {
		if err := git.BranchVerbose(ctx, r.Path, r.Unpushed, out.Writer(), opts); err != nil {
			out.Println(styles.ErrorStyle.Render(fmt.Sprintf("ERROR: %v", err)))
		}
	}
	if r.Dirty {
		if err := git.StatusShort(ctx, r.Path, out.Writer(), opts); err != nil {
			out.Println(styles.ErrorStyle.Render(fmt.Sprintf("ERROR: %v", err)))
		}
	}
}
