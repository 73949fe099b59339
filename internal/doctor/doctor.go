package doctor

import (
	"context"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
	"github.com/raphi011/rgit/internal/resolve"
)

// Params are the inputs of a doctor run.
type Params struct {
	ReposFile string
	Rules     []resolve.Rule
	Options   resolve.Options
	Backend   git.Backend
	Jobs      int

	// LookGit checks for the git binary. Defaults to git.CheckGit.
	LookGit func() error
}

// Check runs all diagnostics and returns the report. Only a malformed
// pattern is returned as an error; everything else becomes an Issue.
func Check(ctx context.Context, p Params) (Report, error) {
	l := log.FromContext(ctx)

	lookGit := p.LookGit
	if lookGit == nil {
		lookGit = git.CheckGit
	}

	var report Report

	l.Infof("Checking environment...")
	envIssues := checkEnv(lookGit)
	report.Issues = append(report.Issues, envIssues...)

	l.Infof("Checking rules in %s...", p.ReposFile)
	reports, err := resolve.Explain(p.Rules, p.Options)
	if err != nil {
		return Report{}, err
	}
	ruleIssues := checkRules(reports)
	report.Issues = append(report.Issues, ruleIssues...)
	report.Stats.Rules = len(p.Rules)
	report.Stats.UnusedRules = len(ruleIssues)

	paths, err := resolve.Resolve(p.Rules, p.Options)
	if err != nil {
		return Report{}, err
	}
	report.Stats.Repos = len(paths)

	// Without git every repository check would fail the same way.
	if len(envIssues) == 0 {
		l.Infof("Checking %d repositories...", len(paths))
		repoIssues := checkRepos(ctx, p.Backend, paths, p.Jobs)
		report.Issues = append(report.Issues, repoIssues...)
		report.Stats.BrokenRepos = len(repoIssues)
	}

	return report, nil
}

// Run performs the diagnostics and prints a summary followed by the
// issues grouped by category.
func Run(ctx context.Context, p Params) (Report, error) {
	report, err := Check(ctx, p)
	if err != nil {
		return report, err
	}

	out := output.FromContext(ctx)
	printSummary(out, p.ReposFile, report.Stats)

	if len(report.Issues) == 0 {
		out.Println("\n✓ No issues found")
		return report, nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)
	return report, nil
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, reposFile string, stats Stats) {
	out.Println()
	out.Printf("  repos file: %s\n", reposFile)
	out.Printf("  ✓ %d rules, %d in use\n", stats.Rules, stats.Rules-stats.UnusedRules)
	if stats.UnusedRules > 0 {
		out.Printf("  ⚠ %d rules without effect\n", stats.UnusedRules)
	}
	out.Printf("  ✓ %d repositories resolved\n", stats.Repos)
	if stats.BrokenRepos > 0 {
		out.Printf("  ✗ %d repositories git cannot open\n", stats.BrokenRepos)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryEnv:   "Environment",
		CategoryRules: "Repos file rules",
		CategoryRepos: "Repositories",
	}

	for _, cat := range []IssueCategory{CategoryEnv, CategoryRules, CategoryRepos} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
			if issue.Hint != "" {
				out.Printf("    %s\n", issue.Hint)
			}
		}
	}
}
