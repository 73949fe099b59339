package resolve

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/raphi011/rgit/internal/git"
)

const (
	// CommentMarker starts a comment line.
	CommentMarker = "#"
	// ExcludeMarker starts an exclude rule.
	ExcludeMarker = "!"
)

// RuleKind distinguishes include from exclude rules.
type RuleKind int

const (
	Include RuleKind = iota
	Exclude
)

func (k RuleKind) String() string {
	if k == Exclude {
		return "exclude"
	}
	return "include"
}

// Rule is one pattern from the repos file.
type Rule struct {
	Pattern string
	Kind    RuleKind
	Line    int // 1-based line number, 0 if unknown
}

func (r Rule) String() string {
	if r.Kind == Exclude {
		return ExcludeMarker + r.Pattern
	}
	return r.Pattern
}

// PatternError reports a malformed glob pattern.
type PatternError struct {
	Rule Rule
	Err  error
}

func (e *PatternError) Error() string {
	if e.Rule.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s pattern %q: %v", e.Rule.Line, e.Rule.Kind, e.Rule.Pattern, e.Err)
	}
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Rule.Kind, e.Rule.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Options configures rule expansion.
type Options struct {
	// Home replaces a leading "~". Required only if a rule uses it.
	Home string
	// Dir anchors relative patterns. Defaults to the process working directory.
	Dir string
	// IsRepo decides whether a matched path is a repository root.
	// Defaults to git.IsRepoRoot.
	IsRepo func(path string) bool
}

// ParseRules parses repos file lines into rules, skipping blanks and comments.
func ParseRules(lines []string) []Rule {
	var rules []Rule
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}

		rule := Rule{Pattern: line, Kind: Include, Line: i + 1}
		if rest, ok := strings.CutPrefix(line, ExcludeMarker); ok {
			rule.Pattern = strings.TrimSpace(rest)
			rule.Kind = Exclude
		}
		if rule.Pattern == "" {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Resolve expands rules into a sorted, deduplicated list of repository roots.
func Resolve(rules []Rule, opts Options) ([]string, error) {
	includes, excludes, err := expand(rules, opts)
	if err != nil {
		return nil, err
	}

	var repos []string
	for _, inc := range includes {
		for _, path := range inc.repos {
			if !excluded(path, excludes) {
				repos = append(repos, path)
			}
		}
	}

	slices.Sort(repos)
	return slices.Compact(repos), nil
}

// expandedInclude holds what one include rule matched on disk.
type expandedInclude struct {
	rule     Rule
	repos    []string
	nonRepos []string
}

// compiledExclude is an exclude rule with its pattern made absolute.
type compiledExclude struct {
	rule    Rule
	pattern string
}

// expand globs every include and validates every exclude.
func expand(rules []Rule, opts Options) ([]expandedInclude, []compiledExclude, error) {
	isRepo := opts.IsRepo
	if isRepo == nil {
		isRepo = git.IsRepoRoot
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := filepath.Abs(".")
		if err != nil {
			return nil, nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}

	var includes []expandedInclude
	var excludes []compiledExclude

	for _, rule := range rules {
		pattern, err := absPattern(rule.Pattern, opts.Home, dir)
		if err != nil {
			return nil, nil, &PatternError{Rule: rule, Err: err}
		}

		if rule.Kind == Exclude {
			if !doublestar.ValidatePathPattern(pattern) {
				return nil, nil, &PatternError{Rule: rule, Err: doublestar.ErrBadPattern}
			}
			excludes = append(excludes, compiledExclude{rule: rule, pattern: pattern})
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, nil, &PatternError{Rule: rule, Err: doublestar.ErrBadPattern}
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, nil, &PatternError{Rule: rule, Err: err}
		}

		inc := expandedInclude{rule: rule}
		for _, m := range matches {
			m = filepath.Clean(m)
			if isRepo(m) {
				inc.repos = append(inc.repos, m)
			} else {
				inc.nonRepos = append(inc.nonRepos, m)
			}
		}
		includes = append(includes, inc)
	}

	return includes, excludes, nil
}

// absPattern expands a leading "~" and anchors relative patterns at dir.
// The result is cleaned like the include matches it is compared against.
func absPattern(pattern, home, dir string) (string, error) {
	if pattern == "~" || strings.HasPrefix(pattern, "~/") {
		if home == "" {
			return "", fmt.Errorf("cannot expand ~: home directory unknown")
		}
		pattern = home + pattern[1:]
	}
	if !filepath.IsAbs(pattern) {
		return filepath.Join(dir, pattern), nil
	}
	return filepath.Clean(pattern), nil
}

// excluded reports whether path matches any exclude pattern.
func excluded(path string, excludes []compiledExclude) bool {
	for _, ex := range excludes {
		if ok, _ := doublestar.PathMatch(ex.pattern, path); ok {
			return true
		}
	}
	return false
}
