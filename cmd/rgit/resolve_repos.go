package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/rgit/internal/config"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/resolve"
)

// loadRules reads the configured repos file and parses its rules.
func loadRules(ctx context.Context) (string, []resolve.Rule, error) {
	path := cfg.ReposFilePath(home)
	log.FromContext(ctx).Debug("repos file", "path", path)

	lines, err := config.ReadRepoLines(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, nil, fmt.Errorf("%w\nRun 'rgit config init' to create a starter repos file", err)
		}
		return path, nil, err
	}
	return path, resolve.ParseRules(lines), nil
}

// resolveOptions anchors relative patterns at the repos file's directory.
func resolveOptions(reposFile string) resolve.Options {
	return resolve.Options{
		Home: home,
		Dir:  filepath.Dir(reposFile),
	}
}

// resolveRepos returns the sorted repository list from the repos file.
func resolveRepos(ctx context.Context) ([]string, error) {
	path, rules, err := loadRules(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := resolve.Resolve(rules, resolveOptions(path))
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("resolved repositories", "rules", len(rules), "repos", len(repos))
	return repos, nil
}

// displayPath replaces the home directory prefix with ~.
func displayPath(path string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}
