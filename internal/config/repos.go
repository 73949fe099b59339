package config

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
)

// LegacyReposFile is the name of the repos file used before the
// ~/.config/rgit layout; it is still read when present.
const LegacyReposFile = ".rustgitrc"

// DefaultReposPath returns the default repos file below home.
func DefaultReposPath(home string) string {
	return filepath.Join(home, ".config", "rgit", "repos")
}

// ReposFilePath returns the repos file to read. An explicit repos_file
// wins; otherwise the default path is used unless it is missing and the
// legacy file exists.
func (c Config) ReposFilePath(home string) string {
	if c.ReposFile != "" {
		return c.ReposFile
	}

	path := DefaultReposPath(home)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		legacy := filepath.Join(home, LegacyReposFile)
		if _, err := os.Stat(legacy); err == nil {
			return legacy
		}
	}
	return path
}

// ReadRepoLines returns the lines of the repos file at path.
// Any failure to read it is an *Error.
func ReadRepoLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "read repos file", Path: path, Err: err}
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: "read repos file", Path: path, Err: err}
	}
	return lines, nil
}
