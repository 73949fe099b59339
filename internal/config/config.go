package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables that override settings from the config file.
const (
	EnvReposFile = "RGIT_REPOS_FILE"
	EnvJobs      = "RGIT_JOBS"
)

// DefaultJobs is the number of repositories inspected concurrently.
const DefaultJobs = 8

// DefaultDateFormat is the layout of the date column in "rgit recent".
const DefaultDateFormat = time.RFC1123Z

// StatusConfig holds settings for "rgit status"
type StatusConfig struct {
	ShowClean bool `toml:"show_clean" json:"show_clean"` // report repos that need no attention
}

// RecentConfig holds settings for "rgit recent"
type RecentConfig struct {
	Limit int `toml:"limit" json:"limit"` // 0 = all entries
}

// ThemeConfig selects a color preset and optional per-color overrides
type ThemeConfig struct {
	Name     string `toml:"name" json:"name,omitempty"` // preset family, see ValidThemeNames
	Mode     string `toml:"mode" json:"mode,omitempty"` // "auto", "light" or "dark"
	Primary  string `toml:"primary" json:"primary,omitempty"`
	Accent   string `toml:"accent" json:"accent,omitempty"`
	Success  string `toml:"success" json:"success,omitempty"`
	Error    string `toml:"error" json:"error,omitempty"`
	Muted    string `toml:"muted" json:"muted,omitempty"`
	Normal   string `toml:"normal" json:"normal,omitempty"`
	Info     string `toml:"info" json:"info,omitempty"`
	Warning  string `toml:"warning" json:"warning,omitempty"`
	Nerdfont bool   `toml:"nerdfont" json:"nerdfont"`
}

// Config holds the rgit configuration
type Config struct {
	ReposFile  string       `toml:"repos_file" json:"repos_file"`
	Jobs       int          `toml:"jobs" json:"jobs"`
	DateFormat string       `toml:"date_format" json:"date_format"`
	Status     StatusConfig `toml:"status" json:"status"`
	Recent     RecentConfig `toml:"recent" json:"recent"`
	Theme      ThemeConfig  `toml:"theme" json:"theme"`

	// Path is the settings file the values were read from; empty if none existed.
	Path string `toml:"-" json:"path,omitempty"`
}

// Default returns the default configuration. The repos file is left empty
// and resolved against the home directory by ReposFilePath.
func Default() Config {
	return Config{
		Jobs:       DefaultJobs,
		DateFormat: DefaultDateFormat,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to home.
func ExpandPath(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", errors.New("expand ~: home directory unknown")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// Home returns the user's home directory.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{Op: "locate home directory", Err: err}
	}
	return home, nil
}

// SettingsPath returns the path of the settings file below home.
func SettingsPath(home string) string {
	return filepath.Join(home, ".config", "rgit", "config.toml")
}

// Load reads config from ~/.config/rgit/config.toml and applies
// environment overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	home, err := Home()
	if err != nil {
		return Default(), err
	}
	return LoadFile(SettingsPath(home), home, os.Getenv)
}

// LoadFile reads the settings file at path. getenv supplies environment
// overrides; home expands ~ in path-valued settings.
func LoadFile(path, home string, getenv func(string) string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Default(), &Error{Op: "parse", Path: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Default(), &Error{Op: "parse", Path: path, Err: fmt.Errorf("unknown key %q", undecoded[0].String())}
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return Default(), &Error{Op: "read", Path: path, Err: err}
	}

	if v := getenv(EnvReposFile); v != "" {
		cfg.ReposFile = v
	}
	if v := getenv(EnvJobs); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return Default(), &Error{Op: "parse " + EnvJobs, Err: err}
		}
		cfg.Jobs = jobs
	}

	if err := cfg.validate(); err != nil {
		return Default(), &Error{Op: "validate", Path: cfg.Path, Err: err}
	}

	// Expand ~ in repos_file (shell doesn't expand in config files)
	expanded, err := ExpandPath(cfg.ReposFile, home)
	if err != nil {
		return Default(), &Error{Op: "expand repos_file", Path: cfg.Path, Err: err}
	}
	cfg.ReposFile = expanded

	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := ValidatePath(c.ReposFile, "repos_file"); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Recent.Limit < 0 {
		return fmt.Errorf("recent.limit must not be negative, got %d", c.Recent.Limit)
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	return validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes)
}

const defaultConfig = `# rgit configuration

# File listing the repositories "rgit status" inspects, one glob per line.
# Lines starting with # are comments, lines starting with ! exclude matches.
# Default: ~/.config/rgit/repos (falls back to ~/.rustgitrc if that exists)
# repos_file = "~/.config/rgit/repos"

# Number of repositories inspected concurrently
# jobs = 8

# Go time layout for the date column of "rgit recent"
# date_format = "Mon, 02 Jan 2006 15:04:05 -0700"

# [status]
# show_clean = false   # also list repositories without unpushed work

# [recent]
# limit = 0            # maximum number of branches shown, 0 = all

# [theme]
# name = "default"     # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"        # auto, light, dark
# nerdfont = false
# primary = "#89b4fa"  # override individual colors
`

const defaultRepos = `# Repositories inspected by "rgit status".
#
# One glob per line, ** matches any number of directories.
# Only matches containing a .git directory or file are used.
# Prefix a line with ! to exclude matching paths.
#
# ~/code/*
# ~/work/**/service-*
# !~/code/archived-*
`

// Init writes a starter settings file and repos file below home.
// Existing files are kept unless force is true.
// Returns the paths of the files written.
func Init(home string, force bool) ([]string, error) {
	files := []struct {
		path    string
		content string
	}{
		{SettingsPath(home), defaultConfig},
		{DefaultReposPath(home), defaultRepos},
	}

	var written []string
	for _, f := range files {
		if !force {
			if _, err := os.Stat(f.path); err == nil {
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			return written, &Error{Op: "create directory", Path: filepath.Dir(f.path), Err: err}
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return written, &Error{Op: "write", Path: f.path, Err: err}
		}
		written = append(written, f.path)
	}

	if len(written) == 0 {
		return nil, &Error{Op: "init", Path: filepath.Dir(SettingsPath(home)), Err: errors.New("config files already exist")}
	}
	return written, nil
}
