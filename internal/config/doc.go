// Package config handles loading and validation of rgit configuration.
//
// Two files are involved. Settings are read from ~/.config/rgit/config.toml;
// the list of repositories lives in a separate line-oriented repos file.
//
// # Configuration Sources (highest priority first)
//
//   - RGIT_REPOS_FILE env var: repos file to read
//   - RGIT_JOBS env var: number of repositories inspected concurrently
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - repos_file: repos file path (must be absolute or ~/...)
//   - jobs: concurrency of "rgit status" (default 8)
//   - date_format: Go time layout for "rgit recent" (default RFC 1123 with zone)
//   - [status] show_clean: also report repositories needing no attention
//   - [recent] limit: maximum number of recent branches shown
//   - [theme]: color preset and per-color overrides
//
// # Repos File
//
// One glob per line. Blank lines and lines starting with # are ignored, a
// leading ! turns the line into an exclude rule:
//
//	~/code/*
//	!~/code/archived-*
//
// When no repos_file is configured and ~/.config/rgit/repos does not exist,
// ~/.rustgitrc is read instead.
//
// Every failure in this package is reported as an [*Error].
package config
