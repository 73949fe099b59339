package git

import (
	"os"
	"path/filepath"
)

// IsRepoRoot reports whether path holds git metadata directly: a .git
// directory (regular repo) or a .git file (worktree or submodule).
func IsRepoRoot(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}
