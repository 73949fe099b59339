//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/rgit/internal/config"
	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// testEnv holds captured output of a command run.
type testEnv struct {
	ctx    context.Context
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	home   string
}

// setupTestEnv points the shared command state at a fresh home directory
// with a repos file at ~/.config/rgit/repos. Tests using it must not run
// in parallel.
func setupTestEnv(t *testing.T, level log.Level) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		home:   resolvePath(t, t.TempDir()),
	}

	ctx := log.WithLogger(context.Background(), log.New(env.stderr, level))
	ctx = output.WithPrinter(ctx, env.stdout)
	env.ctx = ctx

	oldCfg, oldHome, oldWorkDir, oldBackend := cfg, home, workDir, backend
	t.Cleanup(func() {
		cfg, home, workDir, backend = oldCfg, oldHome, oldWorkDir, oldBackend
	})

	loaded := config.Default()
	cfg = &loaded
	home = env.home
	workDir = env.home
	backend = git.CLI{}

	return env
}

// writeReposFile writes lines to the default repos file of env.
func (env *testEnv) writeReposFile(t *testing.T, lines ...string) {
	t.Helper()
	path := config.DefaultReposPath(env.home)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

// runGitCommand runs a command in dir and returns its combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v in %s: %v\n%s", args, dir, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with initial commit on main in dir/name.
// Returns the absolute path to the created repo.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "-q")
	runGitCommand(t, repoPath, "git", "symbolic-ref", "HEAD", "refs/heads/main")
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md")

	return repoPath
}

func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")
}

// setupClone creates a bare origin with one commit on main and a clone of
// it at dir/name that tracks origin/main.
func setupClone(t *testing.T, dir, name string) string {
	t.Helper()

	seed := setupTestRepo(t, t.TempDir(), "seed")
	origin := filepath.Join(t.TempDir(), name+".git")
	runGitCommand(t, seed, "git", "clone", "-q", "--bare", seed, origin)

	clone := filepath.Join(dir, name)
	runGitCommand(t, dir, "git", "clone", "-q", origin, clone)
	configureTestRepo(t, clone)
	return clone
}

// commitFile creates and commits a file in the current branch.
func commitFile(t *testing.T, repoPath, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte("content for "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runGitCommand(t, repoPath, "git", "add", name)
	runGitCommand(t, repoPath, "git", "commit", "-q", "-m", "Add "+name)
}

// makeDirty creates an untracked file.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, "dirty.txt"), []byte("uncommitted\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}
