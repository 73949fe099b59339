//go:build integration

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/config"
	"github.com/raphi011/rgit/internal/log"
)

// executeCmd runs cmd with args against env's context.
func executeCmd(t *testing.T, env *testEnv, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(env.ctx)
}

func TestRepos_ListsResolvedRepos(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	codeDir := filepath.Join(env.home, "code")
	setupTestRepo(t, codeDir, "b")
	setupTestRepo(t, codeDir, "a")
	if err := os.MkdirAll(filepath.Join(codeDir, "notes"), 0755); err != nil {
		t.Fatal(err)
	}
	env.writeReposFile(t, "~/code/*")

	if err := executeCmd(t, env, newReposCmd()); err != nil {
		t.Fatalf("repos error = %v", err)
	}

	want := "~/code/a\n~/code/b\n"
	if got := env.stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRepos_FullAndJSON(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	repo := setupTestRepo(t, filepath.Join(env.home, "code"), "a")
	env.writeReposFile(t, "~/code/*")

	if err := executeCmd(t, env, newReposCmd(), "--full"); err != nil {
		t.Fatalf("repos --full error = %v", err)
	}
	if got := strings.TrimSpace(env.stdout.String()); got != repo {
		t.Errorf("--full output = %q, want %q", got, repo)
	}

	env.stdout.Reset()
	if err := executeCmd(t, env, newReposCmd(), "--json"); err != nil {
		t.Fatalf("repos --json error = %v", err)
	}
	var got []string
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0] != repo {
		t.Errorf("--json = %v, want [%s]", got, repo)
	}
}

func TestRepos_RelativePatternUsesReposFileDir(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	reposDir := filepath.Dir(config.DefaultReposPath(env.home))
	repo := setupTestRepo(t, filepath.Join(reposDir, "nested"), "local")
	env.writeReposFile(t, "nested/*")

	if err := executeCmd(t, env, newReposCmd(), "--full"); err != nil {
		t.Fatalf("repos error = %v", err)
	}
	if got := strings.TrimSpace(env.stdout.String()); got != repo {
		t.Errorf("output = %q, want %q", got, repo)
	}
}

func TestRepos_NothingMatched(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	env.writeReposFile(t, "~/nowhere/*")

	if err := executeCmd(t, env, newReposCmd()); err != nil {
		t.Fatalf("repos error = %v", err)
	}
	if env.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", env.stdout.String())
	}
	if !strings.Contains(env.stderr.String(), "No repositories matched") {
		t.Errorf("stderr = %q, want hint", env.stderr.String())
	}
}

func TestRepos_ExplicitReposFile(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	repo := setupTestRepo(t, filepath.Join(env.home, "work"), "svc")

	custom := filepath.Join(env.home, "my-repos")
	if err := os.WriteFile(custom, []byte(repo+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.ReposFile = custom

	if err := executeCmd(t, env, newReposCmd(), "--full"); err != nil {
		t.Fatalf("repos error = %v", err)
	}
	if got := strings.TrimSpace(env.stdout.String()); got != repo {
		t.Errorf("output = %q, want %q", got, repo)
	}
}

func TestDoctor_ReportsUnusedRule(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	setupTestRepo(t, filepath.Join(env.home, "code"), "a")
	env.writeReposFile(t, "~/code/*", "~/missing/*")

	err := executeCmd(t, env, newDoctorCmd(), "--json")
	if err == nil || !strings.Contains(err.Error(), "1 issues found") {
		t.Fatalf("doctor error = %v, want 1 issues found", err)
	}

	var report struct {
		Stats struct {
			Rules int `json:"rules"`
			Repos int `json:"repos"`
		} `json:"stats"`
		Issues []struct {
			Key      string `json:"key"`
			Category string `json:"category"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(env.stdout.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, env.stdout.String())
	}
	if report.Stats.Rules != 2 || report.Stats.Repos != 1 {
		t.Errorf("stats = %+v, want 2 rules and 1 repo", report.Stats)
	}
	if len(report.Issues) != 1 || report.Issues[0].Category != "rules" {
		t.Errorf("issues = %+v, want one rules issue", report.Issues)
	}
}

func TestDoctor_Healthy(t *testing.T) {
	env := setupTestEnv(t, log.Normal)
	setupTestRepo(t, filepath.Join(env.home, "code"), "a")
	env.writeReposFile(t, "~/code/*")

	if err := executeCmd(t, env, newDoctorCmd()); err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "No issues found") {
		t.Errorf("output = %q, want no issues", env.stdout.String())
	}
}
