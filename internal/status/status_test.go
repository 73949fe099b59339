package status

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"pgregory.net/rapid"

	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	// c0 <- c1 <- c2 <- c3 on main; d1 forks from c1; x0 is unrelated.
	parents := linearHistory("c", 4)
	parents["d1"] = []string{"c1"}
	parents["x0"] = nil

	tests := []struct {
		name   string
		local  []git.BranchRef
		remote []git.BranchRef
		want   []string
	}{
		{
			name:   "exact head match is pushed",
			local:  []git.BranchRef{{Name: "main", Head: "c3"}},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c3"}},
			want:   []string{},
		},
		{
			name:   "branch merged into advanced remote is pushed",
			local:  []git.BranchRef{{Name: "old", Head: "c1"}},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c3"}},
			want:   []string{},
		},
		{
			name:   "branch ahead of remote is unpushed",
			local:  []git.BranchRef{{Name: "topic", Head: "d1"}},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c3"}},
			want:   []string{"topic"},
		},
		{
			name:   "unrelated history is unpushed",
			local:  []git.BranchRef{{Name: "orphan", Head: "x0"}},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c3"}},
			want:   []string{"orphan"},
		},
		{
			name:   "no remotes means everything is unpushed",
			local:  []git.BranchRef{{Name: "main", Head: "c3"}, {Name: "topic", Head: "d1"}},
			remote: nil,
			want:   []string{"main", "topic"},
		},
		{
			name:   "any remote containing the branch is enough",
			local:  []git.BranchRef{{Name: "topic", Head: "d1"}},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c3"}, {Name: "fork/topic", Head: "d1"}},
			want:   []string{},
		},
		{
			name: "unpushed names keep local order",
			local: []git.BranchRef{
				{Name: "zeta", Head: "x0"},
				{Name: "main", Head: "c3"},
				{Name: "alpha", Head: "d1"},
			},
			remote: []git.BranchRef{{Name: "origin/main", Head: "c2"}},
			want:   []string{"zeta", "main", "alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			backend := &fakeBackend{parents: parents, local: tt.local, remote: tt.remote}

			got, err := Detect(context.Background(), backend, "/src/repo")
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got.Path != "/src/repo" {
				t.Errorf("Path = %q, want %q", got.Path, "/src/repo")
			}
			if !slices.Equal(got.Unpushed, tt.want) {
				t.Errorf("Unpushed = %v, want %v", got.Unpushed, tt.want)
			}
		})
	}
}

func TestDetect_ExactMatchSkipsAncestry(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		parents: linearHistory("c", 3),
		local:   []git.BranchRef{{Name: "main", Head: "c2"}},
		remote:  []git.BranchRef{{Name: "origin/main", Head: "c2"}, {Name: "origin/dev", Head: "c1"}},
	}

	if _, err := Detect(context.Background(), backend, "/r"); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if backend.aheadBehindCalls != 0 {
		t.Errorf("AheadBehind called %d times, want 0 for an exact head match", backend.aheadBehindCalls)
	}
}

func TestDetect_Dirty(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{dirty: true}
	got, err := Detect(context.Background(), backend, "/r")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !got.Dirty {
		t.Error("Dirty = false, want true")
	}
	if !got.NeedsAttention() {
		t.Error("NeedsAttention() = false for a dirty repo")
	}
}

func TestDetect_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not a repository", func(t *testing.T) {
		t.Parallel()
		_, err := Detect(context.Background(), &fakeBackend{notRepo: true}, "/nope")
		var accessErr *git.RepoAccessError
		if !errors.As(err, &accessErr) {
			t.Fatalf("Detect() error = %v, want *git.RepoAccessError", err)
		}
	})

	t.Run("ancestry query fails", func(t *testing.T) {
		t.Parallel()
		backend := &fakeBackend{
			local:    []git.BranchRef{{Name: "topic", Head: "a"}},
			remote:   []git.BranchRef{{Name: "origin/main", Head: "b"}},
			queryErr: errors.New("boom"),
		}
		_, err := Detect(context.Background(), backend, "/r")
		var queryErr *git.QueryError
		if !errors.As(err, &queryErr) {
			t.Fatalf("Detect() error = %v, want *git.QueryError", err)
		}
		if backend.aheadBehindCalls != 1 {
			t.Errorf("AheadBehind called %d times, want exactly 1 (no retries)", backend.aheadBehindCalls)
		}
	})
}

func TestRepoStatus_NeedsAttention(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status RepoStatus
		want   bool
	}{
		{"clean", RepoStatus{Path: "/r"}, false},
		{"dirty", RepoStatus{Dirty: true}, true},
		{"unpushed", RepoStatus{Unpushed: []string{"x"}}, true},
		{"error", RepoStatus{Err: errors.New("x")}, true},
	}

	for _, tt := range tests {
		if got := tt.status.NeedsAttention(); got != tt.want {
			t.Errorf("%s: NeedsAttention() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// pathBackend fails Discover for selected paths and is clean otherwise.
type pathBackend struct {
	fakeBackend
	bad map[string]bool
}

func (p *pathBackend) Discover(_ context.Context, path string) (string, error) {
	if p.bad[path] {
		return "", &git.RepoAccessError{Path: path, Err: git.ErrNotRepo}
	}
	return path, nil
}

func TestDetectAll(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 25; i++ {
		paths = append(paths, fmt.Sprintf("/src/repo-%02d", i))
	}
	backend := &pathBackend{bad: map[string]bool{paths[3]: true, paths[17]: true}}

	results := DetectAll(context.Background(), backend, paths, 4)

	if len(results) != len(paths) {
		t.Fatalf("DetectAll() returned %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, r.Path, paths[i])
		}
		wantErr := backend.bad[paths[i]]
		if (r.Err != nil) != wantErr {
			t.Errorf("results[%d].Err = %v, want error: %v", i, r.Err, wantErr)
		}
	}
}

func TestDetectAllNotify(t *testing.T) {
	t.Parallel()

	paths := []string{"/src/a", "/src/b", "/src/c"}
	backend := &pathBackend{bad: map[string]bool{"/src/b": true}}

	var (
		mu   sync.Mutex
		seen []string
	)
	results := DetectAllNotify(context.Background(), backend, paths, 2, func(st RepoStatus) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, st.Path)
	})

	if len(results) != len(paths) {
		t.Fatalf("DetectAllNotify() returned %d results, want %d", len(results), len(paths))
	}
	slices.Sort(seen)
	if !slices.Equal(seen, paths) {
		t.Errorf("notified %v, want %v", seen, paths)
	}
}

func TestDetectAll_VerboseKeepsResolvedOrder(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 6; i++ {
		paths = append(paths, fmt.Sprintf("/r/%d", i))
	}
	backend := &pathBackend{fakeBackend: fakeBackend{
		parents: linearHistory("c", 3),
		local:   []git.BranchRef{{Name: "main", Head: "c2"}, {Name: "old", Head: "c0"}},
		remote:  []git.BranchRef{{Name: "origin/main", Head: "c2"}},
	}}

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, log.Debug))

	DetectAll(ctx, backend, paths, 8)

	var checked []string
	current := ""
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if repo, ok := strings.CutPrefix(line, "Checking repo: "); ok {
			current = repo
			checked = append(checked, repo)
			continue
		}
		if !strings.Contains(line, " repo="+current+" ") {
			t.Errorf("line %q is not attributed to %s", line, current)
		}
	}
	if !slices.Equal(checked, paths) {
		t.Errorf("checked %v, want %v", checked, paths)
	}
}

func TestProperty_LinearHistoryContainment(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "commits")
		remoteIdx := rapid.IntRange(0, n-1).Draw(t, "remote")
		localIdx := rapid.SliceOfN(rapid.IntRange(0, n-1), 0, 5).Draw(t, "locals")

		local := []git.BranchRef{{Name: "tracking", Head: fmt.Sprintf("c%d", remoteIdx)}}
		heads := []int{remoteIdx}
		for i, idx := range localIdx {
			local = append(local, git.BranchRef{Name: fmt.Sprintf("b%d", i), Head: fmt.Sprintf("c%d", idx)})
			heads = append(heads, idx)
		}

		backend := &fakeBackend{
			parents: linearHistory("c", n),
			local:   local,
			remote:  []git.BranchRef{{Name: "origin/main", Head: fmt.Sprintf("c%d", remoteIdx)}},
		}
		got, err := Detect(context.Background(), backend, "/r")
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}

		for i, b := range local {
			// On a single chain a branch is contained in the remote iff it is not newer.
			wantPushed := heads[i] <= remoteIdx
			if slices.Contains(got.Unpushed, b.Name) == wantPushed {
				t.Fatalf("branch %s at %s with remote at c%d: unpushed=%v", b.Name, b.Head, remoteIdx, got.Unpushed)
			}
		}
	})
}
