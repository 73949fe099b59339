package static

import (
	"strings"
	"testing"
	"time"

	"github.com/raphi011/rgit/internal/recent"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"A"}, nil); got != "" {
		t.Errorf("RenderTable() with no rows = %q, want empty", got)
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	t.Parallel()

	out := RenderTable([]string{"NAME", "AGE"}, [][]string{
		{"a", "1 day"},
		{"longer-name", "2 days"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}

	// The second column starts at the same offset on every line.
	col := strings.Index(lines[2], "2 days")
	if col <= 0 {
		t.Fatalf("second column missing in %q", lines[2])
	}
	if strings.Index(lines[1], "1 day") != col {
		t.Errorf("columns not aligned:\n%s", out)
	}
}

func TestRecentTableRow(t *testing.T) {
	t.Parallel()

	seen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	h := recent.Hit{BranchUsage: recent.BranchUsage{
		Branch: "feature-x",
		SeenAt: seen,
		Age:    "3 hours",
	}}

	row := RecentTableRow(h, "2006-01-02")

	if len(row) != len(RecentHeaders) {
		t.Fatalf("expected %d columns, got %d", len(RecentHeaders), len(row))
	}
	if !strings.Contains(row[0], "feature-x") {
		t.Errorf("column 0 (BRANCH) = %q", row[0])
	}
	if row[1] != "3 hours ago" {
		t.Errorf("column 1 (LAST USED) = %q, want %q", row[1], "3 hours ago")
	}
	if !strings.Contains(row[2], "2024-03-01") {
		t.Errorf("column 2 (DATE) = %q", row[2])
	}
}

func TestRenderRecent(t *testing.T) {
	t.Parallel()

	hits := []recent.Hit{
		{BranchUsage: recent.BranchUsage{Branch: "main", Age: "1 minute"}},
		{BranchUsage: recent.BranchUsage{Branch: "dev", Age: "2 days"}},
	}

	out := RenderRecent(hits, time.RFC1123Z)
	for _, want := range []string{"BRANCH", "main", "dev", "2 days ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRecent() missing %q:\n%s", want, out)
		}
	}
	if RenderRecent(nil, time.RFC1123Z) != "" {
		t.Error("RenderRecent(nil) should be empty")
	}
}
