package recent

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Hit is a BranchUsage that matched a filter query.
type Hit struct {
	BranchUsage
	// MatchedIndexes are rune positions in Branch that matched the query.
	MatchedIndexes []int `json:"-"`
}

// usageSource implements fuzzy.Source over branch names.
type usageSource []BranchUsage

func (s usageSource) String(i int) string { return s[i].Branch }
func (s usageSource) Len() int            { return len(s) }

// Filter fuzzy-matches query against branch names. Matches keep their
// recency order rather than the fuzzy score order. An empty query returns
// every usage.
func Filter(usages []BranchUsage, query string) []Hit {
	if query == "" {
		hits := make([]Hit, len(usages))
		for i, u := range usages {
			hits[i] = Hit{BranchUsage: u}
		}
		return hits
	}

	matches := fuzzy.FindFrom(query, usageSource(usages))
	slices.SortFunc(matches, func(a, b fuzzy.Match) int { return a.Index - b.Index })

	hits := make([]Hit, len(matches))
	for i, m := range matches {
		hits[i] = Hit{BranchUsage: usages[m.Index], MatchedIndexes: m.MatchedIndexes}
	}
	return hits
}

// Limit truncates hits to n entries; n <= 0 means no limit.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
