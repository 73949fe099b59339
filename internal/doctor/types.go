package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnv represents problems with the git binary or config files.
	CategoryEnv IssueCategory = "env"
	// CategoryRules represents repos file rules that have no effect.
	CategoryRules IssueCategory = "rules"
	// CategoryRepos represents resolved paths git cannot open.
	CategoryRepos IssueCategory = "repos"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        `json:"key"`         // rule text or path
	Description string        `json:"description"` // human-readable description
	Hint        string        `json:"hint,omitempty"`
	Category    IssueCategory `json:"category"`
}

// Stats tracks what was checked.
type Stats struct {
	Rules       int `json:"rules"`        // rules in the repos file
	UnusedRules int `json:"unused_rules"` // rules that matched or removed nothing
	Repos       int `json:"repos"`        // resolved repositories
	BrokenRepos int `json:"broken_repos"` // resolved repositories git cannot open
}

// Report is the result of a doctor run.
type Report struct {
	Stats  Stats   `json:"stats"`
	Issues []Issue `json:"issues"`
}
