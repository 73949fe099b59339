package resolve

// RuleReport describes what a single rule contributed to the resolved set.
type RuleReport struct {
	Rule Rule
	// Repos are, for an include, the repositories it matched; for an exclude,
	// the repositories it removed.
	Repos []string
	// NonRepos are include matches that are not repository roots.
	NonRepos []string
}

// Unused reports whether the rule had no effect on the resolved set.
func (r RuleReport) Unused() bool {
	return len(r.Repos) == 0
}

// Explain expands rules like Resolve and reports, per rule, what it matched.
// Reports are returned in rule order.
func Explain(rules []Rule, opts Options) ([]RuleReport, error) {
	includes, excludes, err := expand(rules, opts)
	if err != nil {
		return nil, err
	}

	removed := make([][]string, len(excludes))
	seen := make(map[string]bool)
	for _, inc := range includes {
		for _, path := range inc.repos {
			if seen[path] {
				continue
			}
			seen[path] = true
			for i := range excludes {
				if excluded(path, excludes[i:i+1]) {
					removed[i] = append(removed[i], path)
				}
			}
		}
	}

	var reports []RuleReport
	ii, ei := 0, 0
	for _, rule := range rules {
		if rule.Kind == Exclude {
			reports = append(reports, RuleReport{Rule: rule, Repos: removed[ei]})
			ei++
			continue
		}
		inc := includes[ii]
		ii++
		reports = append(reports, RuleReport{Rule: rule, Repos: inc.repos, NonRepos: inc.nonRepos})
	}
	return reports, nil
}
