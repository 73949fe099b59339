// Package doctor diagnoses why "rgit status" reports fewer (or different)
// repositories than expected.
//
// Checks fall into three categories:
//
//   - [CategoryEnv]: git is missing from PATH.
//
//   - [CategoryRules]: repos file rules without effect. An include that
//     matches nothing, an include whose matches are all plain directories,
//     or an exclude that removes nothing.
//
//   - [CategoryRepos]: resolved paths git refuses to open, or paths that
//     sit inside another repository instead of at its root.
//
// Doctor never edits the repos file; each [Issue] names the rule or path so
// it can be fixed by hand.
//
// # Usage
//
//	report, err := doctor.Run(ctx, doctor.Params{...})
//
// [Check] returns the same [Report] without printing.
package doctor
