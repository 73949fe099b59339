// Package git is rgit's read-only view of a git repository.
//
// [Backend] is the capability set the rest of rgit consumes: repository
// discovery, working-tree dirtiness, branch enumeration, commit ancestry and
// the HEAD reflog. [CLI] implements it by shelling out to the git binary, so
// results always agree with what the user sees from git itself.
//
// # Queries
//
//   - [CLI.Discover]: resolve a path to its repository root
//   - [CLI.IsDirty]: uncommitted or untracked changes
//   - [CLI.ListBranches]: local or remote-tracking branches with head commits
//   - [CLI.AheadBehind]: commits reachable from one commit but not the other
//   - [CLI.Reflog]: HEAD history, most recent first
//   - [CLI.BranchExists]: local branch existence
//
// # Errors
//
// A path that is not a repository yields [*RepoAccessError] (matching
// [ErrNotRepo]). Any other failing query yields [*QueryError] carrying the
// operation name and git's stderr. Nothing is retried.
//
// # Rendering helpers
//
// [BranchVerbose] and [StatusShort] stream git's own human-readable output to
// a writer; they are used by the status report and are not part of [Backend].
package git
