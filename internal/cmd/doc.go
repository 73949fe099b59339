// Package cmd provides helpers for executing external commands with proper error handling.
//
// Every helper takes a context: cancellation kills the child process, and the
// context's logger echoes each command (with its duration) at debug level.
// Failures are returned as [*Error], whose message is the command's stderr so
// that git's own diagnostics reach the user.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoPath, "git", "rev-parse", "--git-dir"); err != nil {
//	    return fmt.Errorf("not a repository: %w", err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "status", "--porcelain")
//
//	// Stream output straight to the user's terminal:
//	err := cmd.StreamContext(ctx, repoPath, os.Stdout, "git", "status", "--short")
//
// # Design Notes
//
// rgit shells out to the git CLI rather than linking a git library. This keeps
// behaviour identical to what the user sees from git itself (config, aliases,
// safe.directory rules, worktrees).
package cmd
