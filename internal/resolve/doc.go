// Package resolve turns repository rules into the set of repositories rgit inspects.
//
// Rules come from a line-oriented file:
//
//	# everything under ~/src, one level deep
//	~/src/*
//	~/work/**/
//	!~/src/archive-*
//
// # Rule Evaluation
//
//   - Blank lines and lines starting with "#" are ignored
//   - A leading "!" makes the rule an exclude; anything else is an include
//   - A leading "~" expands to the user's home directory
//   - Relative patterns are taken relative to [Options.Dir]
//
// Include rules are expanded against the filesystem (doublestar syntax, so
// "**" crosses directories). A match survives only if it is a repository
// root. An include that matches nothing contributes nothing; it is never
// treated as a literal path.
//
// Exclude rules are applied after every include has been expanded. They are
// matched as path patterns against the candidates, not expanded.
//
// The result is deduplicated and sorted, so resolving the same rules against
// the same filesystem always yields the same list.
package resolve
