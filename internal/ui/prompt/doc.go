// Package prompt provides a yes/no confirmation prompt for commands that
// are about to overwrite user files.
package prompt
