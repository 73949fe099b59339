package config

import "fmt"

// Error reports a configuration problem that prevents rgit from running:
// an unreadable or invalid settings file, an unreadable repos file, or an
// unknown home directory.
type Error struct {
	Op   string
	Path string // empty when no file is involved
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
