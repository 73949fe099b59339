// Package log provides context-aware diagnostic logging for rgit.
//
// Diagnostics go to stderr so stdout stays clean for reports. The amount of
// output is controlled by a [Level]: Normal prints only what callers print
// explicitly, Info adds progress lines ("checking repo ..."), Debug adds
// branch-by-branch reasoning and every external command that is executed.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Level controls how much diagnostic output is written.
type Level int

const (
	// Quiet suppresses all output, including Printf.
	Quiet Level = iota
	Normal
	Info
	Debug
)

// LevelFromCount maps a repeated -v flag to a level (0 = Normal, 1 = Info, 2+ = Debug).
func LevelFromCount(n int) Level {
	switch {
	case n <= 0:
		return Normal
	case n == 1:
		return Info
	default:
		return Debug
	}
}

func (l Level) String() string {
	switch l {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Info:
		return "info"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

type ctxKey struct{}

// Logger writes leveled diagnostics.
type Logger struct {
	out   io.Writer
	level Level
}

// New creates a new logger.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a quiet logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, level: Quiet}
}

// Level returns the configured level.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	return l.level != Quiet && l.level >= lvl
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.level == Quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.level == Quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Infof writes a line at Info level. A trailing newline is added.
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled(Info) {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debug writes a message with key=value pairs at Debug level.
// An unpaired trailing key is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.Enabled(Debug) {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command about to run in dir and returns a
// function that records how long it took. No-op below Debug.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.Enabled(Debug) {
		return func(time.Duration) {}
	}
	line := "$ " + name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// IsVerbose returns true at Info level and above.
func (l *Logger) IsVerbose() bool {
	return l.Enabled(Info)
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
