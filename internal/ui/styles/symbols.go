package styles

import (
	"fmt"
	"strings"
)

// Symbols holds the markers shown next to repository headings
type Symbols struct {
	Dirty    string
	Unpushed string
	Clean    string
	Failed   string
}

// Default symbols
var defaultSymbols = Symbols{
	Dirty:    "*",
	Unpushed: "↑",
	Clean:    "✓",
	Failed:   "✕",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Dirty:    "\uf040", // nf-fa-pencil
	Unpushed: "\ue725", // nf-dev-git_branch
	Clean:    "\uf00c", // nf-fa-check
	Failed:   "\uf00d", // nf-fa-times
}

var useNerdfont bool

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// FormatMarkers returns the unstyled markers for a repository:
// the dirty symbol, the unpushed symbol followed by the branch count,
// or the clean symbol when there is neither.
func FormatMarkers(dirty bool, unpushed int) string {
	var parts []string
	if dirty {
		parts = append(parts, currentSymbols.Dirty)
	}
	if unpushed > 0 {
		parts = append(parts, fmt.Sprintf("%s%d", currentSymbols.Unpushed, unpushed))
	}
	if len(parts) == 0 {
		return currentSymbols.Clean
	}
	return strings.Join(parts, " ")
}

// RenderMarkers is FormatMarkers styled with the active theme.
func RenderMarkers(dirty bool, unpushed int) string {
	if !dirty && unpushed == 0 {
		return SuccessStyle.Render(currentSymbols.Clean)
	}
	return WarningStyle.Render(FormatMarkers(dirty, unpushed))
}

// RenderFailed returns the styled failure marker.
func RenderFailed() string {
	return ErrorStyle.Render(currentSymbols.Failed)
}
