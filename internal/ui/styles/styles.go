// Package styles provides shared lipgloss styles for terminal output.
//
// Colors come from the active [Theme]; call [Init] once after loading the
// configuration so every package renders with the same palette.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette of the active theme
var (
	Primary color.Color
	Accent  color.Color
	Success color.Color
	Error   color.Color
	Muted   color.Color
	Normal  color.Color
	Info    color.Color
	Warning color.Color
)

// Styles derived from the palette
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle lipgloss.Style
	AccentStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	NormalStyle  lipgloss.Style
	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style

	// HeadingStyle renders the repository path above each status report.
	HeadingStyle lipgloss.Style

	// HighlightStyle marks fuzzy-matched characters.
	HighlightStyle lipgloss.Style
)

func init() {
	applyTheme(DefaultTheme)
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	HeadingStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)
}
