// Package ui groups the terminal UI of rgit. The subpackages are:
//
//   - styles: theme presets, lipgloss styles and status markers
//   - static: non-interactive tables such as the recent branches table
//   - picker: the interactive fuzzy picker behind "rgit recent -i"
//   - progress: the progress bar drawn while "rgit status" runs
//   - prompt: the confirmation asked by "rgit config init --force"
//
// Everything interactive draws on stderr so stdout stays pipeable.
package ui
