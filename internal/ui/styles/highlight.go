package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Highlight renders label with the runes at matched positions in
// HighlightStyle and the rest in base.
func Highlight(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(label) {
		if matchSet[i] {
			b.WriteString(HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
