// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/rgit/internal/recent"
	"github.com/raphi011/rgit/internal/ui/styles"
)

// RecentHeaders are the columns of the "rgit recent" table.
var RecentHeaders = []string{"BRANCH", "LAST USED", "DATE"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// RecentTableRow formats one hit as BRANCH, LAST USED, DATE.
// The date uses layout in the local zone.
func RecentTableRow(h recent.Hit, layout string) []string {
	return []string{
		styles.Highlight(h.Branch, h.MatchedIndexes, styles.SuccessStyle),
		h.Age + " ago",
		styles.MutedStyle.Render(h.SeenAt.Format(layout)),
	}
}

// RenderRecent renders the recent-branch table. Returns "" for no hits.
func RenderRecent(hits []recent.Hit, layout string) string {
	rows := make([][]string, len(hits))
	for i, h := range hits {
		rows[i] = RecentTableRow(h, layout)
	}
	return RenderTable(RecentHeaders, rows)
}
