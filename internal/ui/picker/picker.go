// Package picker provides the interactive recent-branch chooser.
//
// The picker shows the recent branches of a repository, narrows them with
// a fuzzy filter as the user types and returns the chosen branch name.
// It renders to stderr so the selection printed on stdout stays pipeable:
//
//	git checkout "$(rgit recent -i)"
package picker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/rgit/internal/recent"
	"github.com/raphi011/rgit/internal/ui/styles"
)

const maxVisible = 10

// Model is the bubbletea model of the picker.
type Model struct {
	usages []recent.BranchUsage
	hits   []recent.Hit
	input  textinput.Model
	cursor int

	chosen    string
	done      bool
	cancelled bool
}

// New creates a picker over usages with the filter pre-filled with query.
func New(usages []recent.BranchUsage, query string) *Model {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "type to filter branches"
	ti.CharLimit = 100
	ti.SetWidth(40)
	ti.SetValue(query)
	ti.Focus()

	m := &Model{usages: usages, input: ti}
	m.refilter()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; other messages go to the text input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.refilter()
				return m, nil
			}
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.hits) > 0 {
				m.chosen = m.hits[m.cursor].Branch
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.hits)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	m.hits = recent.Filter(m.usages, m.input.Value())
	if m.cursor >= len(m.hits) {
		m.cursor = max(0, len(m.hits)-1)
	}
}

func (m *Model) View() tea.View {
	if m.done || m.cancelled {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	var b strings.Builder
	b.WriteString(styles.PrimaryStyle.Render("Recent branches") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.hits) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching branches") + "\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.hits))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		h := m.hits[i]
		cursor := "  "
		base := styles.NormalStyle
		if i == m.cursor {
			cursor = styles.AccentStyle.Render("> ")
			base = styles.AccentStyle
		}
		b.WriteString(cursor + styles.Highlight(h.Branch, h.MatchedIndexes, base))
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  %s ago", h.Age)) + "\n")
	}
	if end < len(m.hits) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ navigate • enter select • esc clear/cancel") + "\n")
	return b.String()
}

// Selected returns the chosen branch; ok is false if the picker was
// cancelled or closed without a choice.
func (m *Model) Selected() (branch string, ok bool) {
	if m.cancelled || !m.done {
		return "", false
	}
	return m.chosen, true
}

// Run shows the picker on stderr and returns the chosen branch.
// ok is false when the user cancelled or there was nothing to choose.
func Run(ctx context.Context, usages []recent.BranchUsage, query string) (branch string, ok bool, err error) {
	if len(usages) == 0 {
		return "", false, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(New(usages, query),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	branch, ok = final.(*Model).Selected()
	return branch, ok, nil
}
