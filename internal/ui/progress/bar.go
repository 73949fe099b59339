// Package progress shows a progress bar on stderr while repositories are
// inspected. Nothing is drawn unless Start is called, so callers decide
// whether the terminal should see it.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/rgit/internal/ui/styles"
)

// advanceMsg carries the new completed count to the model.
type advanceMsg int

// Bar counts finished items out of a known total.
type Bar struct {
	program   *tea.Program
	out       io.Writer
	updateCh  chan int
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	total     int
	current   int
	label     string
}

type barModel struct {
	progress progress.Model
	total    int
	current  int
	label    string
	updateCh chan int
}

func (m barModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m barModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-m.updateCh
		if !ok {
			return tea.Quit()
		}
		return advanceMsg(n)
	}
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		m.current = int(msg)
		return m, m.waitForUpdate()
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

func (m barModel) View() tea.View {
	return tea.NewView(render(m.progress, m.current, m.total, m.label))
}

// render formats one line: [████░░░░] 12/27 repositories
func render(bar progress.Model, current, total int, label string) string {
	percent := 0.0
	if total > 0 {
		percent = float64(current) / float64(total)
	}
	return fmt.Sprintf("%s %d/%d %s", bar.ViewAs(percent), current, total, label)
}

// New creates a bar over total items described by label, drawn on out.
func New(out io.Writer, total int, label string) *Bar {
	return &Bar{
		out:      out,
		updateCh: make(chan int, 10),
		done:     make(chan struct{}),
		total:    total,
		label:    label,
	}
}

func newModel() progress.Model {
	return progress.New(
		progress.WithWidth(30),
		progress.WithoutPercentage(),
		progress.WithColors(styles.Primary, styles.Accent),
	)
}

// Start begins drawing. Calling it twice has no effect.
func (b *Bar) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isRunning {
		return
	}

	model := barModel{
		progress: newModel(),
		total:    b.total,
		current:  b.current,
		label:    b.label,
		updateCh: b.updateCh,
	}

	b.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(b.out),
	)
	b.isRunning = true

	go func() {
		_, _ = b.program.Run()
		close(b.done)
	}()
}

// Advance marks one more item as finished. Safe for concurrent use.
func (b *Bar) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	if !b.isRunning {
		return
	}

	// drop the update if the model is behind, the next one carries the count
	select {
	case b.updateCh <- b.current:
	default:
	}
}

// Current returns the number of finished items.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Total returns the number of items.
func (b *Bar) Total() int {
	return b.total
}

// Stop removes the bar from the terminal.
func (b *Bar) Stop() {
	b.mu.Lock()
	if !b.isRunning {
		b.mu.Unlock()
		return
	}
	b.isRunning = false
	close(b.updateCh)
	b.mu.Unlock()

	if b.program != nil {
		b.program.Quit()
	}

	select {
	case <-b.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(b.out, "\r\033[K")
}
