// Package progress shows a terminal progress bar for a running render.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	barWidth     = 40
	refreshEvery = 100 * time.Millisecond
)

type tickMsg time.Time

type finishMsg struct{}

// model is the bubbletea model behind Display. Workers bump the shared
// counter; the model samples it on every tick.
type model struct {
	total    int
	done     *atomic.Int64
	start    time.Time
	now      time.Time
	finished bool
}

func newModel(total int, done *atomic.Int64, start time.Time) model {
	return model{total: total, done: done, start: start, now: start}
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case finishMsg:
		m.finished = true
		m.now = time.Now()
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	done := int(m.done.Load())
	if done > m.total {
		done = m.total
	}

	fraction := 1.0
	if m.total > 0 {
		fraction = float64(done) / float64(m.total)
	}
	filled := int(fraction * barWidth)

	elapsed := m.now.Sub(m.start).Round(100 * time.Millisecond)
	line := fmt.Sprintf("[%s%s] %3d%%  %d/%d px  %v",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled),
		int(fraction*100), done, m.total, elapsed)
	if m.finished {
		line += "\n"
	}
	return line
}

// Display is a live progress bar. Add is safe to call from many goroutines.
type Display struct {
	done    atomic.Int64
	program *tea.Program
	exited  chan struct{}
	err     error
}

// Start draws a progress bar for total pixels on out until Finish is called
func Start(total int, out io.Writer) *Display {
	return start(total, out)
}

func start(total int, out io.Writer, opts ...tea.ProgramOption) *Display {
	d := &Display{exited: make(chan struct{})}
	m := newModel(total, &d.done, time.Now())
	opts = append([]tea.ProgramOption{tea.WithOutput(out), tea.WithInput(nil)}, opts...)
	d.program = tea.NewProgram(m, opts...)

	go func() {
		defer close(d.exited)
		_, d.err = d.program.Run()
	}()
	return d
}

// Add records n more completed pixels
func (d *Display) Add(n int) {
	d.done.Add(int64(n))
}

// Finish draws the final state, waits for the display to shut down and
// returns the error that stopped it, if any
func (d *Display) Finish() error {
	d.program.Send(finishMsg{})
	<-d.exited
	if d.err != nil {
		return fmt.Errorf("progress display: %w", d.err)
	}
	return nil
}
