package progress

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModel_View(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		total    int
		done     int64
		contains []string
	}{
		{"empty", 200, 0, []string{"  0%", "0/200 px"}},
		{"half", 200, 100, []string{" 50%", "100/200 px", strings.Repeat("█", 20)}},
		{"complete", 200, 200, []string{"100%", "200/200 px", strings.Repeat("█", 40)}},
		{"overshoot is capped", 200, 250, []string{"100%", "200/200 px"}},
		{"zero total", 0, 0, []string{"100%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var done atomic.Int64
			done.Store(tt.done)
			view := newModel(tt.total, &done, start).View()
			for _, want := range tt.contains {
				if !strings.Contains(view, want) {
					t.Errorf("expected view %q to contain %q", view, want)
				}
			}
		})
	}
}

func TestModel_TickAdvancesClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var done atomic.Int64
	m := newModel(10, &done, start)

	next, cmd := m.Update(tickMsg(start.Add(1500 * time.Millisecond)))
	if cmd == nil {
		t.Error("expected tick to schedule another tick")
	}
	if view := next.View(); !strings.Contains(view, "1.5s") {
		t.Errorf("expected elapsed 1.5s in %q", view)
	}
}

func TestModel_FinishQuits(t *testing.T) {
	var done atomic.Int64
	m := newModel(10, &done, time.Now())

	next, cmd := m.Update(finishMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if !strings.HasSuffix(next.View(), "\n") {
		t.Error("expected final view to end the line")
	}
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	var done atomic.Int64
	m := newModel(10, &done, time.Now())
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected no command for key input")
	}
}

func TestDisplay_FinishReportsCompletion(t *testing.T) {
	var out bytes.Buffer
	d := Start(100, &out)
	d.Add(60)
	d.Add(40)

	if err := d.Finish(); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
	if !strings.Contains(out.String(), "100/100 px") {
		t.Errorf("expected final frame to show all pixels, got %q", out.String())
	}
}

func TestDisplay_FinishReturnsRunError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := start(100, io.Discard, tea.WithContext(ctx))

	err := d.Finish()
	if !errors.Is(err, tea.ErrProgramKilled) {
		t.Errorf("expected ErrProgramKilled, got %v", err)
	}
}
