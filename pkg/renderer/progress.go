package renderer

import "sync"

// ProgressFunc receives the number of pixels completed since the previous call
type ProgressFunc func(pixels int)

// progressReporter serializes calls to a ProgressFunc across workers
type progressReporter struct {
	mu sync.Mutex
	fn ProgressFunc
}

func newProgressReporter(fn ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn}
}

func (p *progressReporter) report(pixels int) {
	if p == nil || p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn(pixels)
}
