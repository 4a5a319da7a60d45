package ingestion

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker writes a one-line status while transcripts are analyzed.
// It is safe for concurrent use by pool workers.
type ProgressTracker struct {
	mu      sync.Mutex
	w       io.Writer
	total   int
	done    int
	every   int
	printed int
	width   int
	began   time.Time
	running bool
}

// NewProgressTracker reports on w once every `every` finished documents.
func NewProgressTracker(w io.Writer, total, every int) *ProgressTracker {
	return &ProgressTracker{w: w, total: total, every: max(every, 1)}
}

// Start resets the counters and the clock.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.began = time.Now()
	p.running = true
	p.done, p.printed, p.width = 0, 0, 0
}

// Done records one analyzed document.
func (p *ProgressTracker) Done(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running || p.done == p.total {
		return
	}
	p.done++
	if p.done-p.printed >= p.every {
		p.line(name)
		p.printed = p.done
	}
}

// Finish prints the closing summary. Later calls do nothing until Start.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.line("")
	fmt.Fprintf(p.w, "\n%d de %d documentos analizados en %s\n",
		p.done, p.total, time.Since(p.began).Round(time.Millisecond))
}

// Elapsed is the time since Start, or zero if never started.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.began.IsZero() {
		return 0
	}
	return time.Since(p.began)
}

// line redraws the status in place; the lock must be held.
func (p *ProgressTracker) line(name string) {
	pct := 100.0
	if p.total > 0 {
		pct = float64(p.done) * 100 / float64(p.total)
	}
	s := fmt.Sprintf("\rAnalizando [%d/%d] %3.0f%% %s", p.done, p.total, pct, name)
	// pad over leftovers of a longer previous name
	if n := len(s); n < p.width {
		s += fmt.Sprintf("%*s", p.width-n, "")
	} else {
		p.width = n
	}
	fmt.Fprint(p.w, s)
}
