package ui

import (
	"context"
	"sync/atomic"
	"time"

	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the cadence of spring and pulse animation frames.
const frameInterval = time.Second / 30

var lastID int64

// nextID returns a process-unique ID for routing timer messages back to
// the component that armed them.
func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// after returns a single-shot command that delivers msg once d has elapsed
// on clk. If ctx is cancelled first the command returns nil and Bubble Tea
// drops it, so nothing reaches a torn-down component.
func after(ctx context.Context, clk reveal.Clock, d time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if !reveal.Wait(ctx, clk, d) {
			return nil
		}
		return msg
	}
}

// lifetime owns the cancellation of everything a component has scheduled.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	gen    int
	ended  bool
}

func newLifetime() lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return lifetime{ctx: ctx, cancel: cancel}
}

// renew cancels pending callbacks and starts a new generation. An ended
// lifetime stays ended.
func (l *lifetime) renew() {
	if l.ended {
		return
	}
	l.cancel()
	l.ctx, l.cancel = context.WithCancel(context.Background())
	l.gen++
}

// end cancels pending callbacks for good.
func (l *lifetime) end() {
	l.cancel()
	l.ended = true
}

// current reports whether a message tagged gen still belongs to this lifetime.
func (l *lifetime) current(gen int) bool {
	return !l.ended && gen == l.gen
}
