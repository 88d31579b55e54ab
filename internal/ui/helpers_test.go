package ui

import (
	"strings"
	"testing"
	"time"

	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// keyMsg creates a tea.KeyMsg the way Bubble Tea reports s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// pump runs commands on their own goroutines, the way the Bubble Tea
// runtime does, and collects the messages they produce.
type pump struct {
	msgs chan tea.Msg
}

func newPump() *pump {
	return &pump{msgs: make(chan tea.Msg, 64)}
}

func (p *pump) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				p.run(c)
			}
			return
		}
		if msg != nil {
			p.msgs <- msg
		}
	}()
}

// next waits for the next message.
func (p *pump) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-p.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

// quiet asserts nothing is delivered for a short while.
func (p *pump) quiet(t *testing.T) {
	t.Helper()
	select {
	case msg := <-p.msgs:
		t.Fatalf("unexpected message %T", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

// nextOf waits for a message of type T, dropping others.
func nextOf[T tea.Msg](t *testing.T, p *pump) T {
	t.Helper()
	for {
		if msg, ok := p.next(t).(T); ok {
			return msg
		}
	}
}

func waitForWaiters(t *testing.T, clk *reveal.FakeClock, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return clk.Waiters() >= n }, 2*time.Second, time.Millisecond)
}

// fastTiming keeps unit tests short while preserving ordering.
func fastTiming() Timing {
	return Timing{
		SplashMail:     100 * time.Millisecond,
		SplashLogo:     50 * time.Millisecond,
		TypingDelay:    10 * time.Millisecond,
		TypingInterval: time.Millisecond,
		StaggerStep:    10 * time.Millisecond,
	}
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// plain drops styling so assertions see the text a reader sees.
func plain(s string) string {
	return ansi.Strip(s)
}
