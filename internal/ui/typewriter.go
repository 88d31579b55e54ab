package ui

import (
	"time"

	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const caret = "▌"

type typeTickMsg struct {
	id  int
	gen int
}

// Typewriter reveals a text one grapheme per tick. It is a component, not a
// View: the owner forwards messages to Update and renders View.
type Typewriter struct {
	id     int
	clock  reveal.Clock
	typing *reveal.Typing
	life   lifetime

	started bool

	// Caret shows a blinking caret until the text is complete.
	Caret bool
	Style lipgloss.Style
}

// NewTypewriter prepares text for typing; nothing happens until Start.
func NewTypewriter(text string, delay, interval time.Duration, clk reveal.Clock) *Typewriter {
	return &Typewriter{
		id:     nextID(),
		clock:  clk,
		typing: reveal.NewTyping(text, delay, interval),
		life:   newLifetime(),
		Style:  Styles.Normal,
	}
}

// Start begins typing. Calling it again is a no-op.
func (t *Typewriter) Start() tea.Cmd {
	if t.started || t.life.ended {
		return nil
	}
	t.started = true
	return t.schedule()
}

// Started reports whether Start has been called.
func (t *Typewriter) Started() bool {
	return t.started
}

// SetText swaps the text. A different text cancels the pending tick and
// restarts from nothing; the same text keeps progress.
func (t *Typewriter) SetText(text string) tea.Cmd {
	if !t.typing.SetText(text) {
		return nil
	}
	t.life.renew()
	if !t.started {
		return nil
	}
	return t.schedule()
}

// Update advances on this typewriter's own ticks and ignores everything else.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(typeTickMsg)
	if !ok || tick.id != t.id || !t.life.current(tick.gen) {
		return nil
	}
	if !t.typing.Advance() {
		return nil
	}
	return t.schedule()
}

func (t *Typewriter) schedule() tea.Cmd {
	d, ok := t.typing.NextDelay()
	if !ok {
		return nil
	}
	return after(t.life.ctx, t.clock, d, typeTickMsg{id: t.id, gen: t.life.gen})
}

// Skip reveals the full text at once.
func (t *Typewriter) Skip() {
	t.typing.Finish()
	t.life.renew()
}

// Unmount cancels the pending tick.
func (t *Typewriter) Unmount() {
	t.life.end()
}

// State returns the typing progress.
func (t *Typewriter) State() reveal.TypingState {
	return t.typing.State()
}

// Done reports whether the full text is shown.
func (t *Typewriter) Done() bool {
	return t.typing.Done()
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string {
	return t.typing.Text()
}

// View renders the revealed prefix and, while typing, the caret.
func (t *Typewriter) View() string {
	out := t.Style.Render(t.typing.Text())
	if t.Caret && t.started && !t.typing.Done() {
		out += Styles.Caret.Render(caret)
	}
	return out
}
