package reveal

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// TypingState is a snapshot of a typing animation.
type TypingState struct {
	FullText string
	Revealed int // graphemes shown, 0..Len
	Complete bool
}

// Typing reveals FullText one grapheme cluster at a time.
// Revealed never decreases until the text changes.
type Typing struct {
	InitialDelay time.Duration
	Interval     time.Duration

	state    TypingState
	clusters []string
}

// NewTyping creates a typing animation for text. An empty text starts complete.
func NewTyping(text string, initialDelay, interval time.Duration) *Typing {
	t := &Typing{InitialDelay: initialDelay, Interval: interval}
	t.reset(text)
	return t
}

func (t *Typing) reset(text string) {
	t.clusters = t.clusters[:0]
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		t.clusters = append(t.clusters, g.Str())
	}
	t.state = TypingState{
		FullText: text,
		Complete: len(t.clusters) == 0,
	}
}

// SetText swaps the target text. A different text resets progress to zero
// and returns true; the same text is a no-op.
func (t *Typing) SetText(text string) bool {
	if text == t.state.FullText {
		return false
	}
	t.reset(text)
	return true
}

// State returns the current snapshot.
func (t *Typing) State() TypingState {
	return t.state
}

// Len returns the number of graphemes in the full text.
func (t *Typing) Len() int {
	return len(t.clusters)
}

// Text returns the revealed prefix.
func (t *Typing) Text() string {
	return strings.Join(t.clusters[:t.state.Revealed], "")
}

// Done reports whether the full text is revealed.
func (t *Typing) Done() bool {
	return t.state.Complete
}

// NextDelay returns how long to wait before the next Advance.
// The first character waits InitialDelay plus one Interval.
// ok is false once the animation is complete.
func (t *Typing) NextDelay() (d time.Duration, ok bool) {
	if t.state.Complete {
		return 0, false
	}
	d = t.Interval
	if t.state.Revealed == 0 {
		d += t.InitialDelay
	}
	if d < 0 {
		d = 0
	}
	return d, true
}

// Advance reveals the next grapheme. It returns false when nothing was left.
func (t *Typing) Advance() bool {
	if t.state.Complete {
		return false
	}
	t.state.Revealed++
	if t.state.Revealed >= len(t.clusters) {
		t.state.Revealed = len(t.clusters)
		t.state.Complete = true
	}
	return true
}

// Finish reveals everything at once.
func (t *Typing) Finish() {
	t.state.Revealed = len(t.clusters)
	t.state.Complete = true
}
