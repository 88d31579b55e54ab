package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTyping drives a Typing to completion on a virtual timeline and
// returns every intermediate text with the time it became visible.
func runTyping(t *testing.T, ty *Typing) (texts []string, at []time.Duration) {
	t.Helper()
	var now time.Duration
	for {
		d, ok := ty.NextDelay()
		if !ok {
			return texts, at
		}
		now += d
		require.True(t, ty.Advance())
		texts = append(texts, ty.Text())
		at = append(at, now)
		require.LessOrEqual(t, len(texts), ty.Len(), "more ticks than graphemes")
	}
}

func TestTyping_RevealsPrefixesInOrder(t *testing.T) {
	for _, s := range []string{"a", "Our Story", "How We Bring Ideas to Life", "héllo wörld"} {
		ty := NewTyping(s, 50*time.Millisecond, 10*time.Millisecond)
		texts, _ := runTyping(t, ty)

		require.Len(t, texts, ty.Len())
		for i, got := range texts {
			assert.Equal(t, string([]rune(s)[:i+1]), got)
		}
		st := ty.State()
		assert.Equal(t, ty.Len(), st.Revealed)
		assert.True(t, st.Complete)
		assert.Equal(t, s, ty.Text())
	}
}

func TestTyping_GraphemeClusters(t *testing.T) {
	// Flag emoji and a combining accent each count as one character.
	ty := NewTyping("🇮🇳é", 0, time.Millisecond)
	assert.Equal(t, 2, ty.Len())
	ty.Advance()
	assert.Equal(t, "🇮🇳", ty.Text())
	ty.Advance()
	assert.True(t, ty.Done())
}

func TestTyping_NthRevealNeverEarly(t *testing.T) {
	delay, interval := 150*time.Millisecond, 20*time.Millisecond
	ty := NewTyping("Driving Innovation", delay, interval)
	_, at := runTyping(t, ty)
	for i, ts := range at {
		n := time.Duration(i + 1)
		assert.GreaterOrEqual(t, ts, delay+n*interval, "char %d", i+1)
	}
}

func TestTyping_EmptyTextIsComplete(t *testing.T) {
	ty := NewTyping("", time.Second, time.Second)
	assert.True(t, ty.Done())
	_, ok := ty.NextDelay()
	assert.False(t, ok, "no tick should be scheduled for empty text")
	assert.False(t, ty.Advance())
	assert.Equal(t, "", ty.Text())
}

func TestTyping_ZeroInterval(t *testing.T) {
	ty := NewTyping("abc", 0, 0)
	d, ok := ty.NextDelay()
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), d)
	texts, _ := runTyping(t, ty)
	assert.Equal(t, []string{"a", "ab", "abc"}, texts)
}

func TestTyping_SetTextResets(t *testing.T) {
	ty := NewTyping("first", 0, time.Millisecond)
	ty.Advance()
	ty.Advance()
	require.Equal(t, 2, ty.State().Revealed)

	assert.False(t, ty.SetText("first"), "same text must not reset")
	assert.Equal(t, 2, ty.State().Revealed)

	assert.True(t, ty.SetText("second"))
	st := ty.State()
	assert.Equal(t, 0, st.Revealed)
	assert.False(t, st.Complete)
	assert.Equal(t, "", ty.Text())

	d, ok := ty.NextDelay()
	require.True(t, ok)
	assert.Equal(t, time.Millisecond, d)
}

func TestTyping_MonotonicUntilReset(t *testing.T) {
	ty := NewTyping("monotonic", 0, 0)
	prev := 0
	for ty.Advance() {
		cur := ty.State().Revealed
		assert.Greater(t, cur, prev)
		prev = cur
	}
	ty.Advance()
	assert.Equal(t, prev, ty.State().Revealed)
}

func TestTyping_Finish(t *testing.T) {
	ty := NewTyping("skip ahead", time.Second, time.Second)
	ty.Finish()
	assert.True(t, ty.Done())
	assert.Equal(t, "skip ahead", ty.Text())
}
