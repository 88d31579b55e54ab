package ui

import (
	"testing"
	"time"

	"websakha/internal/content"
	"websakha/internal/reveal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSection(once bool) content.Section {
	return content.Section{
		ID:          "about",
		Eyebrow:     "STORY",
		Title:       []string{"Driving Innovation with a", "Purpose"},
		Description: "Learn about our journey.",
		Threshold:   0.3,
		Once:        &once,
		Cards: []content.Card{
			{Glyph: "bulb", Title: "Mission", Description: "Empower."},
			{Glyph: "cube", Title: "Values", Description: "Integrity."},
		},
	}
}

// finishTyping completes both typewriters and lets the section notice.
func finishTyping(s *Section) {
	s.eyebrow.Skip()
	s.title.Skip()
	s.Update(typeTickMsg{})
}

func TestSection_RevealsAtThreshold(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)

	assert.Nil(t, s.Observe(0.2))
	assert.False(t, s.Revealed())
	assert.NotContains(t, s.View(100), "Driving")

	require.NotNil(t, s.Observe(0.3))
	assert.True(t, s.Revealed())
	assert.True(t, s.eyebrow.Started())
	assert.True(t, s.title.Started())
}

func TestSection_OnceStaysRevealed(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)
	s.Observe(1)
	finishTyping(s)

	assert.Nil(t, s.Observe(0))
	assert.True(t, s.Revealed())
	assert.True(t, s.Latch().Visible())
	assert.Contains(t, s.View(100), "Driving Innovation with a Purpose")
}

func TestSection_RepeatingRewinds(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(false), nil, fastTiming(), clk)
	s.Observe(1)
	finishTyping(s)
	oldTitle := s.title

	s.Observe(0)
	assert.False(t, s.Revealed())
	assert.False(t, s.Latch().Visible())
	assert.Equal(t, "", s.title.Text())
	assert.False(t, s.title.Started())
	assert.True(t, oldTitle.life.ended, "old typewriter is torn down")

	require.NotNil(t, s.Observe(0.5))
	assert.True(t, s.Revealed())
}

func TestSection_DescriptionFollowsTitle(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)
	s.Observe(1)
	assert.NotContains(t, s.View(100), "Learn about")

	finishTyping(s)
	assert.Contains(t, s.View(100), "Learn about our journey.")
}

func TestSection_CardsStagger(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	timing := fastTiming()
	s := NewSection(testSection(true), nil, timing, clk)
	s.Observe(1)

	view := s.View(60)
	assert.NotContains(t, view, "Mission")

	clk.Advance(cardDelay)
	view = s.View(60)
	assert.Contains(t, view, "Mission")
	assert.NotContains(t, view, "Values")

	clk.Advance(timing.StaggerStep)
	assert.Contains(t, s.View(60), "Values")
}

func TestSection_FramesSettleSprings(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)
	s.Observe(1)
	finishTyping(s)
	start := s.indents[0].pos

	clk.Advance(time.Second)
	for range 200 {
		s.Update(sectionFrameMsg{id: s.id, gen: s.life.gen})
	}
	assert.Greater(t, start, 0.0)
	assert.Equal(t, 0, s.indents[0].cells())
	assert.False(t, s.animating(), "entrance is over")
}

func TestSection_UnmountCancelsFrames(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)
	s.Observe(1)
	s.framing = false
	frame := s.frames()
	require.NotNil(t, frame)
	s.Unmount()

	assert.Nil(t, frame())
	assert.Nil(t, s.Update(sectionFrameMsg{id: s.id, gen: s.life.gen}))
	assert.True(t, s.eyebrow.life.ended)
	assert.True(t, s.title.life.ended)
}

func TestSection_HiddenPartsKeepHeight(t *testing.T) {
	clk := reveal.NewFakeClock(epoch)
	s := NewSection(testSection(true), nil, fastTiming(), clk)
	before := s.View(80)

	s.Observe(1)
	finishTyping(s)
	clk.Advance(time.Second)
	after := s.View(80)

	assert.Equal(t, lineCount(before), lineCount(after))
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name                     string
		top, h, offset, viewport int
		want                     float64
	}{
		{"fully inside", 5, 10, 0, 30, 1},
		{"below the fold", 40, 10, 0, 30, 0},
		{"half visible", 25, 10, 0, 30, 0.5},
		{"scrolled past", 0, 10, 20, 30, 0},
		{"taller than viewport", 0, 100, 10, 30, 1},
		{"empty block", 0, 0, 0, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, visibleRatio(tt.top, tt.h, tt.offset, tt.viewport), 1e-9)
		})
	}
}
