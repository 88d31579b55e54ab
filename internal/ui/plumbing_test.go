package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusRing(t *testing.T) {
	var moves [][2]string
	f := &FocusRing{
		Order:    []string{"a", "b", "c"},
		OnChange: func(from, to string) { moves = append(moves, [2]string{from, to}) },
	}

	assert.Equal(t, "c", f.Prev(), "prev from nothing wraps to the end")
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "b", f.Next())
	assert.Equal(t, 1, f.Index())
	assert.False(t, f.SetFocus("zz"))
	assert.True(t, f.SetFocus("b"))
	assert.Equal(t, [][2]string{{"", "c"}, {"c", "a"}, {"a", "b"}}, moves, "no change event for same target")

	empty := &FocusRing{}
	assert.Equal(t, "", empty.Next())
}

func TestHistory(t *testing.T) {
	var h History
	_, ok := h.Back()
	assert.False(t, ok)

	h.Push(RouteOnboard)
	h.Push(RouteTerms)
	h.Push(RouteTerms)
	h.Push(RouteContact)
	assert.Equal(t, 3, h.Len())

	r, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, RouteTerms, r)
	r, _ = h.Back()
	assert.Equal(t, RouteOnboard, r)
	_, ok = h.Back()
	assert.False(t, ok, "first route is never dropped")
	cur, _ := h.Current()
	assert.Equal(t, RouteOnboard, cur)
}

// stubView counts unmounts and echoes updates.
type stubView struct {
	updates   int
	unmounted int
}

func (s *stubView) Init() tea.Cmd { return nil }
func (s *stubView) View() string  { return "stub" }
func (s *stubView) Unmount()      { s.unmounted++ }

func (s *stubView) Update(tea.Msg) (View, tea.Cmd) {
	s.updates++
	return s, nil
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	bottom, top := &stubView{}, &stubView{}
	s.Push(Overlay{View: bottom})
	s.Push(Overlay{View: top, Dismiss: []string{"esc"}})

	peek, ok := s.Peek()
	require.True(t, ok)
	assert.True(t, peek.IsDismissKey("esc"))
	assert.False(t, peek.IsDismissKey("q"))

	_, handled := s.UpdateTop(keyMsg("x"))
	assert.True(t, handled)
	assert.Equal(t, 1, top.updates)
	assert.Equal(t, 0, bottom.updates)

	s.Pop()
	assert.Equal(t, 1, top.unmounted)
	s.Clear()
	assert.Equal(t, 1, bottom.unmounted)
	assert.Equal(t, 0, s.Len())
	_, handled = s.UpdateTop(keyMsg("x"))
	assert.False(t, handled)
}

func TestViewportSize(t *testing.T) {
	vs := NewViewportSize(CompactWidth)
	var seen []Size
	unsub := vs.Subscribe(func(s Size) { seen = append(seen, s) })

	assert.True(t, vs.Set(100, 30))
	assert.False(t, vs.Set(100, 30), "unchanged size does not notify")
	assert.True(t, vs.Set(79, 30))
	assert.True(t, vs.Compact())
	unsub()
	vs.Set(120, 30)

	assert.Equal(t, []Size{{100, 30, false}, {79, 30, true}}, seen)
	assert.Equal(t, Size{Width: 120, Height: 30}, vs.Current())
}

func TestRoutes(t *testing.T) {
	for _, r := range Routes {
		got, ok := ParseRoute(r.Path())
		require.True(t, ok)
		assert.Equal(t, r, got)
	}
	assert.Equal(t, "/contact-us", RouteContact.Path())
	_, ok := ParseRoute("/nope")
	assert.False(t, ok)
}
