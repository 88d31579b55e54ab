package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup view layered over the current page.
type Overlay struct {
	View    View
	Dismiss []string // keys that close it
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.Dismiss {
		if k == key {
			return true
		}
	}
	return false
}

// OverlayStack holds open overlays; the topmost receives input first.
type OverlayStack struct {
	stack []Overlay
}

// Push opens an overlay on top.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop closes the top overlay, tearing it down.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	unmount(top.View)
	return top, true
}

// Clear closes every overlay.
func (s *OverlayStack) Clear() {
	for s.Len() > 0 {
		s.Pop()
	}
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop routes msg to the top overlay. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}
