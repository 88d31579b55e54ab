package ui

// CompactWidth is the terminal width below which the layout collapses,
// the terminal counterpart of a mobile breakpoint.
const CompactWidth = 80

// Size is a terminal size snapshot.
type Size struct {
	Width   int
	Height  int
	Compact bool
}

// ViewportSize observes the terminal size. The root model owns it and
// feeds it from tea.WindowSizeMsg; components read Current or subscribe.
// It is only touched from the Update goroutine.
type ViewportSize struct {
	current      Size
	compactBelow int
	subs         []subscriber
	nextSub      int
}

type subscriber struct {
	id int
	fn func(Size)
}

// NewViewportSize returns an observer with the given compact breakpoint.
func NewViewportSize(compactBelow int) *ViewportSize {
	return &ViewportSize{compactBelow: compactBelow}
}

// Current returns the last observed size.
func (v *ViewportSize) Current() Size {
	return v.current
}

// Compact reports whether the current width is below the breakpoint.
func (v *ViewportSize) Compact() bool {
	return v.current.Compact
}

// Set records a new size and notifies subscribers if it changed.
func (v *ViewportSize) Set(width, height int) bool {
	next := Size{Width: width, Height: height, Compact: width < v.compactBelow}
	if next == v.current {
		return false
	}
	v.current = next
	for _, s := range append([]subscriber(nil), v.subs...) {
		s.fn(next)
	}
	return true
}

// Subscribe registers fn for size changes and returns its unsubscribe func.
func (v *ViewportSize) Subscribe(fn func(Size)) (unsubscribe func()) {
	v.nextSub++
	id := v.nextSub
	v.subs = append(v.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
