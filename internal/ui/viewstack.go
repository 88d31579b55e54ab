package ui

// History records visited routes for back navigation.
type History struct {
	stack []Route
}

// Push records a visit. Revisiting the current route is a no-op.
func (h *History) Push(r Route) {
	if n := len(h.stack); n > 0 && h.stack[n-1] == r {
		return
	}
	h.stack = append(h.stack, r)
}

// Back drops the current route and returns the previous one.
// The first visited route is never dropped.
func (h *History) Back() (Route, bool) {
	if len(h.stack) < 2 {
		return 0, false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return h.stack[len(h.stack)-1], true
}

// Current returns the route on top of the history.
func (h *History) Current() (Route, bool) {
	if len(h.stack) == 0 {
		return 0, false
	}
	return h.stack[len(h.stack)-1], true
}

// Len returns the number of recorded visits.
func (h *History) Len() int {
	return len(h.stack)
}
