package ui

// FocusRing rotates focus through an ordered set of targets, wrapping
// at both ends.
type FocusRing struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// Next moves focus forward and returns the new target.
func (f *FocusRing) Next() string {
	return f.step(1)
}

// Prev moves focus backward and returns the new target.
func (f *FocusRing) Prev() string {
	return f.step(-1)
}

// Index returns the position of the current target, or -1.
func (f *FocusRing) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// SetFocus focuses id if it is part of the ring.
func (f *FocusRing) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.move(id)
			return true
		}
	}
	return false
}

func (f *FocusRing) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.Index()
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusRing) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
