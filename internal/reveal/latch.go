package reveal

// Latch is the visibility flag of one observed region.
//
// An observation crosses the threshold when ratio > 0 and ratio >= Threshold.
// With Once set the flag latches on the first crossing and never resets;
// otherwise it follows the latest observation.
type Latch struct {
	Threshold float64
	Once      bool

	visible bool
}

// NewLatch returns an unset latch.
func NewLatch(threshold float64, once bool) *Latch {
	return &Latch{Threshold: threshold, Once: once}
}

// Observe feeds the current visible ratio (0..1) and reports whether the flag changed.
func (l *Latch) Observe(ratio float64) bool {
	in := ratio > 0 && ratio >= l.Threshold
	if l.Once && l.visible {
		return false
	}
	if in == l.visible {
		return false
	}
	l.visible = in
	return true
}

// Visible returns the current flag.
func (l *Latch) Visible() bool {
	return l.visible
}
