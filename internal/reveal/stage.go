package reveal

import "time"

// Props are the rendering properties a stage declares.
type Props struct {
	Visible bool
	Faint   bool
	Indent  int // columns of horizontal offset; a spring eases toward it
}

// Stage is one named step of an entrance animation, starting at Start
// relative to the moment the owning element was revealed.
type Stage struct {
	Name  string
	Start time.Duration
	Props Props
}

// Hidden is what a plan resolves to before its first stage starts.
var Hidden = Stage{Name: "hidden"}

// Plan is an ordered list of stages. Later stages replace earlier ones
// entirely; properties are never merged.
type Plan []Stage

// Resolve returns the last stage whose Start is <= elapsed, or Hidden.
// An empty plan is always fully shown.
func (p Plan) Resolve(elapsed time.Duration) Stage {
	if len(p) == 0 {
		return Stage{Name: "static", Props: Props{Visible: true}}
	}
	current := Hidden
	for _, s := range p {
		if s.Start > elapsed {
			break
		}
		current = s
	}
	return current
}

// Shift returns a copy of p with every stage delayed by d.
func (p Plan) Shift(d time.Duration) Plan {
	out := make(Plan, len(p))
	for i, s := range p {
		s.Start += d
		out[i] = s
	}
	return out
}

// End is the start of the final stage; after it the plan is settled.
func (p Plan) End() time.Duration {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Start
}

// Stagger returns n copies of base, the i-th delayed by delay + i*step.
func Stagger(base Plan, delay, step time.Duration, n int) []Plan {
	plans := make([]Plan, n)
	for i := range n {
		plans[i] = base.Shift(delay + time.Duration(i)*step)
	}
	return plans
}

// Stock plans, in terminal units.
var (
	// FadeIn shows faint text first, then full intensity.
	FadeIn = Plan{
		{Name: "enter", Start: 0, Props: Props{Visible: true, Faint: true}},
		{Name: "show", Start: 300 * time.Millisecond, Props: Props{Visible: true}},
	}

	// SlideUp enters indented and faint, then settles flush.
	SlideUp = Plan{
		{Name: "enter", Start: 0, Props: Props{Visible: true, Faint: true, Indent: 6}},
		{Name: "show", Start: 350 * time.Millisecond, Props: Props{Visible: true}},
	}

	// Pop enters indented, overshoots the margin slightly, then settles.
	Pop = Plan{
		{Name: "enter", Start: 0, Props: Props{Visible: true, Faint: true, Indent: 8}},
		{Name: "grow", Start: 250 * time.Millisecond, Props: Props{Visible: true, Indent: 2}},
		{Name: "show", Start: 500 * time.Millisecond, Props: Props{Visible: true}},
	}
)
