package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// spring eases a value toward a target once per animation frame.
type spring struct {
	motion harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// newSpring starts at pos with the same target. Stiffness and damping
// approximate the entrance springs of the web build.
func newSpring(pos float64) *spring {
	return &spring{
		motion: harmonica.NewSpring(harmonica.FPS(int(1/frameInterval.Seconds())), 9.0, 0.55),
		pos:    pos,
		target: pos,
	}
}

func (s *spring) aim(target float64) {
	s.target = target
}

func (s *spring) step() {
	s.pos, s.vel = s.motion.Update(s.pos, s.vel, s.target)
	if s.settled() {
		s.pos, s.vel = s.target, 0
	}
}

func (s *spring) settled() bool {
	return math.Abs(s.pos-s.target) < 0.05 && math.Abs(s.vel) < 0.05
}

// cells is the position rounded to whole terminal cells, never negative.
func (s *spring) cells() int {
	n := int(math.Round(s.pos))
	if n < 0 {
		return 0
	}
	return n
}
