package reveal

import "time"

// LoadingPhase is a step of the splash screen.
type LoadingPhase int

const (
	PhaseMail LoadingPhase = iota
	PhaseLogo
	PhaseComplete
)

func (p LoadingPhase) String() string {
	switch p {
	case PhaseMail:
		return "mail"
	case PhaseLogo:
		return "logo"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Sequencer moves strictly Mail -> Logo -> Complete. Each phase is held
// for a fixed duration; the next hold only starts once the previous one ends.
type Sequencer struct {
	MailHold time.Duration
	LogoHold time.Duration

	phase LoadingPhase
}

// NewSequencer returns a sequencer in PhaseMail.
func NewSequencer(mail, logo time.Duration) *Sequencer {
	return &Sequencer{MailHold: mail, LogoHold: logo, phase: PhaseMail}
}

// Phase returns the current phase.
func (s *Sequencer) Phase() LoadingPhase {
	return s.phase
}

// Hold returns how long the current phase lasts. ok is false in PhaseComplete.
func (s *Sequencer) Hold() (d time.Duration, ok bool) {
	switch s.phase {
	case PhaseMail:
		return nonNegative(s.MailHold), true
	case PhaseLogo:
		return nonNegative(s.LogoHold), true
	}
	return 0, false
}

// Advance moves to the next phase and returns it. PhaseComplete is terminal.
func (s *Sequencer) Advance() LoadingPhase {
	if s.phase < PhaseComplete {
		s.phase++
	}
	return s.phase
}

// Total is the elapsed time from start to PhaseComplete.
func (s *Sequencer) Total() time.Duration {
	return nonNegative(s.MailHold) + nonNegative(s.LogoHold)
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
