package ui

import (
	"strings"
	"time"

	"websakha/internal/reveal"
	"websakha/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splashPhaseMsg struct {
	id  int
	gen int
}

type splashFrameMsg struct {
	id  int
	gen int
}

var envelope = []string{
	"┌───────────────┐",
	"│╲             ╱│",
	"│  ╲         ╱  │",
	"│    ╲     ╱    │",
	"│      ╲ ╱      │",
	"└───────────────┘",
}

// mailFrames is the letter's path toward the envelope, in columns of offset.
var mailFrames = []int{14, 11, 8, 5, 3, 1, 0}

// SplashView plays the loading screen: a letter flies into an envelope,
// then the logo grows in, then onDone runs exactly once.
type SplashView struct {
	id     int
	clock  reveal.Clock
	seq    *reveal.Sequencer
	life   lifetime
	onDone tea.Cmd

	logo    []string
	name    string
	scale   *spring
	started time.Time
	width   int
	height  int
	done    bool
}

// NewSplashView builds the splash. onDone is returned as a command when
// the sequence completes; it never runs if the view is unmounted first.
func NewSplashView(logo []string, name string, mail, logoHold time.Duration, clk reveal.Clock, onDone tea.Cmd) *SplashView {
	return &SplashView{
		id:     nextID(),
		clock:  clk,
		seq:    reveal.NewSequencer(mail, logoHold),
		life:   newLifetime(),
		onDone: onDone,
		logo:   logo,
		name:   name,
		scale:  newSpring(0.3),
	}
}

// Init arms the first phase hold and the animation frames.
func (s *SplashView) Init() tea.Cmd {
	s.started = s.clock.Now()
	return tea.Batch(s.holdCmd(), s.frameCmd())
}

func (s *SplashView) holdCmd() tea.Cmd {
	d, ok := s.seq.Hold()
	if !ok {
		return nil
	}
	return after(s.life.ctx, s.clock, d, splashPhaseMsg{id: s.id, gen: s.life.gen})
}

func (s *SplashView) frameCmd() tea.Cmd {
	return after(s.life.ctx, s.clock, frameInterval, splashFrameMsg{id: s.id, gen: s.life.gen})
}

// Update implements View.
func (s *SplashView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
	case splashPhaseMsg:
		if msg.id != s.id || !s.life.current(msg.gen) || s.done {
			return s, nil
		}
		switch s.seq.Advance() {
		case reveal.PhaseLogo:
			s.started = s.clock.Now()
			s.scale.aim(1)
			return s, s.holdCmd()
		case reveal.PhaseComplete:
			s.done = true
			s.life.end()
			return s, s.onDone
		}
	case splashFrameMsg:
		if msg.id != s.id || !s.life.current(msg.gen) || s.done {
			return s, nil
		}
		if s.seq.Phase() == reveal.PhaseLogo {
			s.scale.step()
		}
		return s, s.frameCmd()
	}
	return s, nil
}

// Phase returns the current loading phase.
func (s *SplashView) Phase() reveal.LoadingPhase {
	return s.seq.Phase()
}

// Unmount cancels the pending hold; onDone will not run.
func (s *SplashView) Unmount() {
	s.life.end()
}

// View implements View.
func (s *SplashView) View() string {
	var body string
	switch s.seq.Phase() {
	case reveal.PhaseMail:
		body = s.mailView()
	case reveal.PhaseLogo:
		body = s.logoView()
	default:
		return ""
	}
	if s.width == 0 || s.height == 0 {
		return body
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SplashView) mailView() string {
	elapsed := s.clock.Now().Sub(s.started)
	step := s.seq.MailHold / time.Duration(len(mailFrames)+1)
	frame := len(mailFrames) - 1
	if step > 0 {
		frame = min(int(elapsed/step), len(mailFrames)-1)
	}
	letter := strings.Repeat(" ", mailFrames[frame]) + "✉"

	lines := []string{Styles.Highlight.Render(letter), ""}
	for _, l := range envelope {
		lines = append(lines, Styles.Eyebrow.Render(l))
	}
	lines = append(lines, "", Styles.Muted.Render("Loading…"))
	return strings.Join(lines, "\n")
}

// logoView crops the logo symmetrically to the current scale, which
// reads as the mark growing in from the centre.
func (s *SplashView) logoView() string {
	scale := s.scale.pos
	if scale > 1 {
		scale = 1
	}
	lines := make([]string, 0, len(s.logo)+2)
	for _, l := range s.logo {
		lines = append(lines, Styles.Brand.Render(cropCenter(l, scale)))
	}
	lines = append(lines, "", Styles.Title.Render(cropCenter(s.name, scale)))
	return strings.Join(lines, "\n")
}

// cropCenter keeps the middle fraction of a plain line, preserving width.
func cropCenter(line string, fraction float64) string {
	runes := []rune(line)
	keep := int(float64(len(runes)) * fraction)
	if keep >= len(runes) {
		return line
	}
	if keep < 0 {
		keep = 0
	}
	cut := (len(runes) - keep) / 2
	kept := string(runes[cut : cut+keep])
	pad := textutil.Width(line) - textutil.Width(kept)
	return strings.Repeat(" ", pad/2) + kept + strings.Repeat(" ", pad-pad/2)
}
