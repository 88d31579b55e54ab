package ui

import (
	"strings"
	"time"

	"websakha/internal/content"
	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sectionFrameMsg struct {
	id  int
	gen int
}

// cardDelay holds the card grid back until the heading has started typing.
const cardDelay = 200 * time.Millisecond

// Timing carries the animation tunables.
type Timing struct {
	SplashMail     time.Duration
	SplashLogo     time.Duration
	TypingDelay    time.Duration
	TypingInterval time.Duration
	StaggerStep    time.Duration
}

// DefaultTiming matches the web build.
func DefaultTiming() Timing {
	return Timing{
		SplashMail:     2500 * time.Millisecond,
		SplashLogo:     2 * time.Second,
		TypingDelay:    150 * time.Millisecond,
		TypingInterval: 20 * time.Millisecond,
		StaggerStep:    100 * time.Millisecond,
	}
}

// Section is one scroll-revealed block. Its latch decides when the
// entrance plays; the heading types, then the description fades in while
// cards slide up in a stagger.
type Section struct {
	id     int
	copy   content.Section
	banner []string
	clock  reveal.Clock
	timing Timing
	latch  *reveal.Latch
	life   lifetime

	eyebrow *Typewriter
	title   *Typewriter

	bannerPlan reveal.Plan
	descPlan   reveal.Plan
	cardPlans  []reveal.Plan
	indents    []*spring

	revealed    bool
	revealedAt  time.Time
	titleDoneAt time.Time
	framing     bool
	pulse       int
}

// NewSection builds a section. banner lines, if any, render above the heading.
func NewSection(sec content.Section, banner []string, timing Timing, clk reveal.Clock) *Section {
	s := &Section{
		id:         nextID(),
		copy:       sec,
		banner:     banner,
		clock:      clk,
		timing:     timing,
		latch:      reveal.NewLatch(sec.Threshold, sec.RevealOnce()),
		life:       newLifetime(),
		bannerPlan: reveal.Pop,
		descPlan:   reveal.FadeIn,
		cardPlans:  reveal.Stagger(reveal.SlideUp, cardDelay, timing.StaggerStep, len(sec.Cards)),
	}
	for _, p := range s.cardPlans {
		s.indents = append(s.indents, newSpring(float64(p[0].Props.Indent)))
	}
	s.resetTypewriters()
	return s
}

func (s *Section) resetTypewriters() {
	if s.eyebrow != nil {
		s.eyebrow.Unmount()
		s.title.Unmount()
	}
	s.eyebrow = NewTypewriter(s.copy.Eyebrow, s.timing.TypingDelay, s.timing.TypingInterval, s.clock)
	s.eyebrow.Style = Styles.Eyebrow

	// The heading waits for the eyebrow to finish.
	titleDelay := s.timing.TypingDelay + time.Duration(s.eyebrow.typing.Len())*s.timing.TypingInterval
	s.title = NewTypewriter(s.copy.FullTitle(), titleDelay, s.timing.TypingInterval, s.clock)
	s.title.Style = Styles.Title
	s.title.Caret = true
}

// ID returns the section's anchor ID.
func (s *Section) ID() string {
	return s.copy.ID
}

// Copy returns the section's marketing copy.
func (s *Section) Copy() content.Section {
	return s.copy
}

// Revealed reports whether the entrance has started and is still shown.
func (s *Section) Revealed() bool {
	return s.revealed
}

// Latch exposes the visibility latch.
func (s *Section) Latch() *reveal.Latch {
	return s.latch
}

// Observe feeds the visible ratio to the latch and starts or resets the
// entrance when the latch flips.
func (s *Section) Observe(ratio float64) tea.Cmd {
	if !s.latch.Observe(ratio) {
		return nil
	}
	if !s.latch.Visible() {
		// Only a repeating section can get here; rewind it for the next pass.
		s.revealed = false
		s.titleDoneAt = time.Time{}
		s.life.renew()
		s.framing = false
		s.resetTypewriters()
		for i, p := range s.cardPlans {
			s.indents[i] = newSpring(float64(p[0].Props.Indent))
		}
		return nil
	}
	s.revealed = true
	s.revealedAt = s.clock.Now()
	cmd := tea.Batch(s.eyebrow.Start(), s.title.Start(), s.frames())
	if s.title.Done() {
		s.titleDoneAt = s.revealedAt
	}
	return cmd
}

func (s *Section) frames() tea.Cmd {
	if s.framing || s.life.ended {
		return nil
	}
	s.framing = true
	return after(s.life.ctx, s.clock, frameInterval, sectionFrameMsg{id: s.id, gen: s.life.gen})
}

// Update handles the section's own typing ticks and animation frames.
func (s *Section) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case typeTickMsg:
		cmd := tea.Batch(s.eyebrow.Update(msg), s.title.Update(msg))
		if s.revealed && s.title.Done() && s.titleDoneAt.IsZero() {
			s.titleDoneAt = s.clock.Now()
			return tea.Batch(cmd, s.frames())
		}
		return cmd
	case sectionFrameMsg:
		if msg.id != s.id || !s.life.current(msg.gen) {
			return nil
		}
		s.framing = false
		s.step()
		if s.animating() {
			return s.frames()
		}
	}
	return nil
}

func (s *Section) step() {
	elapsed := s.clock.Now().Sub(s.revealedAt)
	for i, p := range s.cardPlans {
		s.indents[i].aim(float64(p.Resolve(elapsed).Props.Indent))
		s.indents[i].step()
	}
	s.pulse++
}

func (s *Section) animating() bool {
	if !s.revealed {
		return false
	}
	if s.copy.Pulse && s.latch.Visible() {
		return true
	}
	now := s.clock.Now()
	if len(s.cardPlans) > 0 && now.Sub(s.revealedAt) <= s.cardPlans[len(s.cardPlans)-1].End() {
		return true
	}
	if now.Sub(s.revealedAt) <= s.bannerPlan.End() && len(s.banner) > 0 {
		return true
	}
	for _, sp := range s.indents {
		if !sp.settled() {
			return true
		}
	}
	return !s.titleDoneAt.IsZero() && now.Sub(s.titleDoneAt) <= s.descPlan.End()
}

// Unmount cancels typing and animation frames.
func (s *Section) Unmount() {
	s.life.end()
	s.eyebrow.Unmount()
	s.title.Unmount()
}

// stage resolves plan relative to since; Hidden until the section reveals.
func (s *Section) stage(plan reveal.Plan, since time.Time) reveal.Stage {
	if !s.revealed || since.IsZero() {
		return reveal.Hidden
	}
	return plan.Resolve(s.clock.Now().Sub(since))
}

// View renders the section at width. Hidden parts keep their height so
// the page does not jump while revealing.
func (s *Section) View(width int) string {
	if width <= 0 {
		return ""
	}
	var blocks []string
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if len(s.banner) > 0 {
		banner := strings.Join(s.banner, "\n")
		st := s.stage(s.bannerPlan, s.revealedAt)
		blocks = append(blocks, center.Render(applyStage(st, Styles.Brand, banner, st.Props.Indent)))
	}
	if s.copy.Eyebrow != "" {
		blocks = append(blocks, center.Render(s.eyebrow.View()))
	}
	if s.copy.FullTitle() != "" {
		blocks = append(blocks, reserve(center, s.titleView(), s.copy.FullTitle()))
	}

	desc := s.stage(s.descPlan, s.titleDoneAt)
	textWidth := min(width, 90)
	para := lipgloss.NewStyle().Width(textWidth).Align(lipgloss.Center)
	if s.copy.Description != "" {
		blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			para.Render(applyStage(desc, Styles.Muted, s.copy.Description, 0))))
	}
	for _, b := range s.copy.Body {
		blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			para.Render(applyStage(desc, Styles.Normal, b, 0))))
	}

	if len(s.copy.Cards) > 0 {
		blocks = append(blocks, "", s.cardsView(width))
	}
	if s.copy.Pulse {
		blocks = append(blocks, "", s.pulseView(width))
	}
	return strings.Join(blocks, "\n")
}

// titleView colours the typed heading, highlighting the last title part.
func (s *Section) titleView() string {
	typed := s.title.Text()
	parts := s.copy.Title
	prefix := strings.Join(parts[:len(parts)-1], " ")
	var out string
	if len(parts) > 1 && len(typed) > len(prefix) {
		out = Styles.Title.Render(typed[:len(prefix)]) + Styles.Highlight.Render(typed[len(prefix):])
	} else {
		out = Styles.Title.Render(typed)
	}
	if s.title.Started() && !s.title.Done() {
		out += Styles.Caret.Render(caret)
	}
	return out
}

func (s *Section) cardsView(width int) string {
	cols := 1
	switch {
	case width >= 120:
		cols = 3
	case width >= 72:
		cols = 2
	}
	colWidth := width / cols
	maxIndent := 8
	boxWidth := max(colWidth-maxIndent-2, 10)

	elapsed := s.clock.Now().Sub(s.revealedAt)
	var rows []string
	var row []string
	for i, c := range s.copy.Cards {
		body := c.Title
		desc := c.Description
		glyph := content.LookupGlyph(c.Glyph).Render(1, lipgloss.Color(c.Accent))
		box := Styles.Card.Width(boxWidth).BorderForeground(lipgloss.Color(c.Accent))

		st := reveal.Hidden
		if s.revealed {
			st = s.cardPlans[i].Resolve(elapsed)
		}
		full := box.Render(glyph + " " + Styles.CardTitle.Render(body) + "\n" + Styles.Muted.Render(desc))
		var cell string
		switch {
		case !st.Props.Visible:
			cell = lipgloss.NewStyle().Width(colWidth).Height(lipgloss.Height(full)).Render("")
		case st.Props.Faint:
			faint := box.BorderForeground(lipgloss.Color(ColorFaint))
			cell = lipgloss.NewStyle().MarginLeft(s.indents[i].cells()).Render(
				faint.Render(glyph + " " + Styles.Faint.Render(body) + "\n" + Styles.Faint.Render(desc)))
		default:
			cell = lipgloss.NewStyle().MarginLeft(s.indents[i].cells()).Render(full)
		}
		row = append(row, lipgloss.NewStyle().Width(colWidth).Render(cell))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

var pulseOffsets = []int{0, 0, 1, 1, 1, 0}

func (s *Section) pulseView(width int) string {
	indicator := Styles.Muted.Render("scroll") + "\n" + Styles.Highlight.Render("⌄")
	if !s.revealed {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n\n")
	}
	// A full cycle spans about a second at the frame rate.
	off := pulseOffsets[(s.pulse/5)%len(pulseOffsets)]
	top := strings.Repeat("\n", off)
	bottom := strings.Repeat("\n", 1-off)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, top+indicator+bottom)
}

// applyStage renders text the way stage st says to.
func applyStage(st reveal.Stage, style lipgloss.Style, text string, indent int) string {
	switch {
	case !st.Props.Visible:
		return hide(text)
	case st.Props.Faint:
		return lipgloss.NewStyle().MarginLeft(indent).Render(Styles.Faint.Render(text))
	default:
		return lipgloss.NewStyle().MarginLeft(indent).Render(style.Render(text))
	}
}

// hide blanks every character of text so wrapping and height are kept.
func hide(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == ' ' {
			return r
		}
		return ' '
	}, text)
}

// reserve renders typed inside style padded to the height the full text
// would take.
func reserve(style lipgloss.Style, typed, full string) string {
	h := lipgloss.Height(style.Render(full))
	return style.Height(h).Render(typed)
}
