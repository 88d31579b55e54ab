package ui

import (
	"strings"

	"websakha/internal/content"
	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
)

// HeroID is the anchor of the first section.
const HeroID = "hero-section"

// sectionGap is the number of blank lines between sections.
const sectionGap = 2

// OnboardView is the scrolling landing page. Scrolling feeds each
// section's latch with the fraction of it on screen.
type OnboardView struct {
	sections []*Section
	width    int
	height   int
	offset   int
	tops     []int
	heights  []int
	total    int
}

// NewOnboardView builds one Section per content section. The hero shows
// the logo and types the tagline.
func NewOnboardView(site content.Site, timing Timing, clk reveal.Clock) *OnboardView {
	o := &OnboardView{}
	for _, sec := range site.Sections {
		var banner []string
		if sec.ID == HeroID {
			banner = site.Logo
			if len(sec.Title) == 0 {
				sec.Title = []string{site.Tagline}
			}
		}
		o.sections = append(o.sections, NewSection(sec, banner, timing, clk))
	}
	return o
}

// ScrollToSectionMsg scrolls the page to a section anchor.
type ScrollToSectionMsg struct {
	ID string
}

// Init implements View.
func (o *OnboardView) Init() tea.Cmd {
	return o.observe()
}

// Update implements View.
func (o *OnboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.width, o.height = msg.Width, msg.Height
		return o, o.observe()

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			o.scroll(1)
		case "k", "up":
			o.scroll(-1)
		case "pgdown", "ctrl+d", "f":
			o.scroll(max(o.height/2, 1))
		case "pgup", "ctrl+u", "b":
			o.scroll(-max(o.height/2, 1))
		case "home", "g":
			o.offset = 0
		case "end", "G":
			o.offset = o.maxOffset()
		default:
			return o, nil
		}
		return o, o.observe()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			o.scroll(3)
		case tea.MouseButtonWheelUp:
			o.scroll(-3)
		default:
			return o, nil
		}
		return o, o.observe()

	case ScrollToSectionMsg:
		o.ScrollTo(msg.ID)
		return o, o.observe()
	}

	var cmds []tea.Cmd
	for _, s := range o.sections {
		cmds = append(cmds, s.Update(msg))
	}
	return o, tea.Batch(cmds...)
}

// ScrollTo brings the section with id to the top of the viewport.
func (o *OnboardView) ScrollTo(id string) bool {
	o.measure()
	for i, s := range o.sections {
		if s.ID() == id {
			o.offset = min(o.tops[i], o.maxOffset())
			return true
		}
	}
	return false
}

// Offset is the first visible line of the page.
func (o *OnboardView) Offset() int {
	return o.offset
}

// Sections returns the page's sections in order.
func (o *OnboardView) Sections() []*Section {
	return o.sections
}

// ActiveSection returns the ID of the section at the top of the viewport.
func (o *OnboardView) ActiveSection() string {
	active := ""
	for i, s := range o.sections {
		if i < len(o.tops) && o.tops[i] <= o.offset {
			active = s.ID()
		}
	}
	return active
}

// Unmount cancels every section's timers.
func (o *OnboardView) Unmount() {
	for _, s := range o.sections {
		s.Unmount()
	}
}

func (o *OnboardView) scroll(delta int) {
	o.offset = min(max(o.offset+delta, 0), o.maxOffset())
}

func (o *OnboardView) maxOffset() int {
	return max(o.total-o.height, 0)
}

// measure lays out every section at the current width.
func (o *OnboardView) measure() {
	o.tops = o.tops[:0]
	o.heights = o.heights[:0]
	top := 0
	for _, s := range o.sections {
		h := strings.Count(s.View(o.width), "\n") + 1
		o.tops = append(o.tops, top)
		o.heights = append(o.heights, h)
		top += h + sectionGap
	}
	o.total = max(top-sectionGap, 0)
}

// observe feeds every section the fraction of it currently on screen.
func (o *OnboardView) observe() tea.Cmd {
	if o.width <= 0 || o.height <= 0 {
		return nil
	}
	o.measure()
	o.offset = min(o.offset, o.maxOffset())
	var cmds []tea.Cmd
	for i, s := range o.sections {
		cmds = append(cmds, s.Observe(visibleRatio(o.tops[i], o.heights[i], o.offset, o.height)))
	}
	return tea.Batch(cmds...)
}

// visibleRatio is the on-screen share of a block spanning [top, top+h).
// Blocks taller than the viewport count as fully visible when they fill it.
func visibleRatio(top, h, offset, viewport int) float64 {
	if h <= 0 || viewport <= 0 {
		return 0
	}
	overlap := min(top+h, offset+viewport) - max(top, offset)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(min(h, viewport))
}

// View implements View.
func (o *OnboardView) View() string {
	if o.width <= 0 || o.height <= 0 {
		return ""
	}
	parts := make([]string, len(o.sections))
	for i, s := range o.sections {
		parts[i] = s.View(o.width)
	}
	lines := strings.Split(strings.Join(parts, strings.Repeat("\n", sectionGap+1)), "\n")
	end := min(o.offset+o.height, len(lines))
	start := min(o.offset, end)
	visible := lines[start:end]
	for len(visible) < o.height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}
