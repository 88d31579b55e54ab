package ui

import (
	"strings"
	"time"

	"websakha/internal/reveal"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type termsFadeMsg struct {
	id  int
	gen int
}

// TermsView shows the terms markdown in a scrollable viewport. The title
// types in and the body fades in once.
type TermsView struct {
	id       int
	clock    reveal.Clock
	life     lifetime
	title    *Typewriter
	markdown string
	plan     reveal.Plan
	mounted  time.Time

	viewport viewport.Model
	rendered string
	width    int
	height   int
	err      error
}

// NewTermsView renders markdown with glamour once a size is known.
func NewTermsView(title, markdown string, timing Timing, clk reveal.Clock) *TermsView {
	tw := NewTypewriter(title, timing.TypingDelay, timing.TypingInterval, clk)
	tw.Style = Styles.Title
	tw.Caret = true
	return &TermsView{
		id:       nextID(),
		clock:    clk,
		life:     newLifetime(),
		title:    tw,
		markdown: markdown,
		plan:     reveal.FadeIn,
		viewport: viewport.New(0, 0),
	}
}

// Init starts typing the title and schedules the fade.
func (t *TermsView) Init() tea.Cmd {
	t.mounted = t.clock.Now()
	return tea.Batch(
		t.title.Start(),
		after(t.life.ctx, t.clock, t.plan.End(), termsFadeMsg{id: t.id, gen: t.life.gen}),
	)
}

// Update implements View.
func (t *TermsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width, t.height = msg.Width, msg.Height
		t.render()
		return t, nil
	case typeTickMsg:
		return t, t.title.Update(msg)
	case termsFadeMsg:
		if msg.id == t.id && t.life.current(msg.gen) {
			t.restyle()
		}
		return t, nil
	}
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

func (t *TermsView) render() {
	if t.width <= 0 {
		return
	}
	wrap := min(t.width-4, 100)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		t.rendered, err = r.Render(t.markdown)
	}
	if err != nil {
		t.err = err
		t.rendered = t.markdown
	}
	t.viewport.Width = t.width
	t.viewport.Height = max(t.height-2, 1)
	t.restyle()
}

// restyle applies the current fade stage to the rendered body.
func (t *TermsView) restyle() {
	st := t.plan.Resolve(t.clock.Now().Sub(t.mounted))
	body := lipgloss.PlaceHorizontal(t.width, lipgloss.Center, t.rendered)
	if st.Props.Faint {
		body = Styles.Faint.Render(body)
	}
	t.viewport.SetContent(body)
}

// ScrollPercent reports how far the body is scrolled, 0 to 1.
func (t *TermsView) ScrollPercent() float64 {
	return t.viewport.ScrollPercent()
}

// Err returns the markdown rendering error, if any. The raw text is shown instead.
func (t *TermsView) Err() error {
	return t.err
}

// Unmount cancels typing and the pending fade.
func (t *TermsView) Unmount() {
	t.life.end()
	t.title.Unmount()
}

// View implements View.
func (t *TermsView) View() string {
	if t.width <= 0 {
		return ""
	}
	header := lipgloss.PlaceHorizontal(t.width, lipgloss.Center, t.title.View())
	rule := Styles.Faint.Render(strings.Repeat("─", t.width))
	return header + "\n" + rule + "\n" + t.viewport.View()
}
