package ui

import (
	"time"

	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastKind picks the styling and lifetime of a toast.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Duration is how long a toast of this kind stays up.
func (k ToastKind) Duration() time.Duration {
	if k == ToastError {
		return 4 * time.Second
	}
	return 2 * time.Second
}

type toastExpiredMsg struct {
	id int
}

// Toast is a transient notice that dismisses itself.
type Toast struct {
	id    int
	Kind  ToastKind
	Text  string
	clock reveal.Clock
	life  lifetime
}

// NewToast creates a toast; Init arms its dismissal.
func NewToast(kind ToastKind, text string, clk reveal.Clock) *Toast {
	return &Toast{id: nextID(), Kind: kind, Text: text, clock: clk, life: newLifetime()}
}

// Init schedules the auto-dismiss.
func (t *Toast) Init() tea.Cmd {
	return after(t.life.ctx, t.clock, t.Kind.Duration(), toastExpiredMsg{id: t.id})
}

// Expired reports whether msg is this toast's dismissal.
func (t *Toast) Expired(msg tea.Msg) bool {
	m, ok := msg.(toastExpiredMsg)
	return ok && m.id == t.id && !t.life.ended
}

// Dismiss cancels the pending auto-dismiss.
func (t *Toast) Dismiss() {
	t.life.end()
}

// View renders the toast.
func (t *Toast) View() string {
	if t.Kind == ToastError {
		return Styles.ToastError.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render("✗ ") + t.Text)
	}
	return Styles.ToastSuccess.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ ") + t.Text)
}
