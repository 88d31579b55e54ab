package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette, after the site's indigo/purple gradient.
const (
	ColorPrimary   = "#4F46E5" // indigo-600
	ColorAccent    = "#A78BFA" // violet-400
	ColorHighlight = "#C084FC" // purple-400
	ColorSuccess   = "#22C55E"
	ColorDanger    = "#EF4444"
	ColorText      = "252"
	ColorMuted     = "245"
	ColorFaint     = "240"
)

// Styles holds the shared styles.
var Styles = struct {
	Brand     lipgloss.Style
	Title     lipgloss.Style
	Highlight lipgloss.Style
	Eyebrow   lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Key       lipgloss.Style
	Caret     lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style

	Nav         lipgloss.Style
	NavScrolled lipgloss.Style
	NavItem     lipgloss.Style
	NavSelected lipgloss.Style

	Label      lipgloss.Style
	LabelError lipgloss.Style
	Button     lipgloss.Style
	ButtonOn   lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	Menu         lipgloss.Style
}{
	Brand:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)),
	Eyebrow:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
	Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFaint)).Faint(true),
	Key:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)),
	Caret:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Blink(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),

	Nav:         lipgloss.NewStyle().Padding(0, 1),
	NavScrolled: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#1E1B4B")),
	NavItem:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Padding(0, 1),
	NavSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true).Underline(true).Padding(0, 1),

	Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	LabelError: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 2),
	ButtonOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),

	ToastSuccess: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Menu: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
}

// NewCompactListDelegate returns a list delegate with no spacing in the
// shared palette.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.NavSelected.UnsetUnderline()
	d.Styles.NormalTitle = Styles.NavItem
	return d
}
