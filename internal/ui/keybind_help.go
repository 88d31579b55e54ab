package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = Styles.Key
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	return m
}

// RenderLeaderHelp renders the transient hint bar shown after SPC.
func RenderLeaderHelp(handler *KeyHandler, route Route) string {
	if handler == nil || !handler.LeaderWaiting {
		return ""
	}
	km := NewKeyMap(handler, route)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	content := Styles.Muted.Render(strings.Join(handler.Buffer, " ")) + " " + newHelpModel().ShortHelpView(bindings)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(content)
}

// RenderKeyHelp renders the single-key bindings available on route.
func RenderKeyHelp(reg *KeybindRegistry, route Route, width int) string {
	m := newHelpModel()
	m.Width = width
	return m.ShortHelpView(reg.Hints(route))
}
