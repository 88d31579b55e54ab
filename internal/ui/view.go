package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a page or overlay with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Unmounter is implemented by views that own timers or subscriptions.
// Unmount cancels everything pending; no message scheduled before it may
// change the view afterwards.
type Unmounter interface {
	Unmount()
}

// unmount tears v down if it owns resources.
func unmount(v any) {
	if u, ok := v.(Unmounter); ok && u != nil {
		u.Unmount()
	}
}
