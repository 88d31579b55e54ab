package ui

import (
	"context"

	"websakha/internal/contact"

	tea "github.com/charmbracelet/bubbletea"
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func navigate(it NavItem) tea.Cmd {
	return msgCmd(NavigateMsg{Route: it.Route, SectionID: it.SectionID})
}

func navigateTo(r Route) tea.Cmd {
	return msgCmd(NavigateMsg{Route: r})
}

func dismissOverlay() tea.Msg {
	return DismissOverlayMsg{}
}

func showToast(kind ToastKind, text string) tea.Cmd {
	return msgCmd(ShowToastMsg{Kind: kind, Text: text})
}

// submitCmd sends a copy of d. The request outlives the form: if the user
// navigates away the result still raises a toast.
func submitCmd(s contact.Submitter, viewID int, d contact.Draft) tea.Cmd {
	return func() tea.Msg {
		res := s.Submit(context.Background(), &d)
		return SubmitResultMsg{ViewID: viewID, Result: res}
	}
}
