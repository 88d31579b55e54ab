package ui

import "websakha/internal/contact"

// NavigateMsg switches pages and, on the onboarding page, scrolls to SectionID.
type NavigateMsg struct {
	Route     Route
	SectionID string
}

// BackMsg returns to the previous page.
type BackMsg struct{}

// SplashDoneMsg ends the loading screen.
type SplashDoneMsg struct{}

// ShowToastMsg raises a toast, replacing any visible one.
type ShowToastMsg struct {
	Kind ToastKind
	Text string
}

// SubmitResultMsg carries the outcome of a contact submission back to the
// form that sent it.
type SubmitResultMsg struct {
	ViewID int
	Result contact.Result
}

// OpenMenuMsg opens the compact navigation menu.
type OpenMenuMsg struct{}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}

// ToggleHelpMsg shows or hides the key help line.
type ToggleHelpMsg struct{}

// NavSelectMsg moves the navbar highlight by Delta.
type NavSelectMsg struct {
	Delta int
}

// NavActivateMsg follows the highlighted navbar link.
type NavActivateMsg struct{}
