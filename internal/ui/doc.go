// Package ui renders the Web Sakha site as a Bubble Tea program.
//
// Core abstractions:
//   - View: a page or popup with its own init, update and view (Elm-style)
//   - Route / History: page addressing and back navigation
//   - Overlay: popup views with dismiss keys, stacked over the page
//   - FocusRing: rotates focus across form fields
//   - ViewportSize: terminal size observer driving the compact layout
//   - Typewriter, SplashView, Section: timed reveals built on package reveal
//
// Every timer is a tea.Cmd tagged with its owner's id and generation, so a
// page that was navigated away from never receives a stale tick.
package ui
