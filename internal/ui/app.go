package ui

import (
	"fmt"
	"strings"

	"websakha/internal/contact"
	"websakha/internal/content"
	"websakha/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// chromeHeight is the navbar line plus the footer line.
const chromeHeight = 2

// Options configures the application.
type Options struct {
	Site       content.Site
	Submitter  contact.Submitter
	Clock      reveal.Clock
	Timing     Timing
	StartRoute Route
	SkipSplash bool
	Logger     *zap.Logger
}

// AppModel is the root model: a splash screen, then one page at a time
// under a navbar, with overlays and toasts on top.
type AppModel struct {
	opts   Options
	logger *zap.Logger

	Route    Route
	history  History
	current  View
	splash   *SplashView
	overlays OverlayStack
	navbar   *Navbar
	toast    *Toast
	keys     *KeyHandler
	size     *ViewportSize
	showHelp bool
}

// typingView is implemented by pages with text entry.
type typingView interface {
	Typing() bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. The splash only plays when the app
// starts on the onboarding page.
func NewAppModel(opts Options) *AppModel {
	if opts.Clock == nil {
		opts.Clock = reveal.RealClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	a := &AppModel{
		opts:   opts,
		logger: opts.Logger,
		Route:  opts.StartRoute,
		size:   NewViewportSize(CompactWidth),
	}
	a.navbar = NewNavbar(opts.Site.Name, NavItems(opts.Site), a.size)
	a.keys = NewKeyHandler(a.keybinds())
	a.history.Push(a.Route)

	if !opts.SkipSplash && a.Route == RouteOnboard {
		a.splash = NewSplashView(opts.Site.Logo, opts.Site.Name, opts.Timing.SplashMail, opts.Timing.SplashLogo,
			opts.Clock, msgCmd(SplashDoneMsg{}))
	} else {
		a.current = a.newView(a.Route)
	}
	return a
}

func (a *AppModel) keybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	pages := []Route{RouteOnboard, RouteTerms}

	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.Bind("esc", msgCmd(BackMsg{}), "back")
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("?", msgCmd(ToggleHelpMsg{}), "help")
	for i, r := range Routes {
		reg.Bind(fmt.Sprint(i+1), navigateTo(r), strings.ToLower(r.Title()))
	}
	reg.BindOn("[", msgCmd(NavSelectMsg{Delta: -1}), "prev link", pages...)
	reg.BindOn("]", msgCmd(NavSelectMsg{Delta: 1}), "next link", pages...)
	reg.BindOn("enter", msgCmd(NavActivateMsg{}), "open link", pages...)
	reg.BindOn("m", msgCmd(OpenMenuMsg{}), "menu", pages...)

	reg.Bind("SPC h", navigateTo(RouteOnboard), "home")
	reg.Bind("SPC t", navigateTo(RouteTerms), "terms")
	reg.Bind("SPC c", navigateTo(RouteContact), "contact")
	reg.Bind("SPC m", msgCmd(OpenMenuMsg{}), "menu")
	reg.Bind("SPC q", tea.Quit, "quit")
	n := 0
	for _, it := range a.navbar.Items() {
		if it.SectionID == "" || n == 9 {
			continue
		}
		n++
		reg.Bind(fmt.Sprintf("SPC s %d", n), navigate(it), strings.ToLower(it.Label))
	}
	return reg
}

func (a *AppModel) newView(r Route) View {
	switch r {
	case RouteTerms:
		return NewTermsView(a.opts.Site.TermsTitle, a.opts.Site.Terms, a.opts.Timing, a.opts.Clock)
	case RouteContact:
		return NewContactView(a.opts.Site.Contact, a.opts.Submitter)
	default:
		return NewOnboardView(a.opts.Site, a.opts.Timing, a.opts.Clock)
	}
}

// Current returns the page being shown, nil during the splash.
func (a *AppModel) Current() View {
	return a.current
}

// Splash returns the loading screen while it plays.
func (a *AppModel) Splash() *SplashView {
	return a.splash
}

// Toast returns the visible toast, if any.
func (a *AppModel) Toast() *Toast {
	return a.toast
}

// Size returns the terminal size observer.
func (a *AppModel) Size() *ViewportSize {
	return a.size
}

// Overlays returns the number of open overlays.
func (a *AppModel) Overlays() int {
	return a.overlays.Len()
}

// Close tears down everything still scheduled.
func (a *AppModel) Close() {
	if a.splash != nil {
		a.splash.Unmount()
	}
	unmount(a.current)
	a.overlays.Clear()
	if a.toast != nil {
		a.toast.Dismiss()
	}
	a.navbar.Close()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.splash != nil {
		return a.splash.Init()
	}
	return a.current.Init()
}

func (a *AppModel) contentSize() tea.WindowSizeMsg {
	s := a.size.Current()
	return tea.WindowSizeMsg{Width: s.Width, Height: max(s.Height-chromeHeight, 1)}
}

// mount replaces the current page with a fresh one for r.
func (a *AppModel) mount(r Route) tea.Cmd {
	unmount(a.current)
	a.overlays.Clear()
	a.Route = r
	a.current = a.newView(r)
	a.logger.Debug("route changed", zap.String("path", r.Path()))

	cmd := a.current.Init()
	if a.size.Current().Width > 0 {
		var sizeCmd tea.Cmd
		a.current, sizeCmd = a.current.Update(a.contentSize())
		cmd = tea.Batch(cmd, sizeCmd)
	}
	return cmd
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if ov, ok := a.current.(*OnboardView); ok {
		a.navbar.SetScrolled(ov.Offset() > 0)
	} else {
		a.navbar.SetScrolled(a.current != nil)
	}
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size.Set(msg.Width, msg.Height)
		if a.splash != nil {
			a.splash.Update(msg)
		}
		if a.current == nil {
			return nil
		}
		return a.forward(a.contentSize())

	case SplashDoneMsg:
		if a.splash == nil {
			return nil
		}
		a.splash.Unmount()
		a.splash = nil
		a.logger.Debug("splash complete")
		return a.mount(a.Route)

	case NavigateMsg:
		if a.splash != nil {
			return nil
		}
		a.overlays.Clear()
		var cmd tea.Cmd
		if msg.Route != a.Route {
			a.history.Push(msg.Route)
			cmd = a.mount(msg.Route)
		}
		if msg.SectionID != "" {
			return tea.Batch(cmd, a.forward(ScrollToSectionMsg{ID: msg.SectionID}))
		}
		return cmd

	case BackMsg:
		if r, ok := a.history.Back(); ok {
			return a.mount(r)
		}
		return nil

	case ShowToastMsg:
		if a.toast != nil {
			a.toast.Dismiss()
		}
		a.toast = NewToast(msg.Kind, msg.Text, a.opts.Clock)
		return a.toast.Init()

	case toastExpiredMsg:
		if a.toast != nil && a.toast.Expired(msg) {
			a.toast = nil
		}
		return nil

	case SubmitResultMsg:
		kind := ToastSuccess
		if !msg.Result.OK() {
			kind = ToastError
		}
		a.logger.Info("contact submission finished",
			zap.Stringer("outcome", msg.Result.Outcome),
			zap.Error(msg.Result.Err))
		return tea.Batch(showToast(kind, msg.Result.Message()), a.forward(msg))

	case OpenMenuMsg:
		if a.overlays.Len() == 0 && a.current != nil {
			menu := NewNavMenu(a.navbar.Items())
			a.overlays.Push(Overlay{View: menu, Dismiss: []string{"esc", "m"}})
			return menu.Init()
		}
		return nil

	case DismissOverlayMsg:
		a.overlays.Pop()
		return nil

	case ToggleHelpMsg:
		a.showHelp = !a.showHelp
		return nil

	case NavSelectMsg:
		a.navbar.Move(msg.Delta)
		return nil

	case NavActivateMsg:
		return a.navbar.Activate()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmds []tea.Cmd
	if a.splash != nil {
		_, cmd := a.splash.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.current != nil {
		cmds = append(cmds, a.forward(msg))
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.splash != nil {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	if top, ok := a.overlays.Peek(); ok {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		if top.IsDismissKey(msg.String()) {
			a.overlays.Pop()
			return nil
		}
		cmd, _ := a.overlays.UpdateTop(msg)
		return cmd
	}

	typing := false
	if tv, ok := a.current.(typingView); ok {
		typing = tv.Typing()
	}
	if consumed, cmd := a.keys.Handle(msg, a.Route, typing); consumed {
		return cmd
	}
	return a.forward(msg)
}

func (a *AppModel) forward(msg tea.Msg) tea.Cmd {
	if a.current == nil {
		return nil
	}
	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.splash != nil {
		return a.splash.View()
	}
	size := a.size.Current()
	area := a.contentSize()

	var footer string
	switch {
	case a.keys.LeaderWaiting:
		footer = RenderLeaderHelp(a.keys, a.Route)
	case a.showHelp:
		footer = RenderKeyHelp(a.keys.Registry, a.Route, size.Width)
	default:
		footer = Styles.Muted.Render("? help  SPC commands")
	}
	bodyHeight := max(area.Height-(lipgloss.Height(footer)-1), 1)

	body := a.current.View()
	if top, ok := a.overlays.Peek(); ok {
		body = lipgloss.Place(size.Width, bodyHeight, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	lines := fitLines(body, bodyHeight)
	if a.toast != nil {
		lines = overlayLines(lines, a.toast.View(), size.Width)
	}
	return a.navbar.View() + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

// fitLines splits s into exactly n lines, truncating or padding.
func fitLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// overlayLines draws block centred over the first lines.
func overlayLines(lines []string, block string, width int) []string {
	for i, l := range strings.Split(block, "\n") {
		if i >= len(lines) {
			break
		}
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return lines
}
