package ui

import (
	"strings"

	"websakha/internal/content"
	"websakha/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavItem is a navbar link: a route, optionally scrolled to a section.
type NavItem struct {
	Label     string
	Route     Route
	SectionID string
}

// NavItems lists the onboarding anchors followed by the other pages.
func NavItems(site content.Site) []NavItem {
	var items []NavItem
	for _, s := range site.Sections {
		if s.Nav != "" {
			items = append(items, NavItem{Label: s.Nav, Route: RouteOnboard, SectionID: s.ID})
		}
	}
	return append(items,
		NavItem{Label: RouteTerms.Title(), Route: RouteTerms},
		NavItem{Label: RouteContact.Title(), Route: RouteContact},
	)
}

// Navbar is the top bar. In compact mode the links collapse behind a menu.
type Navbar struct {
	brand    string
	items    []NavItem
	selected int
	compact  bool
	scrolled bool
	width    int

	unsubscribe func()
}

// NewNavbar creates the navbar and follows size changes from vs.
func NewNavbar(brand string, items []NavItem, vs *ViewportSize) *Navbar {
	n := &Navbar{brand: brand, items: items}
	if vs != nil {
		n.apply(vs.Current())
		n.unsubscribe = vs.Subscribe(n.apply)
	}
	return n
}

func (n *Navbar) apply(s Size) {
	n.compact = s.Compact
	n.width = s.Width
}

// Close stops following size changes.
func (n *Navbar) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
}

// Compact reports whether the links are collapsed.
func (n *Navbar) Compact() bool {
	return n.compact
}

// SetScrolled switches to the solid background once the page moved.
func (n *Navbar) SetScrolled(scrolled bool) {
	n.scrolled = scrolled
}

// Items returns the links.
func (n *Navbar) Items() []NavItem {
	return n.items
}

// Move shifts the selection by delta, wrapping.
func (n *Navbar) Move(delta int) {
	if len(n.items) == 0 {
		return
	}
	n.selected = ((n.selected+delta)%len(n.items) + len(n.items)) % len(n.items)
}

// Selected returns the highlighted link.
func (n *Navbar) Selected() NavItem {
	if len(n.items) == 0 {
		return NavItem{}
	}
	return n.items[n.selected]
}

// Activate navigates to the highlighted link.
func (n *Navbar) Activate() tea.Cmd {
	if len(n.items) == 0 {
		return nil
	}
	return navigate(n.Selected())
}

// View renders the bar at its last known width.
func (n *Navbar) View() string {
	style := Styles.Nav
	if n.scrolled {
		style = Styles.NavScrolled
	}
	brand := Styles.Brand.Render(n.brand)

	var right string
	if n.compact {
		right = Styles.Key.Render("☰") + Styles.Muted.Render(" menu (m)")
	} else {
		links := make([]string, len(n.items))
		for i, it := range n.items {
			if i == n.selected {
				links[i] = Styles.NavSelected.Render(it.Label)
			} else {
				links[i] = Styles.NavItem.Render(it.Label)
			}
		}
		right = strings.Join(links, "")
	}

	inner := max(n.width-style.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(right)
	if gap < 1 {
		return style.Width(n.width).Render(textutil.Truncate(n.brand, max(inner-lipgloss.Width(right)-1, 1)) + " " + right)
	}
	return style.Width(n.width).Render(brand + strings.Repeat(" ", gap) + right)
}
