package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// NavMenu is the compact-mode overlay listing the navbar links.
type NavMenu struct {
	list  list.Model
	items []NavItem
}

type navMenuItem NavItem

func (i navMenuItem) FilterValue() string { return i.Label }
func (i navMenuItem) Title() string       { return i.Label }
func (i navMenuItem) Description() string { return "" }

var _ View = (*NavMenu)(nil)

// NewNavMenu lists items; enter navigates and closes the menu.
func NewNavMenu(items []NavItem) *NavMenu {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = navMenuItem(it)
	}
	l := list.New(entries, NewCompactListDelegate(), 30, len(items)+2)
	l.Title = "Menu"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Brand
	return &NavMenu{list: l, items: items}
}

// Init implements View.
func (m *NavMenu) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NavMenu) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		sel, ok := m.list.SelectedItem().(navMenuItem)
		if !ok {
			return m, nil
		}
		return m, tea.Batch(dismissOverlay, navigate(NavItem(sel)))
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *NavMenu) View() string {
	return Styles.Menu.Render(m.list.View() + "\n" + Styles.Muted.Render("enter: go  esc: close"))
}
