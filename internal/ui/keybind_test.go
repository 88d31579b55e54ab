package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("SPC q", tea.Quit, "quit")
	reg.Bind("j", nil, "")

	if reg.Lookup("q", RouteOnboard) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q", RouteContact) == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q", RouteContact) == nil {
		t.Error("expected space to normalize to SPC")
	}
	if reg.Lookup("unknown", RouteOnboard) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_RouteFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindOn("enter", tea.Quit, "open", RouteOnboard, RouteTerms)

	if reg.Lookup("enter", RouteOnboard) == nil {
		t.Error("enter should apply on the onboarding page")
	}
	if reg.Lookup("enter", RouteContact) != nil {
		t.Error("enter must stay with the form on the contact page")
	}

	reg.Bind("enter", tea.Quit, "open")
	if reg.Lookup("enter", RouteContact) == nil {
		t.Error("rebinding without routes should clear the filter")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "x")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), RouteOnboard, false)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), RouteOnboard, false)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_NestedLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC s 1", tea.Quit, "about us")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), RouteOnboard, false)
	consumed, cmd := h.Handle(keyMsg("s"), RouteOnboard, false)
	if !consumed || cmd != nil || !h.LeaderWaiting {
		t.Fatalf("SPC s: consumed=%v cmd=%v waiting=%v", consumed, cmd, h.LeaderWaiting)
	}
	hints := reg.LeaderHints("SPC s", RouteOnboard)
	if hints["1"] != "about us" {
		t.Errorf("hints after SPC s = %v", hints)
	}
	if top := reg.LeaderHints("", RouteOnboard); top["s"] != "s…" {
		t.Errorf("first-level hint for a submenu = %q", top["s"])
	}

	_, cmd = h.Handle(keyMsg("1"), RouteOnboard, false)
	if cmd == nil {
		t.Error("expected SPC s 1 to resolve")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "x")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), RouteOnboard, false)
	consumed, cmd := h.Handle(keyMsg("z"), RouteOnboard, false)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting || len(h.Buffer) != 0 {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "x")
	reg.Bind("esc", tea.Quit, "back")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), RouteOnboard, false)
	consumed, cmd := h.Handle(keyMsg("esc"), RouteOnboard, false)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// Outside leader mode esc reaches its own binding.
	if _, cmd := h.Handle(keyMsg("esc"), RouteOnboard, false); cmd == nil {
		t.Error("esc should fall through to its binding")
	}
}

func TestKeyHandler_TypingPassesText(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit, "quit")
	h := NewKeyHandler(reg)

	if consumed, _ := h.Handle(keyMsg("q"), RouteContact, true); consumed {
		t.Error("q must reach a focused text field")
	}
	if consumed, _ := h.Handle(keyMsg(" "), RouteContact, true); consumed || h.LeaderWaiting {
		t.Error("space must reach a focused text field")
	}
	if consumed, cmd := h.Handle(keyMsg("ctrl+c"), RouteContact, true); !consumed || cmd == nil {
		t.Error("ctrl+c must quit even while typing")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), RouteOnboard, false)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC t", tea.Quit, "terms")
	reg.BindOn("SPC c", tea.Quit, "contact", RouteOnboard)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), RouteTerms, false)

	bindings := NewKeyMap(h, RouteTerms).ShortHelp()
	// terms plus the trailing esc
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings on terms, got %d", len(bindings))
	}
	if got := bindings[0].Help().Desc; got != "terms" {
		t.Errorf("first binding = %q", got)
	}
	if RenderLeaderHelp(h, RouteTerms) == "" {
		t.Error("expected leader help while waiting")
	}
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("SPC q", tea.Quit, "quit")
	reg.BindOn("m", tea.Quit, "menu", RouteOnboard)
	reg.Bind("x", tea.Quit, "")

	got := reg.Hints(RouteContact)
	if len(got) != 1 || got[0].Help().Key != "q" {
		t.Errorf("hints on contact = %v", got)
	}
	if len(reg.Hints(RouteOnboard)) != 2 {
		t.Error("expected q and m on onboarding")
	}
}
