package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use leader notation: "SPC t" is space then t; single keys are
// written the way tea.KeyMsg.String reports them ("q", "esc", "ctrl+c").
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	routes       map[string][]Route // empty means every route
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		routes:       make(map[string][]Route),
	}
}

// Bind registers seq for every route.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindOn(seq, cmd, desc)
}

// BindOn registers seq, limited to the given routes when any are named.
func (r *KeybindRegistry) BindOn(seq string, cmd tea.Cmd, desc string, routes ...Route) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(routes) > 0 {
		r.routes[n] = routes
	} else {
		delete(r.routes, n)
	}
}

// Lookup returns the command bound to seq on route, or nil.
func (r *KeybindRegistry) Lookup(seq string, route Route) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, route) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether a longer binding continues seq on route.
func (r *KeybindRegistry) HasPrefix(seq string, route Route) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) && r.appliesTo(k, route) {
			return true
		}
	}
	return false
}

// Hints returns the described single-key bindings active on route, sorted by key.
func (r *KeybindRegistry) Hints(route Route) []key.Binding {
	var seqs []string
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, "SPC") || r.descriptions[seq] == "" {
			continue
		}
		if r.appliesTo(seq, route) {
			seqs = append(seqs, seq)
		}
	}
	sort.Strings(seqs)
	return r.toBindings(seqs, func(seq string) string { return seq })
}

// LeaderHints returns the bindings that may follow currentSeq on route,
// keyed by the next key. An empty currentSeq means just after SPC.
func (r *KeybindRegistry) LeaderHints(currentSeq string, route Route) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, route) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix+next, route) {
			out[next] = next + "…"
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, route Route) bool {
	routes, ok := r.routes[seq]
	if !ok {
		return true
	}
	for _, rt := range routes {
		if rt == route {
			return true
		}
	}
	return false
}

func (r *KeybindRegistry) toBindings(seqs []string, label func(string) string) []key.Binding {
	out := make([]key.Binding, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, key.NewBinding(
			key.WithKeys(seq),
			key.WithHelp(label(seq), r.descriptions[seq]),
		))
	}
	return out
}

// normalizeSeq converts tea key strings to the canonical leader notation.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler tracks leader state and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a key on route. consumed means views must not see it.
// When typing is set only non-printable bindings apply and the leader is
// disabled, so text fields receive their characters.
func (h *KeyHandler) Handle(msg tea.KeyMsg, route Route, typing bool) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if h.LeaderWaiting {
		if s == "esc" {
			h.reset()
			return true, nil
		}
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, route); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq, route) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if typing && msg.Type == tea.KeyRunes || typing && msg.Type == tea.KeySpace {
		return false, nil
	}

	if s == " " {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if c := h.Registry.Lookup(s, route); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap adapts leader hints to help.KeyMap.
type KeyMap struct {
	handler *KeyHandler
	route   Route
}

// NewKeyMap returns the leader help for route.
func NewKeyMap(handler *KeyHandler, route Route) help.KeyMap {
	return &KeyMap{handler: handler, route: route}
}

// ShortHelp lists the keys that may follow the current leader buffer.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(strings.Join(km.handler.Buffer, " "), km.route)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
