package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LeaderSeq is the token that stands for the configured leader key in sequences,
// e.g. "LDR 1" is the leader followed by 1.
const LeaderSeq = "LDR"

// DefaultLeaderKey is used when no leader is configured. It must not collide with
// any key the focus demos interpret (Tab, arrows, Enter, Space, Esc, text).
const DefaultLeaderKey = "ctrl+g"

// KeybindRegistry maps key sequences to commands.
// Single keys use Bubble Tea names ("ctrl+c"); leader sequences start with LeaderSeq.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // empty = all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a sequence for every mode. A later Bind for the same sequence wins.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindForMode(seq, cmd, desc, nil)
}

// BindForMode registers a sequence that is only active in the given modes.
func (r *KeybindRegistry) BindForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to seq in mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether a longer binding continues seq in mode.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for k, cmd := range r.bindings {
		if cmd != nil && strings.HasPrefix(k, prefix) && r.appliesToMode(k, mode) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next key and its description for every binding that
// continues currentSeq in mode. An empty currentSeq means just after the leader.
// A key that opens a further level is described as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := LeaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(parts) == 0 {
			continue
		}
		next := parts[0]
		if len(parts) > 1 {
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

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq collapses whitespace between sequence parts.
func normalizeSeq(seq string) string {
	return strings.Join(strings.Fields(seq), " ")
}

// keyToSeqPart names a key inside a sequence. Space needs a word since parts are space separated.
func keyToSeqPart(s string) string {
	if s == " " {
		return "space"
	}
	return s
}

// KeyHandler tracks leader state and dispatches completed sequences.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string // tea.KeyMsg.String() form, e.g. "ctrl+g"
	LeaderWaiting bool
	Buffer        []string // sequence typed since the leader, starting with LeaderSeq
}

// NewKeyHandler creates a handler. An empty leader selects DefaultLeaderKey.
func NewKeyHandler(reg *KeybindRegistry, leader string) *KeyHandler {
	switch leader {
	case "":
		leader = DefaultLeaderKey
	case "space":
		leader = " "
	}
	return &KeyHandler{Registry: reg, LeaderKey: leader}
}

// Handle processes a key in mode. When consumed is true the key must not reach the
// focus demos; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if h.LeaderWaiting {
		if s == "esc" {
			h.reset()
			return true, nil
		}
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq, mode) {
			return true, nil
		}
		// Unknown sequence: swallow it rather than leak half a chord into the demo.
		h.reset()
		return true, nil
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{LeaderSeq}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), mode); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the pending leader sequence, or "".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// displaySeq renders a sequence with the real leader key in place of LeaderSeq.
func (h *KeyHandler) displaySeq(seq string) string {
	if seq == "" {
		return h.LeaderKey
	}
	return strings.Replace(seq, LeaderSeq, h.LeaderKey, 1)
}

// KeyMap implements help.KeyMap for the leader hints in the current mode.
type KeyMap struct {
	handler *KeyHandler
	mode    AppMode
}

// NewKeyMap creates a KeyMap for handler in mode.
func NewKeyMap(handler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{handler: handler, mode: mode}
}

// ShortHelp returns one binding per next key, sorted, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(km.handler.CurrentSeq(), km.mode)
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
