package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the transient hint box shown while a leader sequence is pending.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil {
		return ""
	}
	bindings := NewKeyMap(h, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	hm := help.New()
	hm.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	hm.Styles.ShortDesc = Styles.Muted
	hm.Styles.ShortSeparator = Styles.Muted

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(Styles.Muted.Render(h.displaySeq(h.CurrentSeq())) + " " + hm.ShortHelpView(bindings))
}

// demoKeys is the always-visible help line for navigating the demos.
type demoKeys struct {
	Next     key.Binding
	Prev     key.Binding
	Arrows   key.Binding
	Activate key.Binding
	Close    key.Binding
	Leader   key.Binding
}

func newDemoKeys(leader string) demoKeys {
	return demoKeys{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Arrows:   key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←/→", "tabs")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Leader:   key.NewBinding(key.WithKeys(leader), key.WithHelp(leader, "menu")),
	}
}

func (k demoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Arrows, k.Activate, k.Close, k.Leader}
}

func (k demoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Arrows, k.Activate}, {k.Close, k.Leader}}
}
