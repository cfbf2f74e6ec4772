package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/focus"
	"focuskit/internal/trace"
	"focuskit/internal/ui/textutil"
)

// FocusLogView shows the most recent focus transitions in a scrollable viewport.
type FocusLogView struct {
	entries  []trace.Entry
	viewport viewport.Model
	width    int
	height   int
	focused  bool
}

var _ View = (*FocusLogView)(nil)

// NewFocusLogView creates an empty log panel.
func NewFocusLogView() *FocusLogView {
	v := &FocusLogView{viewport: viewport.New(60, 6), width: 60, height: 6}
	v.refreshContent()
	return v
}

// Init implements View.
func (v *FocusLogView) Init() tea.Cmd { return nil }

// Update scrolls when the panel has focus.
func (v *FocusLogView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if !v.focused {
			return v, nil
		}
		switch km.String() {
		case "up", "k":
			v.viewport.LineUp(1)
		case "down", "j":
			v.viewport.LineDown(1)
		case "pgup", "ctrl+u":
			v.viewport.PageUp()
		case "pgdown", "ctrl+d":
			v.viewport.PageDown()
		case "home", "g":
			v.viewport.GotoTop()
		case "end", "G":
			v.viewport.GotoBottom()
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// SetEntries replaces the shown history. The view follows new entries while scrolled to the end.
func (v *FocusLogView) SetEntries(entries []trace.Entry) {
	follow := v.viewport.AtBottom()
	v.entries = entries
	v.refreshContent()
	if follow {
		v.viewport.GotoBottom()
	}
}

// SetSize sets the panel's inner size.
func (v *FocusLogView) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 1 {
		height = 1
	}
	v.width, v.height = width, height
	v.viewport.Width = width
	v.viewport.Height = height
	v.refreshContent()
}

// SetFocused marks the panel as the keyboard target.
func (v *FocusLogView) SetFocused(focused bool) { v.focused = focused }

// Focused reports whether the panel is the keyboard target.
func (v *FocusLogView) Focused() bool { return v.focused }

func (v *FocusLogView) refreshContent() {
	if len(v.entries) == 0 {
		v.viewport.SetContent(Styles.Hint.Render("No focus events yet"))
		return
	}
	lines := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		stamp := Styles.Muted.Render(fmt.Sprintf("%3d %s", e.Seq, e.Timestamp.Format("15:04:05.000")))
		summary := textutil.Truncate(e.Summary, v.width-lipgloss.Width(stamp)-1)
		lines = append(lines, stamp+" "+eventStyle(e.Type).Render(summary))
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
}

func eventStyle(t focus.EventType) lipgloss.Style {
	switch t {
	case focus.EventTrapActivate:
		return Styles.Status
	case focus.EventTrapDeactivate:
		return Styles.Label
	case focus.EventTrapWrap:
		return Styles.Warning
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText))
	}
}

// View implements View.
func (v *FocusLogView) View() string {
	style := Styles.PanelDim
	if v.focused {
		style = Styles.Panel
	}
	title := Styles.Label.Render(fmt.Sprintf("Focus log (%d)", len(v.entries)))
	return style.Render(title + "\n" + v.viewport.View())
}
