package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/focus"
)

// KeyEventFromTea translates a terminal key press into a focus key event.
// Keys without a navigation meaning keep their Bubble Tea name (e.g. "a", "ctrl+x").
func KeyEventFromTea(msg tea.KeyMsg) *focus.KeyEvent {
	switch msg.Type {
	case tea.KeyTab:
		return focus.NewKeyEvent(focus.KeyTab, false)
	case tea.KeyShiftTab:
		return focus.NewKeyEvent(focus.KeyTab, true)
	case tea.KeyRight:
		return focus.NewKeyEvent(focus.KeyArrowRight, false)
	case tea.KeyLeft:
		return focus.NewKeyEvent(focus.KeyArrowLeft, false)
	case tea.KeyUp:
		return focus.NewKeyEvent(focus.KeyArrowUp, false)
	case tea.KeyDown:
		return focus.NewKeyEvent(focus.KeyArrowDown, false)
	case tea.KeyShiftRight:
		return focus.NewKeyEvent(focus.KeyArrowRight, true)
	case tea.KeyShiftLeft:
		return focus.NewKeyEvent(focus.KeyArrowLeft, true)
	case tea.KeyShiftUp:
		return focus.NewKeyEvent(focus.KeyArrowUp, true)
	case tea.KeyShiftDown:
		return focus.NewKeyEvent(focus.KeyArrowDown, true)
	case tea.KeyHome:
		return focus.NewKeyEvent(focus.KeyHome, false)
	case tea.KeyEnd:
		return focus.NewKeyEvent(focus.KeyEnd, false)
	case tea.KeyEnter:
		return focus.NewKeyEvent(focus.KeyEnter, false)
	case tea.KeySpace:
		return focus.NewKeyEvent(focus.KeySpace, false)
	case tea.KeyEsc:
		return focus.NewKeyEvent(focus.KeyEscape, false)
	}
	return focus.NewKeyEvent(focus.Key(msg.String()), false)
}
