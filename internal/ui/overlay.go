package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
)

// Overlay is a modal layer: a view plus the element subtree it occupies in the document.
type Overlay struct {
	View      View
	Container *dom.Element
	Dismiss   string // key that closes the overlay, e.g. "esc"

	trap *focus.Trap
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// Trap returns the focus trap holding focus inside the overlay while it is open.
func (o *Overlay) Trap() *focus.Trap { return o.trap }

// OverlayStack manages the overlays of one document. The topmost overlay receives
// input first and owns the only engaged trap path for keys typed inside it.
type OverlayStack struct {
	Stack []Overlay

	doc      *dom.Document
	observer focus.Observer
}

// NewOverlayStack creates a stack whose overlays mount under doc's body.
func NewOverlayStack(doc *dom.Document, observer focus.Observer) *OverlayStack {
	return &OverlayStack{doc: doc, observer: observer}
}

// Push mounts o.Container and engages a trap on it. An overlay without a container
// gets an idle trap. Focus moves to the first
// focusable element inside; the element focused before is restored on Pop.
func (s *OverlayStack) Push(o Overlay) {
	o.trap = focus.NewTrap(s.doc, focus.WithTrapObserver(s.observer))
	if o.Container != nil && !o.Container.Connected() {
		s.doc.Body().Append(o.Container)
	}
	o.trap.Attach(true, o.Container)
	s.Stack = append(s.Stack, o)
}

// Pop releases the top overlay's trap, restoring focus, and unmounts its container.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	if top.trap != nil {
		top.trap.Detach()
	}
	if top.Container != nil {
		top.Container.Remove()
	}
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's view.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
