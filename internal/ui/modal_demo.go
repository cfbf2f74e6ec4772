package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
	"focuskit/internal/logging"
)

// ModalDemoView is a page with an "Open Modal" button. The dialog it opens keeps
// Tab and Shift+Tab inside itself and hands focus back to the opener on close.
type ModalDemoView struct {
	Overlays *OverlayStack
	Status   string

	s       *surface
	openBtn *dom.Element
	search  *textField
	other   *dom.Element

	// set while the main dialog is open
	name  *textField
	color *selectField
}

// NewModalDemoView builds the page. observer receives the traps' events.
func NewModalDemoView(observer focus.Observer) *ModalDemoView {
	v := &ModalDemoView{s: newSurface()}
	v.Overlays = NewOverlayStack(v.s.doc, observer)

	v.openBtn = v.s.button("open", "Open Modal", v.openModal)
	v.search = v.s.textField("search", "Search…")
	v.other = v.s.button("other", "Another Button", func() { v.Status = "Another Button pressed" })
	v.s.doc.Body().Append(v.openBtn, v.search.el, v.other)
	return v
}

// Document returns the page's document.
func (v *ModalDemoView) Document() *dom.Document { return v.s.doc }

// Init focuses the opener unless something on the page already has focus.
func (v *ModalDemoView) Init() tea.Cmd {
	if v.s.doc.Active() == nil {
		v.s.doc.Focus(v.openBtn)
	}
	return nil
}

// Update implements View.
func (v *ModalDemoView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenModalMsg:
		v.openModal()
		return v, nil
	case CloseModalMsg:
		v.closeTop(false)
		return v, nil
	case tea.KeyMsg:
		if top, ok := v.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) {
			v.closeTop(false)
			return v, nil
		}
		return v, v.s.handleKey(msg)
	}
	cmd, _ := v.Overlays.UpdateTop(msg)
	return v, tea.Batch(cmd, v.search.update(msg))
}

// openModal opens the main dialog. It does nothing while a dialog is already open.
func (v *ModalDemoView) openModal() {
	if v.Overlays.Len() > 0 {
		return
	}
	s := v.s
	v.name = s.textField("modal-name", "Your name")
	v.color = s.selectField("modal-color", "Red", "Green", "Blue")
	closeBtn := s.button("modal-close", "×", func() { v.closeTop(false) })
	closeBtn.SetAttr("aria-label", "Close")
	info := s.button("modal-info", "Help", v.openInfo)
	cancel := s.button("modal-cancel", "Cancel", func() { v.closeTop(false) })
	confirm := s.button("modal-confirm", "Confirm", func() { v.closeTop(true) })

	m := newModal(s, "modal", "Example Modal").
		row(closeBtn).
		row(v.name.el).
		row(v.color.el, info).
		row(cancel, confirm)
	m.Body = "Tab and Shift+Tab stay inside this dialog."

	v.Overlays.Push(Overlay{View: m, Container: m.Container(), Dismiss: "esc"})
	logging.Debugf("opened %s over %d overlays", m.Container(), v.Overlays.Len()-1)
}

// openInfo stacks a small dialog on top of the main one.
func (v *ModalDemoView) openInfo() {
	s := v.s
	ok := s.button("info-ok", "Got it", func() { v.closeTop(false) })
	m := newModal(s, "info", "Help").row(ok)
	m.Body = "Closing this returns focus to the Help button."
	v.Overlays.Push(Overlay{View: m, Container: m.Container(), Dismiss: "esc"})
}

// closeTop closes the topmost dialog. Confirming the main dialog records its values.
func (v *ModalDemoView) closeTop(confirmed bool) {
	top, ok := v.Overlays.Pop()
	if !ok {
		return
	}
	if top.Container.ID() != "modal" {
		return
	}
	if confirmed {
		v.Status = fmt.Sprintf("Confirmed: name=%q color=%s", v.name.Value(), v.color.Value())
	} else {
		v.Status = "Cancelled"
	}
	delete(v.s.fields, v.name.el)
	delete(v.s.selects, v.color.el)
	v.name, v.color = nil, nil
}

// View implements View.
func (v *ModalDemoView) View() string {
	page := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Focus trap"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			v.s.render(v.openBtn), " ", v.s.render(v.search.el), " ", v.s.render(v.other)),
	)
	if v.Status != "" {
		page += "\n" + Styles.Status.Render(v.Status)
	}
	if v.Overlays.Len() == 0 {
		return Styles.Box.Render(page)
	}
	layers := []string{Styles.Muted.Render(page)}
	for _, o := range v.Overlays.Stack {
		layers = append(layers, o.View.View())
	}
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, layers...))
}
