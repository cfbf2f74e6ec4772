package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
)

// surface is a document shown as a terminal page. Keys go through the document first;
// whatever the document leaves alone is typed into the focused text field.
type surface struct {
	doc     *dom.Document
	fields  map[*dom.Element]*textField
	selects map[*dom.Element]*selectField
}

func newSurface() *surface {
	return &surface{
		doc:     dom.NewDocument(),
		fields:  make(map[*dom.Element]*textField),
		selects: make(map[*dom.Element]*selectField),
	}
}

func (s *surface) button(id, label string, onActivate func()) *dom.Element {
	el := s.doc.CreateElement("button", id).SetText(label)
	el.OnActivate = onActivate
	return el
}

// handleKey dispatches msg to the document. A key that neither moved focus nor was
// prevented is forwarded to the text field that had focus.
func (s *surface) handleKey(msg tea.KeyMsg) tea.Cmd {
	target := s.doc.Active()
	ev := KeyEventFromTea(msg)
	if !s.doc.DispatchKey(ev) {
		return nil
	}
	if ev.Key == focus.KeyTab || s.doc.Active() != target {
		return nil
	}
	if f, ok := s.fields[target]; ok {
		return f.update(msg)
	}
	return nil
}

// render draws el with its focus state.
func (s *surface) render(el *dom.Element) string {
	focused := s.doc.Active() == el
	if f, ok := s.fields[el]; ok {
		return f.view(focused)
	}
	if sel, ok := s.selects[el]; ok {
		return sel.view(focused)
	}
	if focused {
		return Styles.Focused.Render("[" + el.Text + "]")
	}
	if el.HasAttr("disabled") {
		return Styles.Muted.Render(" " + el.Text + " ")
	}
	return Styles.Button.Render("[" + el.Text + "]")
}

// textField binds a bubbles text input to an input element. The input's cursor
// follows document focus.
type textField struct {
	el    *dom.Element
	input textinput.Model
}

func (s *surface) textField(id, placeholder string) *textField {
	f := &textField{
		el:    s.doc.CreateElement("input", id),
		input: textinput.New(),
	}
	f.input.Placeholder = placeholder
	f.input.Prompt = ""
	f.input.Width = 24
	f.el.OnFocus = func() { f.input.Focus() }
	f.el.OnBlur = func() { f.input.Blur() }
	s.fields[f.el] = f
	return f
}

func (f *textField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// Value returns the typed text.
func (f *textField) Value() string { return f.input.Value() }

func (f *textField) view(focused bool) string {
	box := Styles.PanelDim
	if focused {
		box = Styles.Panel
	}
	return box.Render(f.input.View())
}

// selectField is a select element whose options cycle with left and right.
type selectField struct {
	el       *dom.Element
	options  []string
	selected int
}

func (s *surface) selectField(id string, options ...string) *selectField {
	sel := &selectField{el: s.doc.CreateElement("select", id), options: options}
	sel.el.OnKeyDown(func(ev *focus.KeyEvent) {
		switch ev.Key {
		case focus.KeyArrowRight:
			sel.cycle(1)
			ev.PreventDefault()
		case focus.KeyArrowLeft:
			sel.cycle(-1)
			ev.PreventDefault()
		}
	})
	s.selects[sel.el] = sel
	return sel
}

func (sel *selectField) cycle(step int) {
	if len(sel.options) == 0 {
		return
	}
	n := len(sel.options)
	sel.selected = ((sel.selected+step)%n + n) % n
}

// Value returns the selected option, or "" when there are none.
func (sel *selectField) Value() string {
	if len(sel.options) == 0 {
		return ""
	}
	return sel.options[sel.selected]
}

func (sel *selectField) view(focused bool) string {
	label := "‹ " + sel.Value() + " ›"
	if focused {
		return Styles.Focused.Render(label)
	}
	return Styles.Button.Render(label)
}
