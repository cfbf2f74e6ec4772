package dom

import (
	"strings"

	"focuskit/internal/focus"
)

// Document owns an element tree and its single active element.
type Document struct {
	body   *Element
	active *Element
}

var _ focus.Host = (*Document)(nil)

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body", "")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag, id string) *Element {
	return &Element{
		doc:   d,
		tag:   strings.ToLower(tag),
		id:    id,
		attrs: make(map[string]string),
	}
}

// GetElementByID returns the first connected element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.body.walk(func(n *Element) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Active returns the focused element, or nil.
func (d *Document) Active() *Element {
	return d.active
}

// ActiveElement implements focus.Host.
func (d *Document) ActiveElement() focus.Handle {
	if d.active == nil {
		return nil
	}
	return d.active
}

// SetActiveElement implements focus.Host. Handles from other documents are ignored.
func (d *Document) SetActiveElement(h focus.Handle) {
	el, ok := h.(*Element)
	if !ok || el == nil || el.doc != d {
		return
	}
	d.Focus(el)
}

// Focus moves focus to el when it can take focus. It reports whether el is now active.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.doc != d || !el.Focusable() {
		return false
	}
	if el == d.active {
		return true
	}
	prev := d.active
	d.active = el
	if prev != nil && prev.OnBlur != nil {
		prev.OnBlur()
	}
	if el.OnFocus != nil {
		el.OnFocus()
	}
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	prev := d.active
	d.active = nil
	if prev != nil && prev.OnBlur != nil {
		prev.OnBlur()
	}
}

// FocusableElements returns the tabbable elements of the document in sequential order.
func (d *Document) FocusableElements() []*Element {
	var out []*Element
	d.body.walk(func(n *Element) bool {
		if n != d.body && n.tabbable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// DispatchKey delivers e to the active element (or the body) and its ancestors, innermost
// first. Unless a listener prevented it, the default action runs afterwards. It reports whether
// the default action ran.
func (d *Document) DispatchKey(e *focus.KeyEvent) bool {
	target := d.active
	if target == nil {
		target = d.body
	}

	var path []*Element
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}
	for _, n := range path {
		for _, l := range append([]*keyListener(nil), n.keyListeners...) {
			if !l.removed {
				l.fn(e)
			}
		}
	}

	if e.DefaultPrevented() {
		return false
	}
	d.defaultAction(e)
	return true
}

func (d *Document) defaultAction(e *focus.KeyEvent) {
	switch e.Key {
	case focus.KeyTab:
		d.moveSequential(e.Shift)
	case focus.KeyEnter, focus.KeySpace:
		a := d.active
		if a == nil || a.OnActivate == nil {
			return
		}
		if a.tag == "button" || (a.tag == "a" && a.HasAttr("href")) {
			a.OnActivate()
		}
	}
}

// moveSequential focuses the next (or previous) tabbable element in document order, starting
// from the active element and wrapping at the ends.
func (d *Document) moveSequential(backward bool) {
	seq := d.FocusableElements()
	n := len(seq)
	if n == 0 {
		return
	}

	// before counts sequential elements ahead of the active one; on is 1 when it is one of them.
	before, on := 0, 0
	if d.active != nil {
		d.body.walk(func(el *Element) bool {
			if el == d.active {
				if el.tabbable() {
					on = 1
				}
				return false
			}
			if el != d.body && el.tabbable() {
				before++
			}
			return true
		})
	}

	next := before + on
	if backward {
		next = before - 1
	}
	d.Focus(seq[(next%n+n)%n])
}
