package dom

import (
	"strconv"
	"strings"

	"focuskit/internal/focus"
)

// Element is a node in a Document tree.
type Element struct {
	doc      *Document
	tag      string
	id       string
	attrs    map[string]string
	parent   *Element
	children []*Element

	keyListeners        []*keyListener
	disconnectListeners []*disconnectListener

	// Text is the element's label, rendered by views.
	Text string

	// Hooks fired by the document.
	OnFocus    func()
	OnBlur     func()
	OnActivate func()
}

type keyListener struct {
	fn      func(*focus.KeyEvent)
	removed bool
}

type disconnectListener struct {
	fn      func()
	removed bool
}

var (
	_ focus.Handle       = (*Element)(nil)
	_ focus.Container    = (*Element)(nil)
	_ focus.Disconnecter = (*Element)(nil)
	_ focus.Nillable     = (*Element)(nil)
)

// IsNil reports whether e is a nil element, as held by a ref that is not mounted yet.
func (e *Element) IsNil() bool { return e == nil }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.tag }

// ID returns the element id, which may be empty.
func (e *Element) ID() string { return e.id }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.id != "" {
		return e.tag + "#" + e.id
	}
	return e.tag
}

// SetAttr sets attribute name to value and returns e.
func (e *Element) SetAttr(name, value string) *Element {
	e.attrs[strings.ToLower(name)] = value
	return e
}

// SetText sets the label and returns e.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// RemoveAttr deletes attribute name.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, strings.ToLower(name))
}

// Attr returns the value of attribute name and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// HasAttr reports whether attribute name is present, whatever its value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

// SetTabIndex sets the tabindex attribute.
func (e *Element) SetTabIndex(i int) {
	e.SetAttr("tabindex", strconv.Itoa(i))
}

// SetDisabled adds or removes the disabled attribute.
func (e *Element) SetDisabled(disabled bool) {
	if disabled {
		e.SetAttr("disabled", "")
	} else {
		e.RemoveAttr("disabled")
	}
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Append adds children to the end of e, moving them from any previous parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil || c == e || c.Contains(e) {
			continue
		}
		wasConnected := c.Connected()
		if c.parent != nil {
			c.parent.detachChild(c)
		}
		c.parent = e
		e.children = append(e.children, c)
		if wasConnected && !c.Connected() {
			c.disconnected()
		}
	}
	return e
}

// Remove detaches e from its parent. If e was in the document, focus inside it is cleared and
// disconnect listeners in its subtree fire.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	wasConnected := e.Connected()
	e.parent.detachChild(e)
	e.parent = nil
	if wasConnected {
		e.disconnected()
	}
}

func (e *Element) detachChild(c *Element) {
	for i, existing := range e.children {
		if existing == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// disconnected runs after e's subtree left the document.
func (e *Element) disconnected() {
	if a := e.doc.active; a != nil && e.Contains(a) {
		e.doc.Blur()
	}
	e.walk(func(n *Element) bool {
		for _, l := range append([]*disconnectListener(nil), n.disconnectListeners...) {
			if !l.removed {
				l.fn()
			}
		}
		return true
	})
}

// Connected reports whether e is attached to its document's body.
func (e *Element) Connected() bool {
	if e == nil {
		return false
	}
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n == e.doc.body
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// walk visits e and its descendants in document order until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// tabIndex returns the parsed tabindex attribute.
func (e *Element) tabIndex() (int, bool) {
	v, ok := e.Attr("tabindex")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// interactive matches a[href], button:not([disabled]), textarea, input, select and any
// element with a non-negative tabindex.
func (e *Element) interactive() bool {
	switch e.tag {
	case "a":
		if e.HasAttr("href") {
			return true
		}
	case "button":
		if !e.HasAttr("disabled") {
			return true
		}
	case "textarea", "input", "select":
		return true
	}
	i, ok := e.tabIndex()
	return ok && i >= 0
}

// ariaHidden evaluates aria-hidden as a boolean: only "true" hides.
func (e *Element) ariaHidden() bool {
	v, ok := e.Attr("aria-hidden")
	return ok && strings.EqualFold(strings.TrimSpace(v), "true")
}

// candidate reports whether e belongs in a container's focusable set.
func (e *Element) candidate() bool {
	return e.interactive() && !e.HasAttr("disabled") && !e.ariaHidden()
}

// tabbable reports whether sequential Tab navigation stops at e.
func (e *Element) tabbable() bool {
	if !e.candidate() {
		return false
	}
	i, ok := e.tabIndex()
	return !ok || i >= 0
}

// Focusable reports whether e is connected and may receive programmatic focus.
// Elements with an explicit negative tabindex are focusable but not tabbable.
func (e *Element) Focusable() bool {
	if e == nil || !e.Connected() || e.HasAttr("disabled") {
		return false
	}
	if e.interactive() {
		return true
	}
	_, ok := e.tabIndex()
	return ok
}

// FocusableDescendants returns the focusable elements strictly below e in document order.
// It is recomputed on every call and is empty when e is not connected.
func (e *Element) FocusableDescendants() []focus.Handle {
	if !e.Connected() {
		return nil
	}
	var out []focus.Handle
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if n.candidate() {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// OnKeyDown registers fn for key-down events targeting e or its descendants.
func (e *Element) OnKeyDown(fn func(*focus.KeyEvent)) (remove func()) {
	if e == nil {
		return func() {}
	}
	l := &keyListener{fn: fn}
	e.keyListeners = append(e.keyListeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, existing := range e.keyListeners {
			if existing == l {
				e.keyListeners = append(e.keyListeners[:i], e.keyListeners[i+1:]...)
				return
			}
		}
	}
}

// OnDisconnect registers fn to run when e leaves the document.
func (e *Element) OnDisconnect(fn func()) (remove func()) {
	if e == nil {
		return func() {}
	}
	l := &disconnectListener{fn: fn}
	e.disconnectListeners = append(e.disconnectListeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, existing := range e.disconnectListeners {
			if existing == l {
				e.disconnectListeners = append(e.disconnectListeners[:i], e.disconnectListeners[i+1:]...)
				return
			}
		}
	}
}

// KeyListenerCount returns the number of registered key listeners on e.
func (e *Element) KeyListenerCount() int {
	return len(e.keyListeners)
}
