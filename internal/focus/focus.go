package focus

// Handle is an element that may hold keyboard focus.
type Handle interface {
	// Focusable reports whether the element is attached and currently eligible for focus.
	Focusable() bool
}

// Host owns the single active element of a document.
type Host interface {
	// ActiveElement returns the focused element, or nil.
	ActiveElement() Handle
	// SetActiveElement moves focus to h. Handles that cannot take focus are ignored.
	SetActiveElement(h Handle)
}

// Container is a subtree whose focusable descendants bound a Trap.
type Container interface {
	Handle
	// FocusableDescendants returns the focusable elements below the container in document order.
	// Implementations compute it on every call.
	FocusableDescendants() []Handle
	// OnKeyDown registers fn for key-down events dispatched within the container.
	// The returned func removes the listener; calling it more than once is a no-op.
	OnKeyDown(fn func(*KeyEvent)) (remove func())
}

// Disconnecter is implemented by containers that can report their removal from the document.
type Disconnecter interface {
	OnDisconnect(fn func()) (remove func())
}

// Nillable is implemented by containers that can stand for a ref not rendered yet, such as a nil
// pointer stored in the interface. A trap treats such a container as absent.
type Nillable interface {
	IsNil() bool
}

func present(c Container) bool {
	if c == nil {
		return false
	}
	if n, ok := c.(Nillable); ok {
		return !n.IsNil()
	}
	return true
}
