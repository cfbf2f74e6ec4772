package focus

// Trap confines Tab navigation to a container while active.
//
// The host calls Attach whenever the activation flag or the container changes and Detach when
// the owner is torn down. Each activation snapshots the element focused at the moment it starts
// and hands focus back to it on every exit path.
type Trap struct {
	host     Host
	observer Observer

	active    bool
	container Container

	// Per-activation state; engaged is true between setup and teardown.
	engaged        bool
	previous       Handle
	removeKey      func()
	removeDetached func()
}

// TrapOption configures a Trap.
type TrapOption func(*Trap)

// WithTrapObserver reports activation, wrap and teardown events to fn.
func WithTrapObserver(fn Observer) TrapOption {
	return func(t *Trap) { t.observer = fn }
}

// NewTrap creates an inactive trap bound to host.
func NewTrap(host Host, opts ...TrapOption) *Trap {
	t := &Trap{host: host}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Attach reconciles the trap with the given activation flag and container.
// Unchanged inputs are a no-op; otherwise the running activation (if any) is torn down first.
// A nil or absent container leaves the trap idle.
func (t *Trap) Attach(active bool, container Container) {
	if t.active == active && t.container == container {
		return
	}
	t.teardown()
	t.active = active
	t.container = container
	if active && present(container) {
		t.setup()
	}
}

// Detach tears down the running activation and forgets the inputs.
func (t *Trap) Detach() {
	t.teardown()
	t.active = false
	t.container = nil
}

// Engaged reports whether the trap currently intercepts Tab.
func (t *Trap) Engaged() bool {
	return t.engaged
}

// Container returns the container of the running activation, or nil.
func (t *Trap) Container() Container {
	if !t.engaged {
		return nil
	}
	return t.container
}

// PreviouslyFocused returns the element focus will return to on teardown.
func (t *Trap) PreviouslyFocused() Handle {
	return t.previous
}

func (t *Trap) setup() {
	c := t.container
	t.previous = t.host.ActiveElement()

	nodes := c.FocusableDescendants()
	var first Handle
	if len(nodes) > 0 {
		first = nodes[0]
		t.host.SetActiveElement(first)
	}

	t.removeKey = c.OnKeyDown(t.handleKey)
	if d, ok := c.(Disconnecter); ok {
		t.removeDetached = d.OnDisconnect(t.Detach)
	}
	t.engaged = true

	t.emit(Event{Type: EventTrapActivate, Container: c, From: t.previous, To: first, Count: len(nodes)})
}

func (t *Trap) teardown() {
	if !t.engaged {
		return
	}
	t.engaged = false

	if t.removeKey != nil {
		t.removeKey()
		t.removeKey = nil
	}
	if t.removeDetached != nil {
		t.removeDetached()
		t.removeDetached = nil
	}

	prev := t.previous
	t.previous = nil
	restored := false
	if prev != nil && prev.Focusable() {
		t.host.SetActiveElement(prev)
		restored = true
	}

	t.emit(Event{Type: EventTrapDeactivate, Container: t.container, To: prev, Restored: restored})
}

func (t *Trap) handleKey(e *KeyEvent) {
	if e.Key != KeyTab {
		return
	}

	nodes := t.container.FocusableDescendants()
	if len(nodes) == 0 {
		return
	}
	first, last := nodes[0], nodes[len(nodes)-1]
	current := t.host.ActiveElement()

	var target Handle
	switch {
	case e.Shift && current == first:
		target = last
	case !e.Shift && current == last:
		target = first
	default:
		return
	}

	e.PreventDefault()
	t.host.SetActiveElement(target)
	t.emit(Event{Type: EventTrapWrap, Container: t.container, From: current, To: target, Count: len(nodes), Shift: e.Shift})
}

func (t *Trap) emit(ev Event) {
	if t.observer != nil {
		t.observer(ev)
	}
}
