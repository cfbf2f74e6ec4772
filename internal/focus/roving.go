package focus

import "fmt"

// Roving implements the roving tab index pattern for a group of items: exactly one item is
// active (tabbable), arrow keys move activation with wrap-around and every change of the
// active index moves focus to that item.
type Roving struct {
	host     Host
	observer Observer

	count int
	index int
	items []Handle
}

// RovingOption configures a Roving group.
type RovingOption func(*Roving)

// WithRovingObserver reports index changes to fn.
func WithRovingObserver(fn Observer) RovingOption {
	return func(r *Roving) { r.observer = fn }
}

// WithInitialIndex starts the group at i instead of 0. Out-of-range values are ignored.
func WithInitialIndex(i int) RovingOption {
	return func(r *Roving) {
		if i >= 0 && i < r.count {
			r.index = i
		}
	}
}

// NewRoving creates a group of count items with item 0 active.
// count must be at least 1; anything else is a programming error and panics.
func NewRoving(host Host, count int, opts ...RovingOption) *Roving {
	if count < 1 {
		panic(fmt.Sprintf("focus: roving group needs at least one item, got %d", count))
	}
	r := &Roving{
		host:  host,
		count: count,
		items: make([]Handle, count),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Index returns the active item.
func (r *Roving) Index() int {
	return r.index
}

// Count returns the group size.
func (r *Roving) Count() int {
	return r.count
}

// SetIndex makes item i active and focuses it if the index changed.
// Indices outside [0, Count()) are ignored.
func (r *Roving) SetIndex(i int) {
	if i < 0 || i >= r.count {
		return
	}
	r.commit(i)
}

// OnKeyDown applies arrow, Home and End keys. Other keys pass through untouched.
func (r *Roving) OnKeyDown(e *KeyEvent) {
	var next int
	switch e.Key {
	case KeyArrowRight, KeyArrowDown:
		next = (r.index + 1) % r.count
	case KeyArrowLeft, KeyArrowUp:
		next = (r.index - 1 + r.count) % r.count
	case KeyHome:
		next = 0
	case KeyEnd:
		next = r.count - 1
	default:
		return
	}
	e.PreventDefault()
	r.commit(next)
}

// SetItem stores the element for slot i. Hosts call it as items mount.
func (r *Roving) SetItem(i int, h Handle) {
	if i < 0 || i >= r.count {
		return
	}
	r.items[i] = h
}

// Item returns the element in slot i, or nil.
func (r *Roving) Item(i int) Handle {
	if i < 0 || i >= r.count {
		return nil
	}
	return r.items[i]
}

// Items returns a copy of the item slots in order. Use SetItem to change a slot.
func (r *Roving) Items() []Handle {
	out := make([]Handle, len(r.items))
	copy(out, r.items)
	return out
}

// TabIndex returns the tabindex value the host should render for item i.
func (r *Roving) TabIndex(i int) int {
	if i == r.index {
		return 0
	}
	return -1
}

// Focus moves focus to the active item, if it has been set.
func (r *Roving) Focus() {
	if h := r.items[r.index]; h != nil {
		r.host.SetActiveElement(h)
	}
}

// SetCount resizes the group. The active index is clamped to the new last item and slots past
// the end are dropped. count must be at least 1.
func (r *Roving) SetCount(count int) {
	if count < 1 {
		panic(fmt.Sprintf("focus: roving group needs at least one item, got %d", count))
	}
	if count == r.count {
		return
	}
	items := make([]Handle, count)
	copy(items, r.items)
	r.items = items
	r.count = count
	if r.index >= count {
		r.commit(count - 1)
	}
}

func (r *Roving) commit(next int) {
	if next == r.index {
		return
	}
	from := r.index
	r.index = next
	r.Focus()
	if r.observer != nil {
		r.observer(Event{
			Type:      EventRovingMove,
			From:      r.Item(from),
			To:        r.items[next],
			FromIndex: from,
			ToIndex:   next,
			Count:     r.count,
		})
	}
}
