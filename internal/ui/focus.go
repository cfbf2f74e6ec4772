package ui

// Region IDs for FocusManager.
const (
	RegionDemo = "demo"
	RegionLog  = "log"
)

// FocusManager decides which screen region receives keys. It is coarser than
// document focus: inside the demo region the page's document tracks the element.
type FocusManager struct {
	Current  string   // ID of the region with keyboard focus
	Order    []string // rotation order
	OnChange func(from, to string)
}

// NewFocusManager starts on the first of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && step < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+step)%n+n)%n])
	return f.Current
}

// Next rotates to the following region and returns it.
func (f *FocusManager) Next() string { return f.move(1) }

// Prev rotates to the preceding region and returns it.
func (f *FocusManager) Prev() string { return f.move(-1) }

// SetFocus moves to id. It returns false if id is not a known region.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool { return f.Current == id }

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
