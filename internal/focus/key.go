package focus

// Key names a keyboard key the controllers understand.
type Key string

const (
	KeyTab        Key = "Tab"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"
	KeyEscape     Key = "Escape"
)

// KeyEvent is a single key-down delivered to listeners.
type KeyEvent struct {
	Key   Key
	Shift bool

	prevented bool
}

// NewKeyEvent creates a key-down event.
func NewKeyEvent(k Key, shift bool) *KeyEvent {
	return &KeyEvent{Key: k, Shift: shift}
}

// PreventDefault suppresses the host's default handling of the event.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

func (e *KeyEvent) String() string {
	if e.Shift {
		return "Shift+" + string(e.Key)
	}
	return string(e.Key)
}
