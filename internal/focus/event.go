package focus

import "fmt"

// EventType identifies what a controller did.
type EventType string

const (
	EventTrapActivate   EventType = "trap.activate"   // Trap engaged on a container
	EventTrapDeactivate EventType = "trap.deactivate" // Trap torn down
	EventTrapWrap       EventType = "trap.wrap"       // Tab wrapped at a boundary
	EventRovingMove     EventType = "roving.move"     // Active item changed
)

// Event describes one controller transition.
type Event struct {
	Type      EventType
	Container Handle // trap events only
	From      Handle
	To        Handle
	FromIndex int // roving events only
	ToIndex   int // roving events only
	Count     int // focusable elements (trap) or group size (roving)
	Restored  bool
	Shift     bool
}

// Observer receives controller events. It must not call back into the controller.
type Observer func(Event)

func (e Event) String() string {
	switch e.Type {
	case EventTrapActivate:
		return fmt.Sprintf("%s %s focusable=%d first=%s", e.Type, Label(e.Container), e.Count, Label(e.To))
	case EventTrapDeactivate:
		return fmt.Sprintf("%s %s restored=%v to=%s", e.Type, Label(e.Container), e.Restored, Label(e.To))
	case EventTrapWrap:
		return fmt.Sprintf("%s %s %s -> %s", e.Type, Label(e.Container), Label(e.From), Label(e.To))
	case EventRovingMove:
		return fmt.Sprintf("%s %d -> %d of %d", e.Type, e.FromIndex, e.ToIndex, e.Count)
	default:
		return string(e.Type)
	}
}

// Label returns a short human-readable name for h.
func Label(h Handle) string {
	if h == nil {
		return "<none>"
	}
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}

// Tee returns an observer that forwards each event to every non-nil observer in order.
func Tee(observers ...Observer) Observer {
	return func(ev Event) {
		for _, o := range observers {
			if o != nil {
				o(ev)
			}
		}
	}
}
