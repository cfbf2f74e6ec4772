package trace

import (
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"focuskit/internal/focus"
)

// Entry is one recorded focus transition, kept for the in-app focus log.
type Entry struct {
	Seq        int               // Monotonic sequence number, starting at 1
	Type       focus.EventType   // Controller event type
	Summary    string            // Human-readable one-liner
	Timestamp  time.Time         // When the event was observed
	Attributes map[string]string // Flattened event fields
}

// attributesFor flattens a controller event into string attributes.
// Keys are unprefixed; spanAttributes maps them into the focuskit.* namespace.
func attributesFor(ev focus.Event) map[string]string {
	attrs := make(map[string]string)
	switch ev.Type {
	case focus.EventTrapActivate:
		attrs["container"] = focus.Label(ev.Container)
		attrs["focusable_count"] = strconv.Itoa(ev.Count)
		attrs["previous"] = focus.Label(ev.From)
		attrs["first"] = focus.Label(ev.To)
	case focus.EventTrapDeactivate:
		attrs["container"] = focus.Label(ev.Container)
		attrs["restored"] = strconv.FormatBool(ev.Restored)
		attrs["previous"] = focus.Label(ev.To)
	case focus.EventTrapWrap:
		attrs["container"] = focus.Label(ev.Container)
		attrs["from"] = focus.Label(ev.From)
		attrs["to"] = focus.Label(ev.To)
		attrs["shift"] = strconv.FormatBool(ev.Shift)
	case focus.EventRovingMove:
		attrs["from_index"] = strconv.Itoa(ev.FromIndex)
		attrs["to_index"] = strconv.Itoa(ev.ToIndex)
		attrs["count"] = strconv.Itoa(ev.Count)
		attrs["to"] = focus.Label(ev.To)
	}
	return attrs
}

// spanAttributes maps entry attributes to the focuskit.* namespace.
func spanAttributes(attrs map[string]string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		var key string
		switch k {
		case "container":
			key = "focuskit.trap.container"
		case "focusable_count":
			key = "focuskit.trap.focusable_count"
		case "restored":
			key = "focuskit.trap.restored"
		case "from_index", "to_index", "count":
			key = "focuskit.roving." + k
		default:
			key = "focuskit." + k
		}
		out = append(out, attribute.String(key, v))
	}
	return out
}
