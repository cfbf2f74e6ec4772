package trace

import (
	"context"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"focuskit/internal/focus"
)

// DefaultHistory is the number of entries kept when NewRecorder gets a non-positive limit.
const DefaultHistory = 50

// Recorder turns focus controller events into spans and keeps a bounded history for display.
//
// A trap activation opens a span named after its container; wraps become span events and the
// matching deactivation ends it. Roving moves are recorded as short standalone spans.
type Recorder struct {
	mu       sync.Mutex
	provider *sdktrace.TracerProvider // nil when export is disabled
	tracer   oteltrace.Tracer
	open     map[focus.Handle]oteltrace.Span // container -> running trap span
	recent   []Entry                         // oldest first, at most max
	max      int
	seq      int
	onChange func()
	now      func() time.Time
}

// NewRecorder creates a recorder exporting through provider. A nil provider records history
// only.
func NewRecorder(provider *sdktrace.TracerProvider, maxEntries int) *Recorder {
	if maxEntries <= 0 {
		maxEntries = DefaultHistory
	}
	var tracer oteltrace.Tracer
	if provider != nil {
		tracer = provider.Tracer("focuskit/focus")
	} else {
		tracer = noop.NewTracerProvider().Tracer("focuskit/focus")
	}
	return &Recorder{
		provider: provider,
		tracer:   tracer,
		open:     make(map[focus.Handle]oteltrace.Span),
		recent:   make([]Entry, 0, maxEntries),
		max:      maxEntries,
		now:      time.Now,
	}
}

// Observe records ev. Its signature matches focus.Observer.
func (r *Recorder) Observe(ev focus.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now()
	attrs := attributesFor(ev)
	ctx := context.Background()

	switch ev.Type {
	case focus.EventTrapActivate:
		key := ev.Container
		if prev, ok := r.open[key]; ok {
			// Missed deactivation; close it rather than leak the span.
			prev.End(oteltrace.WithTimestamp(ts))
		}
		_, span := r.tracer.Start(ctx, "trap "+focus.Label(key), oteltrace.WithTimestamp(ts))
		span.SetAttributes(spanAttributes(attrs)...)
		r.open[key] = span
	case focus.EventTrapWrap:
		if span, ok := r.open[ev.Container]; ok {
			span.AddEvent(string(ev.Type),
				oteltrace.WithTimestamp(ts),
				oteltrace.WithAttributes(spanAttributes(attrs)...))
		}
	case focus.EventTrapDeactivate:
		key := ev.Container
		if span, ok := r.open[key]; ok {
			span.SetAttributes(spanAttributes(attrs)...)
			span.End(oteltrace.WithTimestamp(ts))
			delete(r.open, key)
		}
	case focus.EventRovingMove:
		_, span := r.tracer.Start(ctx, string(ev.Type), oteltrace.WithTimestamp(ts))
		span.SetAttributes(spanAttributes(attrs)...)
		span.End(oteltrace.WithTimestamp(ts))
	}

	r.seq++
	r.recent = append(r.recent, Entry{
		Seq:        r.seq,
		Type:       ev.Type,
		Summary:    ev.String(),
		Timestamp:  ts,
		Attributes: attrs,
	})
	if len(r.recent) > r.max {
		r.recent = r.recent[len(r.recent)-r.max:]
	}

	if r.onChange != nil {
		r.onChange()
	}
}

// Recent returns a copy of the recorded history, oldest first.
func (r *Recorder) Recent() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.recent))
	copy(out, r.recent)
	return out
}

// OpenTraps returns the number of trap spans not yet ended.
func (r *Recorder) OpenTraps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// SetOnChange sets a callback run after every recorded event (under the recorder lock).
// fn must not call back into the recorder.
func (r *Recorder) SetOnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Shutdown ends any open trap spans and flushes the provider.
// Must be called before process exit so batched spans are exported.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	ts := r.now()
	for key, span := range r.open {
		span.End(oteltrace.WithTimestamp(ts))
		delete(r.open, key)
	}
	provider := r.provider
	r.mu.Unlock()

	if provider != nil {
		return provider.Shutdown(ctx)
	}
	return nil
}
