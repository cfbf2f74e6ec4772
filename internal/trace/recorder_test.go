package trace

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
)

func newTestRecorder(t *testing.T, max int) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := NewRecorder(tp, max)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return r, sr
}

func attr(kvs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range kvs {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestRecorder_TrapLifecycleSpan(t *testing.T) {
	r, sr := newTestRecorder(t, 10)
	doc := dom.NewDocument()
	outside := doc.CreateElement("button", "outside")
	modal := doc.CreateElement("div", "modal")
	a := doc.CreateElement("button", "a")
	b := doc.CreateElement("button", "b")
	modal.Append(a, b)
	doc.Body().Append(outside, modal)
	doc.Focus(outside)

	trap := focus.NewTrap(doc, focus.WithTrapObserver(r.Observe))
	trap.Attach(true, modal)
	require.Equal(t, 1, r.OpenTraps())
	assert.Empty(t, sr.Ended(), "trap span stays open while active")

	doc.DispatchKey(focus.NewKeyEvent(focus.KeyTab, true))
	trap.Detach()

	require.Equal(t, 0, r.OpenTraps())
	ended := sr.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, "trap div#modal", span.Name())

	container, ok := attr(span.Attributes(), "focuskit.trap.container")
	require.True(t, ok)
	assert.Equal(t, "div#modal", container)
	restored, ok := attr(span.Attributes(), "focuskit.trap.restored")
	require.True(t, ok)
	assert.Equal(t, "true", restored)
	count, _ := attr(span.Attributes(), "focuskit.trap.focusable_count")
	assert.Equal(t, "2", count)

	require.Len(t, span.Events(), 1)
	assert.Equal(t, "trap.wrap", span.Events()[0].Name)
	to, _ := attr(span.Events()[0].Attributes, "focuskit.to")
	assert.Equal(t, "button#b", to)
	assert.True(t, span.EndTime().After(span.StartTime()))
}

func TestRecorder_SameLabelContainersKeepSeparateSpans(t *testing.T) {
	r, sr := newTestRecorder(t, 10)
	doc := dom.NewDocument()
	first := doc.CreateElement("div", "")
	second := doc.CreateElement("div", "")
	first.Append(doc.CreateElement("button", ""))
	second.Append(doc.CreateElement("button", ""))
	doc.Body().Append(first, second)
	require.Equal(t, focus.Label(first), focus.Label(second))

	outer := focus.NewTrap(doc, focus.WithTrapObserver(r.Observe))
	inner := focus.NewTrap(doc, focus.WithTrapObserver(r.Observe))
	outer.Attach(true, first)
	inner.Attach(true, second)

	assert.Equal(t, 2, r.OpenTraps())
	assert.Empty(t, sr.Ended())

	inner.Detach()
	assert.Equal(t, 1, r.OpenTraps())
	outer.Detach()
	assert.Equal(t, 0, r.OpenTraps())
	assert.Len(t, sr.Ended(), 2)
}

func TestRecorder_RovingSpans(t *testing.T) {
	r, sr := newTestRecorder(t, 10)
	group := focus.NewRoving(dom.NewDocument(), 3, focus.WithRovingObserver(r.Observe))

	group.OnKeyDown(focus.NewKeyEvent(focus.KeyEnd, false))
	group.OnKeyDown(focus.NewKeyEvent(focus.KeyArrowRight, false))

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "roving.move", ended[0].Name())
	to, _ := attr(ended[1].Attributes(), "focuskit.roving.to_index")
	assert.Equal(t, "0", to)
}

func TestRecorder_HistoryBounded(t *testing.T) {
	r, _ := newTestRecorder(t, 3)
	changes := 0
	r.SetOnChange(func() { changes++ })

	for i := 0; i < 5; i++ {
		r.Observe(focus.Event{Type: focus.EventRovingMove, FromIndex: i, ToIndex: i + 1, Count: 9})
	}

	recent := r.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, 3, recent[0].Seq)
	assert.Equal(t, 5, recent[2].Seq)
	assert.Equal(t, "roving.move 4 -> 5 of 9", recent[2].Summary)
	assert.Equal(t, 5, changes)
}

func TestRecorder_ShutdownEndsOpenSpans(t *testing.T) {
	r, sr := newTestRecorder(t, 10)
	doc := dom.NewDocument()
	modal := doc.CreateElement("div", "modal")
	doc.Body().Append(modal)

	r.Observe(focus.Event{Type: focus.EventTrapActivate, Container: modal})
	require.NoError(t, r.Shutdown(context.Background()))

	assert.Equal(t, 0, r.OpenTraps())
	assert.Len(t, sr.Ended(), 1)
}

func TestRecorder_DisabledKeepsHistory(t *testing.T) {
	r := NewRecorder(nil, 0)

	r.Observe(focus.Event{Type: focus.EventTrapActivate})
	r.Observe(focus.Event{Type: focus.EventTrapDeactivate})

	assert.Len(t, r.Recent(), 2)
	assert.Equal(t, 0, r.OpenTraps())
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestNewProvider_Disabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tp, err := NewProvider(context.Background(), Config{})

	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewProvider_Stdout(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	var buf bytes.Buffer

	tp, err := NewProvider(context.Background(), Config{Stdout: &buf, ServiceName: "focus-test"})
	require.NoError(t, err)
	require.NotNil(t, tp)

	r := NewRecorder(tp, 5)
	r.Observe(focus.Event{Type: focus.EventRovingMove, FromIndex: 0, ToIndex: 1, Count: 2})
	require.NoError(t, r.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "roving.move")
	assert.Contains(t, buf.String(), "focus-test")
}
