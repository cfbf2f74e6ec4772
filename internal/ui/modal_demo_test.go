package ui

import (
	"strings"
	"testing"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
)

func press(v View, keys ...string) {
	for _, k := range keys {
		v.Update(keyMsg(k))
	}
}

func activeID(doc *dom.Document) string {
	if a := doc.Active(); a != nil {
		return a.ID()
	}
	return ""
}

func newModalDemo(t *testing.T) (*ModalDemoView, *[]focus.Event) {
	t.Helper()
	var events []focus.Event
	v := NewModalDemoView(func(ev focus.Event) { events = append(events, ev) })
	v.Init()
	if got := activeID(v.Document()); got != "open" {
		t.Fatalf("after Init: active = %q, want open", got)
	}
	return v, &events
}

func TestModalDemo_OpenFocusesFirstElement(t *testing.T) {
	v, events := newModalDemo(t)

	press(v, "enter")

	if v.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay, got %d", v.Overlays.Len())
	}
	if got := activeID(v.Document()); got != "modal-close" {
		t.Errorf("active = %q, want modal-close", got)
	}
	if len(*events) != 1 || (*events)[0].Type != focus.EventTrapActivate {
		t.Errorf("events = %v, want one trap.activate", *events)
	}
}

func TestModalDemo_TabStaysInsideDialog(t *testing.T) {
	v, _ := newModalDemo(t)
	press(v, "enter")

	want := []string{"modal-name", "modal-color", "modal-info", "modal-cancel", "modal-confirm", "modal-close", "modal-name"}
	for i, id := range want {
		press(v, "tab")
		if got := activeID(v.Document()); got != id {
			t.Fatalf("tab %d: active = %q, want %q", i+1, got, id)
		}
	}

	press(v, "shift+tab", "shift+tab")
	if got := activeID(v.Document()); got != "modal-confirm" {
		t.Errorf("shift+tab from first: active = %q, want modal-confirm", got)
	}
}

func TestModalDemo_ConfirmRecordsValuesAndRestoresFocus(t *testing.T) {
	v, events := newModalDemo(t)
	press(v, "enter", "tab")
	press(v, "A", "d", "a", " ", "L")
	press(v, "tab", "right", "right")
	press(v, "tab", "tab", "tab", "enter")

	if v.Overlays.Len() != 0 {
		t.Fatalf("expected dialog closed, %d overlays open", v.Overlays.Len())
	}
	if want := `Confirmed: name="Ada L" color=Blue`; v.Status != want {
		t.Errorf("Status = %q, want %q", v.Status, want)
	}
	if got := activeID(v.Document()); got != "open" {
		t.Errorf("focus after close = %q, want open", got)
	}
	if v.Document().GetElementByID("modal") != nil {
		t.Error("dialog container should be unmounted")
	}

	last := (*events)[len(*events)-1]
	if last.Type != focus.EventTrapDeactivate || !last.Restored {
		t.Errorf("last event = %v, want restored trap.deactivate", last)
	}
}

func TestModalDemo_EscCancels(t *testing.T) {
	v, _ := newModalDemo(t)
	press(v, "tab", "tab") // focus Another Button
	v.Update(OpenModalMsg{})

	press(v, "esc")

	if v.Overlays.Len() != 0 || v.Status != "Cancelled" {
		t.Fatalf("overlays=%d status=%q", v.Overlays.Len(), v.Status)
	}
	if got := activeID(v.Document()); got != "other" {
		t.Errorf("focus after esc = %q, want other (the element focused before opening)", got)
	}
}

func TestModalDemo_NestedDialogRestoresToOpener(t *testing.T) {
	v, _ := newModalDemo(t)
	press(v, "enter", "tab", "tab", "tab") // Help button
	if got := activeID(v.Document()); got != "modal-info" {
		t.Fatalf("active = %q, want modal-info", got)
	}

	press(v, "enter")
	if v.Overlays.Len() != 2 || activeID(v.Document()) != "info-ok" {
		t.Fatalf("nested: overlays=%d active=%q", v.Overlays.Len(), activeID(v.Document()))
	}
	press(v, "tab")
	if got := activeID(v.Document()); got != "info-ok" {
		t.Errorf("single-element dialog: tab moved focus to %q", got)
	}

	press(v, "enter")
	if v.Overlays.Len() != 1 {
		t.Fatalf("expected main dialog still open, got %d overlays", v.Overlays.Len())
	}
	if got := activeID(v.Document()); got != "modal-info" {
		t.Errorf("focus after nested close = %q, want modal-info", got)
	}
	if v.Status != "" {
		t.Errorf("closing the nested dialog must not touch Status, got %q", v.Status)
	}
}

func TestModalDemo_OpenWhileOpenIsIgnored(t *testing.T) {
	v, _ := newModalDemo(t)
	v.Update(OpenModalMsg{})
	v.Update(OpenModalMsg{})

	if v.Overlays.Len() != 1 {
		t.Errorf("expected 1 overlay, got %d", v.Overlays.Len())
	}
	v.Update(CloseModalMsg{})
	v.Update(CloseModalMsg{})
	if v.Overlays.Len() != 0 {
		t.Errorf("expected no overlays, got %d", v.Overlays.Len())
	}
}

func TestModalDemo_View(t *testing.T) {
	v, _ := newModalDemo(t)
	if out := v.View(); !strings.Contains(out, "Open Modal") || strings.Contains(out, "Example Modal") {
		t.Errorf("closed view:\n%s", out)
	}
	press(v, "enter")
	if out := v.View(); !strings.Contains(out, "Example Modal") || !strings.Contains(out, "Confirm") {
		t.Errorf("open view:\n%s", out)
	}
}
