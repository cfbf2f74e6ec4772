package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
)

type stubView struct{ updates int }

func (s *stubView) Init() tea.Cmd { return nil }
func (s *stubView) Update(tea.Msg) (View, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubView) View() string { return "stub" }

func TestOverlayStack_PushTrapsAndPopRestores(t *testing.T) {
	doc := dom.NewDocument()
	opener := doc.CreateElement("button", "opener")
	doc.Body().Append(opener)
	doc.Focus(opener)

	var types []focus.EventType
	stack := NewOverlayStack(doc, func(ev focus.Event) { types = append(types, ev.Type) })

	dialog := doc.CreateElement("div", "dialog")
	ok := doc.CreateElement("button", "ok")
	dialog.Append(ok)
	view := &stubView{}
	stack.Push(Overlay{View: view, Container: dialog, Dismiss: "esc"})

	if !dialog.Connected() {
		t.Fatal("Push should mount the container")
	}
	if doc.Active() != ok {
		t.Errorf("active = %s, want ok", doc.Active())
	}
	top, _ := stack.Peek()
	if !top.Trap().Engaged() {
		t.Error("overlay trap should be engaged")
	}
	if !top.IsDismissKey("esc") || top.IsDismissKey("q") {
		t.Error("IsDismissKey mismatch")
	}

	if _, handled := stack.UpdateTop(tea.WindowSizeMsg{}); !handled || view.updates != 1 {
		t.Errorf("UpdateTop: handled=%v updates=%d", handled, view.updates)
	}

	popped, okPop := stack.Pop()
	if !okPop || popped.Container != dialog {
		t.Fatalf("Pop returned %v %v", popped.Container, okPop)
	}
	if dialog.Connected() {
		t.Error("Pop should unmount the container")
	}
	if doc.Active() != opener {
		t.Errorf("active after Pop = %s, want opener", doc.Active())
	}
	if popped.Trap().Engaged() {
		t.Error("trap should be released")
	}
	if len(types) != 2 || types[0] != focus.EventTrapActivate || types[1] != focus.EventTrapDeactivate {
		t.Errorf("events = %v", types)
	}
}

func TestOverlayStack_Empty(t *testing.T) {
	stack := NewOverlayStack(dom.NewDocument(), nil)

	if _, ok := stack.Pop(); ok {
		t.Error("Pop on empty stack should fail")
	}
	if _, ok := stack.Peek(); ok {
		t.Error("Peek on empty stack should fail")
	}
	if _, ok := stack.UpdateTop(nil); ok {
		t.Error("UpdateTop on empty stack should report false")
	}
}

func TestOverlayStack_NoContainerGetsIdleTrap(t *testing.T) {
	doc := dom.NewDocument()
	opener := doc.CreateElement("button", "opener")
	doc.Body().Append(opener)
	doc.Focus(opener)

	stack := NewOverlayStack(doc, nil)
	stack.Push(Overlay{View: &stubView{}})

	top, _ := stack.Peek()
	if top.Trap().Engaged() {
		t.Error("overlay without a container should not engage its trap")
	}
	if doc.Active() != opener {
		t.Errorf("active = %s, want opener", doc.Active())
	}
	if _, ok := stack.Pop(); !ok {
		t.Error("Pop should succeed")
	}
}
