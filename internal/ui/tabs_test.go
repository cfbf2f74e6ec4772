package ui

import (
	"strings"
	"testing"

	"focuskit/internal/focus"
)

func newTabsDemo(t *testing.T, labels ...string) (*TabsView, *[]focus.Event) {
	t.Helper()
	var events []focus.Event
	v := NewTabsView(labels, func(ev focus.Event) { events = append(events, ev) })
	v.Init()
	return v, &events
}

func tabIndexes(v *TabsView) []string {
	out := make([]string, len(v.tabs))
	for i, tab := range v.tabs {
		out[i], _ = tab.Attr("tabindex")
	}
	return out
}

func TestTabs_InitFocusesActiveTab(t *testing.T) {
	v, events := newTabsDemo(t, "One", "Two", "Three")

	if got := activeID(v.Document()); got != "tab-0" {
		t.Errorf("active = %q, want tab-0", got)
	}
	if got := strings.Join(tabIndexes(v), ","); got != "0,-1,-1" {
		t.Errorf("tabindex = %s", got)
	}
	if len(*events) != 0 {
		t.Errorf("Init must not emit moves, got %v", *events)
	}
}

func TestTabs_ArrowsRoveAndWrap(t *testing.T) {
	v, events := newTabsDemo(t, "One", "Two", "Three")

	steps := []struct {
		key    string
		active string
		index  int
	}{
		{"right", "tab-1", 1},
		{"right", "tab-2", 2},
		{"right", "tab-0", 0},
		{"left", "tab-2", 2},
		{"home", "tab-0", 0},
		{"end", "tab-2", 2},
		{"up", "tab-1", 1},
		{"down", "tab-2", 2},
	}
	for _, s := range steps {
		press(v, s.key)
		if got := activeID(v.Document()); got != s.active || v.Roving.Index() != s.index {
			t.Fatalf("%s: active=%q index=%d, want %q/%d", s.key, got, v.Roving.Index(), s.active, s.index)
		}
	}
	if len(*events) != len(steps) {
		t.Errorf("expected %d move events, got %d", len(steps), len(*events))
	}
	if got := strings.Join(tabIndexes(v), ","); got != "-1,-1,0" {
		t.Errorf("tabindex = %s", got)
	}
	if sel, _ := v.tabs[2].Attr("aria-selected"); sel != "true" {
		t.Errorf("aria-selected on active tab = %q", sel)
	}
}

func TestTabs_TabLeavesTablist(t *testing.T) {
	v, _ := newTabsDemo(t, "One", "Two", "Three")
	press(v, "right")

	press(v, "tab")
	if got := activeID(v.Document()); got != "panel-action" {
		t.Fatalf("tab from tablist: active = %q, want panel-action", got)
	}
	press(v, "shift+tab")
	if got := activeID(v.Document()); got != "tab-1" {
		t.Errorf("shift+tab back: active = %q, want the active tab tab-1", got)
	}
}

func TestTabs_ArrowsOutsideTablistIgnored(t *testing.T) {
	v, events := newTabsDemo(t, "One", "Two")
	press(v, "tab")
	press(v, "right", "end")

	if v.Roving.Index() != 0 || len(*events) != 0 {
		t.Errorf("arrows on the panel moved the group: index=%d events=%d", v.Roving.Index(), len(*events))
	}
}

func TestTabs_ActivateSelectsAndPanelFollows(t *testing.T) {
	v, _ := newTabsDemo(t, "One", "Two")
	press(v, "end")

	if !strings.Contains(v.panel.Text, "Two") {
		t.Errorf("panel text = %q", v.panel.Text)
	}
	press(v, "tab", "enter")
	if v.Status != "Opened Two" {
		t.Errorf("Status = %q", v.Status)
	}
}

func TestTabs_EnterOnTabIsNoMove(t *testing.T) {
	v, events := newTabsDemo(t, "One", "Two")
	press(v, "enter", " ")

	if len(*events) != 0 {
		t.Errorf("activating the active tab emitted %v", *events)
	}
}

func TestTabs_SingleTab(t *testing.T) {
	v, events := newTabsDemo(t)

	press(v, "right", "left", "end")

	if len(v.tabs) != 1 || v.Roving.Index() != 0 || len(*events) != 0 {
		t.Errorf("tabs=%d index=%d events=%d", len(v.tabs), v.Roving.Index(), len(*events))
	}
}

func TestTabs_ViewTruncatesLongLabels(t *testing.T) {
	v, _ := newTabsDemo(t, "A very long tab label", "Short")
	out := v.View()
	if !strings.Contains(out, "A very long t…") {
		t.Errorf("expected truncated label in:\n%s", out)
	}
	if !strings.Contains(out, "Short") {
		t.Errorf("expected second label in:\n%s", out)
	}
}
