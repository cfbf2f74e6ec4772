package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	f := NewFocusManager("a", "b", "c")
	var changes []string
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if f.Current != "a" {
		t.Fatalf("Current = %q, want a", f.Current)
	}
	if got := f.Next(); got != "b" {
		t.Errorf("Next = %q", got)
	}
	f.Next()
	if got := f.Next(); got != "a" {
		t.Errorf("Next should wrap to a, got %q", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev should wrap to c, got %q", got)
	}

	want := []string{"a>b", "b>c", "c>a", "a>c"}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager(RegionDemo, RegionLog)
	calls := 0
	f.OnChange = func(string, string) { calls++ }

	if f.SetFocus("missing") {
		t.Error("SetFocus(missing) should fail")
	}
	if !f.SetFocus(RegionDemo) || calls != 0 {
		t.Errorf("SetFocus to current region: calls=%d, want 0", calls)
	}
	if !f.SetFocus(RegionLog) || !f.Is(RegionLog) || calls != 1 {
		t.Errorf("SetFocus(log): current=%q calls=%d", f.Current, calls)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	if f.Next() != "" || f.Prev() != "" {
		t.Error("empty manager should return empty IDs")
	}
}
