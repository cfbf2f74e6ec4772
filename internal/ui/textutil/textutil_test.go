package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Overview", 10, "Overview"},
		{"Overview", 8, "Overview"},
		{"Overview", 5, "Over…"},
		{"Overview", 1, "…"},
		{"Overview", 0, ""},
		{"日本語タブ", 6, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Tab", 7, "  Tab  "},
		{"Tab", 6, " Tab  "},
		{"Settings", 6, "Setti…"},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		got := Cell(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("Cell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := Width(got); w != tt.width {
			t.Errorf("Cell(%q, %d) width = %d", tt.in, tt.width, w)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight truncation = %q", got)
	}
}
