package rawtext

import "testing"

func TestFullLine(t *testing.T) {
	got := FullLine(5, 12)
	want := Position{StartLine: 5, StartColumn: 0, EndLine: 5, EndColumn: 12}
	if got != want {
		t.Errorf("FullLine(5, 12) = %#v, want %#v", got, want)
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', false},
		{'\r', false},
		{'a', false},
	}
	for _, tt := range tests {
		if got := IsWhitespace(tt.b); got != tt.want {
			t.Errorf("IsWhitespace(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestTrimLeadingWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"  abc", 2},
		{"\t\tabc", 2},
		{"   ", 3},
		{" \t a", 3},
	}
	for _, tt := range tests {
		if got := TrimLeadingWhitespace(tt.s); got != tt.want {
			t.Errorf("TrimLeadingWhitespace(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"abc  ", 3},
		{"abc\t\t", 3},
		{"   ", 0},
		{"a \t ", 1},
	}
	for _, tt := range tests {
		if got := TrimTrailingWhitespace(tt.s); got != tt.want {
			t.Errorf("TrimTrailingWhitespace(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
