package source

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a]x(v: f32)\r\nb]y(w: i32)\r\n")...)
	got := Normalize(in)
	want := "a]x(v: f32)\nb]y(w: i32)\n"
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestLines(t *testing.T) {
	lines := Lines("first\n\n  \nlast\r\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0] != (Line{No: 1, Text: "first"}) {
		t.Errorf("unexpected first line %+v", lines[0])
	}
	if lines[3] != (Line{No: 4, Text: "last"}) {
		t.Errorf("unexpected last line %+v", lines[3])
	}
	if Lines("") != nil {
		t.Errorf("expected nil for empty input")
	}
}
