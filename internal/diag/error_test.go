package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"uniformgen/internal/diag"
	"uniformgen/internal/source"
)

func TestErrorMessageIncludesPosition(t *testing.T) {
	err := diag.Errorf(diag.UnknownType, source.Span{Line: 3, Start: 7, End: 10}, "f16", "unknown scalar type %q", "f16")
	want := `3:8: TYP1001: unknown scalar type "f16"`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorWithoutLineFallsBackToTitle(t *testing.T) {
	err := &diag.Error{Code: diag.MalformedLine}
	if got := err.Error(); got != "SYN2001: Malformed declaration line" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRelocate(t *testing.T) {
	orig := diag.Errorf(diag.InvalidDimension, source.Span{Start: 4, End: 6}, "x]", "bad")
	moved := orig.Relocate(5, 10)
	if moved.Span != (source.Span{Line: 5, Start: 14, End: 16}) {
		t.Fatalf("unexpected span %v", moved.Span)
	}
	if orig.Span.Line != 0 {
		t.Fatalf("Relocate must not mutate the receiver")
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	base := diag.Errorf(diag.MalformedField, source.Span{Line: 1}, "bar f32", "expected name: type")
	wrapped := fmt.Errorf("input.txt: %w", base)
	if !diag.HasCode(wrapped, diag.MalformedField) {
		t.Fatal("expected wrapped error to carry MalformedField")
	}
	if diag.HasCode(wrapped, diag.MalformedLine) {
		t.Fatal("unexpected MalformedLine match")
	}
	if diag.HasCode(errors.New("plain"), diag.MalformedField) {
		t.Fatal("plain error must not match")
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := diag.NewBag(2)
	bag.Add(&diag.Error{Code: diag.UnknownType, Span: source.Span{Line: 4}})
	bag.Add(&diag.Error{Code: diag.MalformedLine, Span: source.Span{Line: 1}})
	if bag.Add(&diag.Error{Code: diag.MalformedField, Span: source.Span{Line: 2}}) {
		t.Fatal("expected bag to reject entries beyond its limit")
	}
	bag.Sort()
	items := bag.Items()
	if len(items) != 2 || items[0].Span.Line != 1 || items[1].Span.Line != 4 {
		t.Fatalf("unexpected sorted items %+v", items)
	}
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}
