package types_test

import (
	"errors"
	"fmt"
	"testing"

	"uniformgen/internal/diag"
	"uniformgen/internal/types"
)

func TestBaseTypeTableIsComplete(t *testing.T) {
	bases := types.Bases()
	if len(bases) != 5 {
		t.Fatalf("expected 5 scalar types, got %d", len(bases))
	}
	for _, b := range bases {
		if b.Size() <= 0 || b.CType() == "" || b.String() == "<invalid>" {
			t.Errorf("incomplete table entry for %d: size=%d ctype=%q token=%q", b, b.Size(), b.CType(), b.String())
		}
		if b.Size() != b.Alignment() {
			t.Errorf("%s: size %d != alignment %d", b, b.Size(), b.Alignment())
		}
		got, ok := types.LookupBase(b.String())
		if !ok || got != b {
			t.Errorf("LookupBase(%q) = %v, %v", b.String(), got, ok)
		}
	}
	if _, ok := types.LookupBase("f16"); ok {
		t.Error("f16 must not resolve")
	}
}

func TestBaseTypeSizes(t *testing.T) {
	want := map[string]int{"f32": 4, "f64": 8, "i32": 4, "i64": 8, "byte": 1}
	for tok, size := range want {
		b, ok := types.LookupBase(tok)
		if !ok {
			t.Fatalf("LookupBase(%q) failed", tok)
		}
		if b.Size() != size {
			t.Errorf("%s: size = %d, want %d", tok, b.Size(), size)
		}
	}
}

func TestScalarAlignmentAndPadding(t *testing.T) {
	for _, b := range types.Bases() {
		ty := types.Scalar(b)
		if ty.Count() != 1 {
			t.Errorf("%s: count = %d", b, ty.Count())
		}
		if ty.Alignment() != b.Alignment() {
			t.Errorf("%s: alignment = %d, want %d", b, ty.Alignment(), b.Alignment())
		}
		if ty.AlignmentPadding() != 0 {
			t.Errorf("%s: padding = %d, want 0", b, ty.AlignmentPadding())
		}
		if ty.SizeAligned() != ty.Size() {
			t.Errorf("%s: aligned size %d != size %d", b, ty.SizeAligned(), ty.Size())
		}
	}
}

func sampleTypes() []types.Type {
	var out []types.Type
	for _, b := range types.Bases() {
		s := types.Scalar(b)
		out = append(out, s)
		for n := 2; n <= 12; n++ {
			arr := types.ArrayOf(s, n)
			out = append(out, arr)
			for m := 2; m <= 4; m++ {
				out = append(out, types.ArrayOf(arr, m))
			}
		}
	}
	return out
}

func TestArrayInvariants(t *testing.T) {
	for _, ty := range sampleTypes() {
		if ty.SizeAligned() < ty.Size() {
			t.Errorf("%s: aligned size %d < size %d", ty, ty.SizeAligned(), ty.Size())
		}
		if ty.Count()%3 == 0 && ty.Alignment() != 16 {
			t.Errorf("%s: count %d divisible by 3 but alignment %d", ty, ty.Count(), ty.Alignment())
		}
		if ty.Count() > 1 {
			if ty.Alignment() != 16 {
				t.Errorf("%s: array alignment %d, want 16", ty, ty.Alignment())
			}
			if ty.SizeAligned()%ty.Alignment() != 0 {
				t.Errorf("%s: aligned size %d not a multiple of %d", ty, ty.SizeAligned(), ty.Alignment())
			}
		}
	}
}

func TestTypeMetrics(t *testing.T) {
	tests := []struct {
		token       string
		size        int
		align       int
		padding     int
		sizeAligned int
		decl        string
	}{
		{"f32", 4, 4, 0, 4, "float v"},
		{"byte", 1, 1, 0, 1, "char v"},
		{"f32[3]", 12, 16, 1, 16, "float v[4]"},
		{"f32[4]", 16, 16, 0, 16, "float v[4]"},
		{"f32[2]", 8, 16, 2, 16, "float v[4]"},
		{"f64[3]", 24, 16, 1, 32, "double v[4]"},
		{"i64[5]", 40, 16, 1, 48, "long v[6]"},
		{"byte[3]", 3, 16, 13, 16, "char v[16]"},
		{"i32[16]", 64, 16, 0, 64, "int v[16]"},
		{"f32[2][3]", 24, 16, 0, 32, "float v[2][4]"},
		{"f32[3][3]", 36, 16, 0, 48, "float v[3][4]"},
		{"byte[2][5]", 10, 16, 0, 32, "char v[2][16]"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			ty, err := types.Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.token, err)
			}
			if ty.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", ty.Size(), tt.size)
			}
			if ty.Alignment() != tt.align {
				t.Errorf("Alignment() = %d, want %d", ty.Alignment(), tt.align)
			}
			if ty.AlignmentPadding() != tt.padding {
				t.Errorf("AlignmentPadding() = %d, want %d", ty.AlignmentPadding(), tt.padding)
			}
			if ty.SizeAligned() != tt.sizeAligned {
				t.Errorf("SizeAligned() = %d, want %d", ty.SizeAligned(), tt.sizeAligned)
			}
			if got := ty.Declare("v"); got != tt.decl {
				t.Errorf("Declare() = %q, want %q", got, tt.decl)
			}
		})
	}
}

func TestParseDimensionOrder(t *testing.T) {
	ty := types.MustParse("f32[2][3]")
	if ty.Count() != 2 {
		t.Fatalf("outer count = %d, want 2", ty.Count())
	}
	inner := ty.Elem()
	if inner.Count() != 3 || !inner.Elem().IsScalar() {
		t.Fatalf("unexpected inner type %s", inner)
	}
	want := types.ArrayOf(types.ArrayOf(types.Scalar(types.F32), 3), 2)
	if !ty.Equal(want) {
		t.Fatalf("Parse = %s, want %s", ty, want)
	}
}

func TestUnitDimensionsCollapse(t *testing.T) {
	if !types.MustParse("f32[1]").Equal(types.Scalar(types.F32)) {
		t.Error("f32[1] must equal f32")
	}
	if !types.MustParse("f32[1][3]").Equal(types.MustParse("f32[3]")) {
		t.Error("f32[1][3] must equal f32[3]")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ty := range sampleTypes() {
		back, err := types.Parse(ty.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", ty.String(), err)
		}
		if !back.Equal(ty) {
			t.Fatalf("round trip of %s produced %s", ty, back)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		token string
		code  diag.Code
		text  string
	}{
		{"f16", diag.UnknownType, "f16"},
		{"", diag.UnknownType, ""},
		{"[3]", diag.UnknownType, ""},
		{"F32", diag.UnknownType, "F32"},
		{"f16[3]", diag.UnknownType, "f16"},
		{"f32[0]", diag.InvalidDimension, "[0]"},
		{"f32[-1]", diag.InvalidDimension, "[-1]"},
		{"f32[x]", diag.InvalidDimension, "[x]"},
		{"f32[]", diag.InvalidDimension, "[]"},
		{"f32[3", diag.InvalidDimension, "[3"},
		{"f32[3]x", diag.InvalidDimension, "x"},
		{"f32[99999999999999999999]", diag.InvalidDimension, "[99999999999999999999]"},
		{"f32[1024][2048]", diag.InvalidDimension, "f32[1024][2048]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.token), func(t *testing.T) {
			_, err := types.Parse(tt.token)
			if err == nil {
				t.Fatalf("expected error for %q", tt.token)
			}
			var de *diag.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected *diag.Error, got %T (%v)", err, err)
			}
			if de.Code != tt.code {
				t.Fatalf("code = %v, want %v", de.Code, tt.code)
			}
			if de.Text != tt.text {
				t.Fatalf("text = %q, want %q", de.Text, tt.text)
			}
		})
	}
}

func TestArrayOfRejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero dimension")
		}
	}()
	types.ArrayOf(types.Scalar(types.I32), 0)
}
