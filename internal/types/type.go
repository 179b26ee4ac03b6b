package types

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// vec3Alignment applies to every array whose count is a multiple of 3.
	vec3Alignment = 16
	// arrayAlignment applies to every other array.
	arrayAlignment = 16

	// MaxElements bounds the total element count of one field.
	MaxElements = 1 << 20
)

// Type is a scalar optionally wrapped in fixed-size array dimensions.
//
// dims lists the dimensions outermost first; `f32[2][3]` is an array of two
// `f32[3]`. Dimensions of 1 are never stored, so `f32[1]` and `f32` are the
// same Type.
type Type struct {
	Scalar BaseType
	dims   []int
}

// Scalar returns the scalar Type for b.
func Scalar(b BaseType) Type {
	return Type{Scalar: b}
}

// ArrayOf wraps elem in a new outermost dimension of n elements.
func ArrayOf(elem Type, n int) Type {
	if n < 1 {
		panic(fmt.Sprintf("types: array dimension must be positive, got %d", n))
	}
	if n == 1 {
		return elem
	}
	dims := make([]int, 0, len(elem.dims)+1)
	dims = append(dims, n)
	dims = append(dims, elem.dims...)
	return Type{Scalar: elem.Scalar, dims: dims}
}

// IsScalar reports whether t has no array dimensions.
func (t Type) IsScalar() bool {
	return len(t.dims) == 0
}

// Dims returns a copy of the dimensions, outermost first.
func (t Type) Dims() []int {
	return slices.Clone(t.dims)
}

// Count is the number of elements of the outermost dimension (1 for scalars).
func (t Type) Count() int {
	if t.IsScalar() {
		return 1
	}
	return t.dims[0]
}

// Elem drops the outermost dimension. Elem of a scalar is the scalar itself.
func (t Type) Elem() Type {
	if t.IsScalar() {
		return t
	}
	return Type{Scalar: t.Scalar, dims: t.dims[1:]}
}

// Size is the logical, unpadded size in bytes.
func (t Type) Size() int {
	if t.IsScalar() {
		return t.Scalar.Size()
	}
	return t.Elem().Size() * t.Count()
}

// Alignment follows uniform-buffer packing: counts divisible by 3 and every
// other array align to 16 bytes, scalars keep their natural alignment.
func (t Type) Alignment() int {
	if t.Count()%3 == 0 {
		return vec3Alignment
	}
	if t.IsScalar() {
		return t.Scalar.Alignment()
	}
	return arrayAlignment
}

// AlignmentPadding is the number of extra elements appended to the outermost
// dimension so that the array fills a multiple of its alignment. Elements are
// measured by their own aligned size.
func (t Type) AlignmentPadding() int {
	if t.IsScalar() {
		return 0
	}
	stride := t.Elem().SizeAligned()
	if stride == 0 {
		return 0
	}
	align := t.Alignment()
	raw := stride * t.Count()
	shortfall := (align - raw%align) % align
	return shortfall / stride
}

// SizeAligned is the size including per-element stride padding.
func (t Type) SizeAligned() int {
	if t.IsScalar() {
		return t.Scalar.Size()
	}
	return t.Elem().SizeAligned() * (t.Count() + t.AlignmentPadding())
}

// Equal reports structural equality.
func (t Type) Equal(other Type) bool {
	return t.Scalar == other.Scalar && slices.Equal(t.dims, other.dims)
}

// String renders the canonical form accepted by Parse, e.g. "f32[2][3]".
func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.Scalar.String())
	for _, n := range t.dims {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Declare renders a C declarator. Every dimension is widened by its own
// alignment padding: `f32[3]` named pos becomes "float pos[4]".
func (t Type) Declare(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for cur := t; !cur.IsScalar(); cur = cur.Elem() {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(cur.Count() + cur.AlignmentPadding()))
		sb.WriteByte(']')
	}
	return t.Scalar.Declare(sb.String())
}
