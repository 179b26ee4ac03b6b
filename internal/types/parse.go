package types

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"uniformgen/internal/diag"
	"uniformgen/internal/source"
)

// Parse reads a type token of the form `base[N1][N2]...[Nk]`.
//
// The first bracket is the outermost dimension. Returned errors are
// *diag.Error values whose span is relative to the token (line 0); callers
// that know the token position relocate them.
func Parse(token string) (Type, error) {
	baseEnd := strings.IndexByte(token, '[')
	if baseEnd < 0 {
		baseEnd = len(token)
	}
	baseTok := token[:baseEnd]
	base, ok := LookupBase(baseTok)
	if !ok {
		return Type{}, diag.Errorf(diag.UnknownType, source.NewSpan(0, 0, baseEnd), baseTok,
			"unknown scalar type %q", baseTok)
	}

	var dims []int
	pos := baseEnd
	for pos < len(token) {
		if token[pos] != '[' {
			return Type{}, diag.Errorf(diag.InvalidDimension, source.NewSpan(0, pos, len(token)), token[pos:],
				"unexpected %q after array dimension", token[pos:])
		}
		closeRel := strings.IndexByte(token[pos+1:], ']')
		if closeRel < 0 {
			return Type{}, diag.Errorf(diag.InvalidDimension, source.NewSpan(0, pos, len(token)), token[pos:],
				"unterminated array dimension %q", token[pos:])
		}
		end := pos + closeRel + 2
		n, msg := parseDimension(token[pos+1 : pos+1+closeRel])
		if msg != "" {
			return Type{}, diag.Errorf(diag.InvalidDimension, source.NewSpan(0, pos, end), token[pos:end],
				"%s in %q", msg, token[pos:end])
		}
		dims = append(dims, n)
		pos = end
	}

	total := 1
	for _, n := range dims {
		total *= n
		if total > MaxElements {
			return Type{}, diag.Errorf(diag.InvalidDimension, source.NewSpan(0, baseEnd, len(token)), token,
				"array %q exceeds %d elements", token, MaxElements)
		}
	}

	// right-to-left: the last bracket is the innermost array
	t := Scalar(base)
	for i := len(dims) - 1; i >= 0; i-- {
		t = ArrayOf(t, dims[i])
	}
	return t, nil
}

// MustParse is Parse for tests and tables of known-good tokens.
func MustParse(token string) Type {
	t, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return t
}

func parseDimension(s string) (int, string) {
	if s == "" {
		return 0, "empty array dimension"
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, "array dimension is not a positive integer"
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, "array dimension out of range"
	}
	n, err := safecast.Conv[int](v)
	if err != nil || n > MaxElements {
		return 0, "array dimension out of range"
	}
	if n == 0 {
		return 0, "array dimension must be positive"
	}
	return n, ""
}
