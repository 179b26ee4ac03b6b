// Package signature reads uniform signature declarations.
//
// A declaration is one line of the form
//
//	<file-label>]<name>(<field>: <type>, <field>: <type>, ...)
//
// The file label is carried through untouched; name and field names must be C
// identifiers because they end up in generated struct definitions.
package signature

import (
	"strings"

	"uniformgen/internal/types"
)

// Field is one named member of a signature.
type Field struct {
	Name string
	Type types.Type
}

// Signature is a parsed declaration line.
type Signature struct {
	Name   string
	File   string // label before "]", opaque
	Fields []Field
	Line   int // 1-based input line, 0 when built in code
}

// String renders the canonical form `name(f1: t1, f2: t2)`. The result parses
// back into an equal Signature.
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteByte('(')
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Type.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal compares name, file label and fields. Line is ignored.
func (s Signature) Equal(other Signature) bool {
	if s.Name != other.Name || s.File != other.File || len(s.Fields) != len(other.Fields) {
		return false
	}
	for i := range s.Fields {
		if s.Fields[i].Name != other.Fields[i].Name || !s.Fields[i].Type.Equal(other.Fields[i].Type) {
			return false
		}
	}
	return true
}
