package layout

import (
	"fmt"
	"strings"

	"uniformgen/internal/signature"
)

// CursorMode selects how far the running offset advances past an array field.
type CursorMode uint8

const (
	// CursorLogical advances by the logical size. Array fields render with
	// their padding elements, but the following field does not see them.
	// This is the layout existing headers were generated with.
	CursorLogical CursorMode = iota
	// CursorAligned advances by the aligned size so that offsets match the
	// rendered array lengths.
	CursorAligned
)

func (m CursorMode) String() string {
	switch m {
	case CursorLogical:
		return "logical"
	case CursorAligned:
		return "aligned"
	default:
		return "unknown"
	}
}

// ParseCursorMode converts a flag or config value to a CursorMode.
func ParseCursorMode(s string) (CursorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "logical":
		return CursorLogical, nil
	case "aligned":
		return CursorAligned, nil
	default:
		return CursorLogical, fmt.Errorf("invalid cursor mode: %q (expected: logical|aligned)", s)
	}
}

// Entry is one field of a struct layout, optionally preceded by padding.
type Entry struct {
	Padding       int // filler bytes before the field, 0 if none
	PaddingOffset int // offset of the filler, meaningful when Padding > 0
	Offset        int
	Field         signature.Field
}

// HasPadding reports whether a filler array precedes the field.
func (e Entry) HasPadding() bool {
	return e.Padding > 0
}

// Layout is the computed memory layout of one signature.
type Layout struct {
	Signature signature.Signature
	Entries   []Entry
	Size      int // cursor after the last field
}

// Engine computes layouts. The zero value uses CursorLogical.
type Engine struct {
	Mode CursorMode
}

// New creates an Engine for the given cursor mode.
func New(mode CursorMode) *Engine {
	return &Engine{Mode: mode}
}

// Layout walks the fields in declared order. Before each field the cursor is
// rounded up to the field's alignment with an explicit padding entry; the
// field is then placed and the cursor advanced according to Mode.
func (e *Engine) Layout(sig signature.Signature) Layout {
	mode := CursorLogical
	if e != nil {
		mode = e.Mode
	}

	out := Layout{
		Signature: sig,
		Entries:   make([]Entry, 0, len(sig.Fields)),
	}
	cursor := 0
	for _, f := range sig.Fields {
		entry := Entry{Field: f}
		align := f.Type.Alignment()
		if rem := cursor % align; rem != 0 {
			entry.Padding = align - rem
			entry.PaddingOffset = cursor
			cursor += entry.Padding
		}
		entry.Offset = cursor
		out.Entries = append(out.Entries, entry)

		if mode == CursorAligned {
			cursor += f.Type.SizeAligned()
		} else {
			cursor += f.Type.Size()
		}
	}
	out.Size = cursor
	return out
}

// PaddingBytes sums every filler byte inserted between fields.
func (l Layout) PaddingBytes() int {
	total := 0
	for _, e := range l.Entries {
		total += e.Padding
	}
	return total
}
