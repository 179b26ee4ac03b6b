package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span addresses a byte range inside a single input line.
type Span struct {
	Line  uint32 // 1-based
	Start uint32 // byte offset from line start, inclusive
	End   uint32 // exclusive
}

// NewSpan builds a span from int coordinates. Values that do not fit into
// uint32 collapse to an empty span on the same line.
func NewSpan(line, start, end int) Span {
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		return Span{}
	}
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return Span{Line: l}
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil || e < s {
		return Span{Line: l, Start: s, End: s}
	}
	return Span{Line: l, Start: s, End: e}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Column returns the 1-based column of the span start.
func (s Span) Column() uint32 {
	return s.Start + 1
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if s.Line != other.Line {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ShiftRight moves the span n bytes to the right.
func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Line:  s.Line,
		Start: s.Start + n,
		End:   s.End + n,
	}
}

// OnLine returns a copy of the span anchored to line.
func (s Span) OnLine(line uint32) Span {
	s.Line = line
	return s
}
