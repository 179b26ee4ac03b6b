package diag

import (
	"errors"
	"fmt"

	"uniformgen/internal/source"
)

// Error is a parse failure anchored to the offending input text.
type Error struct {
	Code Code
	Span source.Span
	Text string // offending raw text
	Msg  string
}

// Errorf constructs an *Error with a formatted message.
func Errorf(code Code, span source.Span, text, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Span: span,
		Text: text,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	if e.Span.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Code.ID(), msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Span.Line, e.Span.Column(), e.Code.ID(), msg)
}

// Relocate returns a copy anchored to line with its span shifted right by
// offset bytes. Used when a sub-token was parsed in isolation.
func (e *Error) Relocate(line, offset uint32) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Span = e.Span.ShiftRight(offset).OnLine(line)
	return &cp
}

// HasCode reports whether err wraps an *Error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code
}
