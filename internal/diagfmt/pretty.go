package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"uniformgen/internal/diag"
	"uniformgen/internal/source"
)

// PrettyOpts configures pretty-printing of errors.
type PrettyOpts struct {
	Color   bool
	Context bool // print the offending line with a caret underline
}

type palette struct {
	location *color.Color
	severity *color.Color
	code     *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		code:     color.New(color.FgYellow),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.location, p.severity, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty prints each error as
//
//	<path>:<line>:<col>: error[<CODE>]: <message>
//
// followed, when opts.Context is set, by the input line and a ^~~ underline
// of the span. text is the full input the spans refer to.
func Pretty(w io.Writer, path, text string, errs []*diag.Error, opts PrettyOpts) {
	p := newPalette(opts.Color)
	var lines []source.Line
	if opts.Context {
		lines = source.Lines(text)
	}
	for _, e := range errs {
		if e == nil {
			continue
		}
		writeHeader(w, p, path, e)
		if !opts.Context || e.Span.Line == 0 || int(e.Span.Line) > len(lines) {
			continue
		}
		writeContext(w, p, lines[e.Span.Line-1], e.Span)
	}
}

// Error prints err, using the pretty form when it wraps a *diag.Error.
func Error(w io.Writer, path, text string, err error, opts PrettyOpts) {
	if err == nil {
		return
	}
	var de *diag.Error
	if errors.As(err, &de) {
		Pretty(w, path, text, []*diag.Error{de}, opts)
		return
	}
	p := newPalette(opts.Color)
	fmt.Fprintf(w, "%s: %s %s\n", p.location.Sprint(path), p.severity.Sprint("error:"), err)
}

func writeHeader(w io.Writer, p palette, path string, e *diag.Error) {
	loc := path
	if e.Span.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", path, e.Span.Line, e.Span.Column())
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	fmt.Fprintf(w, "%s: %s%s: %s\n",
		p.location.Sprint(loc),
		p.severity.Sprint("error"),
		p.code.Sprintf("[%s]", e.Code.ID()),
		msg,
	)
}

func writeContext(w io.Writer, p palette, line source.Line, sp source.Span) {
	num := fmt.Sprintf("%d", line.No)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line.Text)
	fmt.Fprintf(w, " %s %s %s\n", pad, p.gutter.Sprint("|"), p.caret.Sprint(underline(line.Text, sp)))
}

// underline builds the caret line, reusing tabs from the source so that the
// marker lines up with the text above it.
func underline(text string, sp source.Span) string {
	start := min(int(sp.Start), len(text))
	end := min(int(sp.End), len(text))
	var sb strings.Builder
	for i := 0; i < start; i++ {
		if text[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('^')
	if end-start > 1 {
		sb.WriteString(strings.Repeat("~", end-start-1))
	}
	return sb.String()
}
