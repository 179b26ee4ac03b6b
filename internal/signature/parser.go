package signature

import (
	"errors"
	"strings"

	"fortio.org/safecast"

	"uniformgen/internal/diag"
	"uniformgen/internal/source"
	"uniformgen/internal/types"
)

// ParseDeclarations parses newline separated declarations in input order.
// Blank lines are skipped. The first malformed line aborts the whole pass.
func ParseDeclarations(text string) ([]Signature, error) {
	lines := source.Lines(text)
	out := make([]Signature, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		sig, err := ParseLine(l.Text, l.No)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	return out, nil
}

// Collect parses every line and records failures in bag instead of stopping.
// Lines that fail are left out of the result. Collection stops once the bag
// is full.
func Collect(text string, bag *diag.Bag) []Signature {
	var out []Signature
	for _, l := range source.Lines(text) {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		sig, err := ParseLine(l.Text, l.No)
		if err == nil {
			out = append(out, sig)
			continue
		}
		var de *diag.Error
		if !errors.As(err, &de) {
			de = &diag.Error{Code: diag.MalformedLine, Msg: err.Error()}
		}
		if !bag.Add(de) {
			break
		}
	}
	return out
}

// ParseLine parses a single declaration. lineNo is only used for error spans.
func ParseLine(text string, lineNo int) (Signature, error) {
	ln, err := safecast.Conv[uint32](lineNo)
	if err != nil {
		ln = 0
	}
	p := lineParser{line: ln, text: strings.TrimRight(text, " \t")}
	return p.parse()
}

type lineParser struct {
	line uint32
	text string
}

func (p *lineParser) errorf(code diag.Code, start, end int, format string, args ...any) *diag.Error {
	sp := source.NewSpan(int(p.line), start, end)
	return diag.Errorf(code, sp, p.text[start:end], format, args...)
}

func (p *lineParser) parse() (Signature, error) {
	sep := strings.IndexByte(p.text, ']')
	if sep < 0 {
		return Signature{}, p.errorf(diag.MalformedLine, 0, len(p.text),
			"missing ']' between file label and signature")
	}
	sig := Signature{File: p.text[:sep], Line: int(p.line)}

	nameStart := sep + 1
	openRel := strings.IndexByte(p.text[nameStart:], '(')
	if openRel < 0 {
		return Signature{}, p.errorf(diag.MalformedLine, nameStart, len(p.text),
			"missing '(' after signature name")
	}
	open := nameStart + openRel

	start, end := trimSpan(p.text, nameStart, open)
	name := p.text[start:end]
	if !isIdent(name) {
		return Signature{}, p.errorf(diag.MalformedLine, nameStart, open,
			"invalid signature name %q", name)
	}
	sig.Name = name

	last := len(p.text) - 1
	if p.text[last] != ')' || last == open {
		return Signature{}, p.errorf(diag.MalformedLine, open, len(p.text),
			"missing closing ')'")
	}
	if i := strings.IndexAny(p.text[open+1:last], "()"); i >= 0 {
		at := open + 1 + i
		return Signature{}, p.errorf(diag.MalformedLine, at, at+1,
			"unexpected %q in field list", p.text[at:at+1])
	}

	fields, err := p.parseFields(open+1, last)
	if err != nil {
		return Signature{}, err
	}
	sig.Fields = fields
	return sig, nil
}

// parseFields reads the comma separated list between byte offsets lo and hi.
func (p *lineParser) parseFields(lo, hi int) ([]Field, error) {
	if strings.TrimSpace(p.text[lo:hi]) == "" {
		return nil, p.errorf(diag.MalformedField, lo-1, hi+1, "empty field list")
	}

	var fields []Field
	segStart := lo
	for segStart <= hi {
		segEnd := hi
		if i := strings.IndexByte(p.text[segStart:hi], ','); i >= 0 {
			segEnd = segStart + i
		}
		f, err := p.parseField(segStart, segEnd)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		segStart = segEnd + 1
	}
	return fields, nil
}

func (p *lineParser) parseField(lo, hi int) (Field, error) {
	seg := p.text[lo:hi]
	if strings.Count(seg, ":") != 1 {
		start, end := trimSpan(p.text, lo, hi)
		if start == end {
			start, end = lo, hi
		}
		return Field{}, p.errorf(diag.MalformedField, start, end,
			"expected `name: type`, got %q", strings.TrimSpace(seg))
	}
	colon := lo + strings.IndexByte(seg, ':')

	nameStart, nameEnd := trimSpan(p.text, lo, colon)
	name := p.text[nameStart:nameEnd]
	if !isIdent(name) {
		return Field{}, p.errorf(diag.MalformedField, lo, colon+1,
			"invalid field name %q", name)
	}

	tyStart, tyEnd := trimSpan(p.text, colon+1, hi)
	if tyStart == tyEnd {
		return Field{}, p.errorf(diag.MalformedField, lo, hi,
			"missing type for field %q", name)
	}
	ty, err := types.Parse(p.text[tyStart:tyEnd])
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			off, convErr := safecast.Conv[uint32](tyStart)
			if convErr != nil {
				off = 0
			}
			return Field{}, de.Relocate(p.line, off)
		}
		return Field{}, err
	}
	return Field{Name: name, Type: ty}, nil
}

// trimSpan narrows [lo, hi) of s to exclude surrounding spaces and tabs.
func trimSpan(s string, lo, hi int) (int, int) {
	for lo < hi && isSpace(s[lo]) {
		lo++
	}
	for hi > lo && isSpace(s[hi-1]) {
		hi--
	}
	return lo, hi
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
