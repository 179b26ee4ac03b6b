package source

import (
	"bytes"
	"slices"
	"strings"
)

// Line is one raw input line with its 1-based number.
type Line struct {
	No   int
	Text string
}

// Normalize strips a UTF-8 BOM and converts CRLF line endings to LF.
func Normalize(content []byte) string {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return string(content)
}

// Lines splits text into numbered lines. Whitespace-only lines are kept so
// that numbering matches the input; callers decide whether to skip them.
func Lines(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	// a trailing newline does not open a new line
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	out := make([]Line, 0, len(raw))
	for i, l := range raw {
		out = append(out, Line{No: i + 1, Text: strings.TrimSuffix(l, "\r")})
	}
	return out
}

// normalizeCRLF replaces every \r\n with \n and leaves lone \r alone.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}
