// Package emit renders struct layouts as a C header.
package emit

import (
	"bufio"
	"io"
	"strconv"

	"uniformgen/internal/layout"
	"uniformgen/internal/signature"
)

const (
	headerPrologue = "#pragma once\n\n"
	packedSuffix   = "} __attribute__((packed));\n\n"
	indent         = "    "
)

// Emitter writes one packed struct and one signature string per signature.
type Emitter struct {
	backend Backend
	engine  *layout.Engine
}

// New returns an Emitter. A nil engine lays out with the default cursor mode.
func New(backend Backend, engine *layout.Engine) *Emitter {
	if engine == nil {
		engine = layout.New(layout.CursorLogical)
	}
	return &Emitter{backend: backend, engine: engine}
}

// Backend returns the configured backend.
func (e *Emitter) Backend() Backend {
	return e.backend
}

// Emit lays out every signature and writes the header.
func (e *Emitter) Emit(w io.Writer, sigs []signature.Signature) error {
	layouts := make([]layout.Layout, 0, len(sigs))
	for _, sig := range sigs {
		layouts = append(layouts, e.engine.Layout(sig))
	}
	return e.EmitLayouts(w, layouts)
}

// EmitLayouts writes the header for precomputed layouts, in slice order.
func (e *Emitter) EmitLayouts(w io.Writer, layouts []layout.Layout) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(headerPrologue)
	for i := range layouts {
		writeStruct(bw, &layouts[i])
	}
	return bw.Flush()
}

func writeStruct(bw *bufio.Writer, l *layout.Layout) {
	name := l.Signature.Name

	bw.WriteString("struct ")
	bw.WriteString(name)
	bw.WriteString("_uniform {\n")
	for _, entry := range l.Entries {
		if entry.HasPadding() {
			bw.WriteString(indent)
			bw.WriteString("char _padding")
			bw.WriteString(strconv.Itoa(entry.PaddingOffset))
			bw.WriteByte('[')
			bw.WriteString(strconv.Itoa(entry.Padding))
			bw.WriteString("];\n")
		}
		bw.WriteString(indent)
		bw.WriteString(entry.Field.Type.Declare(entry.Field.Name))
		bw.WriteString(";\n")
	}
	bw.WriteString(packedSuffix)

	bw.WriteString("static const char *")
	bw.WriteString(name)
	bw.WriteString("_signature = \"")
	bw.WriteString(SignatureLiteral(l.Signature))
	bw.WriteString("\";\n")
}

// SignatureLiteral is the canonical signature as stored in the generated
// `<name>_signature` constant.
func SignatureLiteral(sig signature.Signature) string {
	return sig.String()
}
