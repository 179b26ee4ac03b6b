// Package driver runs a full generation pass: parse, layout, emit.
package driver

import (
	"bytes"
	"context"
	"strconv"

	"uniformgen/internal/emit"
	"uniformgen/internal/layout"
	"uniformgen/internal/observ"
	"uniformgen/internal/signature"
	"uniformgen/internal/trace"
)

// Options configures a generation pass.
type Options struct {
	Backend emit.Backend
	Cursor  layout.CursorMode
	Jobs    int // parallel layout workers, <= 0 means GOMAXPROCS
}

// Output is the result of a successful pass.
type Output struct {
	Signatures []signature.Signature
	Layouts    []layout.Layout
	Header     []byte
	Timings    *observ.Timer
}

// Generate parses text, lays out every signature and renders the header.
// Any parse error aborts the pass and no header is produced.
func Generate(ctx context.Context, text string, opts Options) (*Output, error) {
	tr := trace.FromContext(ctx)
	root := trace.Begin(tr, trace.ScopeDriver, "generate", 0)

	out, err := Analyze(ctx, text, opts, root.ID())
	if err != nil {
		root.End("failed")
		return nil, err
	}

	emitSpan := trace.Begin(tr, trace.ScopePass, "emit", root.ID())
	phase := out.Timings.Begin("emit")
	var buf bytes.Buffer
	if err := emit.New(opts.Backend, layout.New(opts.Cursor)).EmitLayouts(&buf, out.Layouts); err != nil {
		trace.Fail(tr, trace.ScopePass, "emit", err, root.ID())
		emitSpan.End("failed")
		root.End("failed")
		return nil, err
	}
	out.Header = buf.Bytes()
	out.Timings.End(phase, strconv.Itoa(buf.Len())+" bytes")
	emitSpan.WithExtra("bytes", strconv.Itoa(buf.Len())).End("")

	root.WithExtra("signatures", strconv.Itoa(len(out.Signatures))).End("")
	return out, nil
}

// Analyze parses text and computes layouts without rendering. parent is the
// trace span to nest under (0 for none).
func Analyze(ctx context.Context, text string, opts Options, parent uint64) (*Output, error) {
	tr := trace.FromContext(ctx)
	timer := observ.NewTimer()

	parseSpan := trace.Begin(tr, trace.ScopePass, "parse", parent)
	phase := timer.Begin("parse")
	sigs, err := signature.ParseDeclarations(text)
	if err != nil {
		trace.Fail(tr, trace.ScopePass, "parse", err, parent)
		parseSpan.End("failed")
		return nil, err
	}
	timer.End(phase, strconv.Itoa(len(sigs))+" signatures")
	parseSpan.WithExtra("signatures", strconv.Itoa(len(sigs))).End("")

	phase = timer.Begin("layout")
	layouts, err := LayoutAll(ctx, sigs, opts, parent)
	if err != nil {
		return nil, err
	}
	timer.End(phase, "")
	return &Output{Signatures: sigs, Layouts: layouts, Timings: timer}, nil
}
