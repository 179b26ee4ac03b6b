package driver

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"uniformgen/internal/layout"
	"uniformgen/internal/signature"
	"uniformgen/internal/trace"
)

// LayoutAll lays out signatures concurrently. Results are stored by index, so
// the returned slice is in input order regardless of scheduling.
func LayoutAll(ctx context.Context, sigs []signature.Signature, opts Options, parent uint64) ([]layout.Layout, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "layout", parent)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	engine := layout.New(opts.Cursor)

	// indices are unique per goroutine, no mutex needed
	results := make([]layout.Layout, len(sigs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(sigs))))

	for i := range sigs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := trace.Begin(tr, trace.ScopeSignature, "layout:"+sigs[i].Name, span.ID())
			results[i] = engine.Layout(sigs[i])
			s.WithExtra("size", strconv.Itoa(results[i].Size)).End("")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		trace.Fail(tr, trace.ScopePass, "layout", err, parent)
		span.End("cancelled")
		return nil, err
	}
	span.WithExtra("jobs", strconv.Itoa(jobs)).End("")
	return results, nil
}
