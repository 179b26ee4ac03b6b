package fuzztests

import (
	"context"
	"testing"
	"time"

	"uniformgen/internal/driver"
	"uniformgen/internal/layout"
	"uniformgen/internal/signature"
)

// parseTimeout bounds a single generation; exceeding it means a hang.
const parseTimeout = 5 * time.Second

func FuzzSignatureLine(f *testing.F) {
	addLineSeeds(f)
	f.Fuzz(func(t *testing.T, line string) {
		sig, err := signature.ParseLine(clamp(line), 1)
		if err != nil {
			return
		}
		again, err := signature.ParseLine(sig.File+"]"+sig.String(), 1)
		if err != nil {
			t.Fatalf("canonical %q does not parse: %v", sig.String(), err)
		}
		if !again.Equal(sig) {
			t.Fatalf("round trip changed the signature: %q != %q", again.String(), sig.String())
		}
	})
}

func FuzzLayoutInvariants(f *testing.F) {
	addLineSeeds(f)
	f.Fuzz(func(t *testing.T, line string) {
		sig, err := signature.ParseLine(clamp(line), 1)
		if err != nil {
			return
		}
		for _, mode := range []layout.CursorMode{layout.CursorLogical, layout.CursorAligned} {
			l := layout.New(mode).Layout(sig)
			if len(l.Entries) != len(sig.Fields) {
				t.Fatalf("%s: %d entries for %d fields", mode, len(l.Entries), len(sig.Fields))
			}
			prev := -1
			for _, e := range l.Entries {
				if e.Offset <= prev || e.Offset%e.Field.Type.Alignment() != 0 {
					t.Fatalf("%s: bad offset %d for %s", mode, e.Offset, e.Field.Name)
				}
				prev = e.Offset
			}
		}
	})
}

func FuzzGenerateNoHang(f *testing.F) {
	addLineSeeds(f)
	f.Fuzz(func(t *testing.T, text string) {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = driver.Generate(ctx, clamp(text), driver.Options{Jobs: 2})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("generation timed out after %v", parseTimeout)
		}
	})
}
