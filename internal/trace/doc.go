// Package trace provides leveled tracing for the generation pipeline.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	uniformgen generate --log-level=phase --log-output=- uniforms.txt -o uniforms.h -b vulkan
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only parse and IO failures
//   - LevelPhase: Driver and pass boundaries (read, parse, layout, emit, write)
//   - LevelDetail: Per-signature events
//   - LevelDebug: Everything
//
// # Sink
//
// Events are written through a zap.Logger: console encoding by default, JSON
// when the output path ends in .json or .ndjson.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
