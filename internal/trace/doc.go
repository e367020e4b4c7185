// Package trace provides the diagnostic tracing subsystem for gridmsg.
//
// Tracing follows a grid through configuration, notice collection and
// rendering so that suppressed or unexpected output can be explained.
//
// # Usage
//
//	gridmsg render --trace=- --trace-level=detail gridmsg.toml
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped on failure
//   - MultiTracer: combines multiple tracers
//   - Hook: adapts a Tracer to the notice.Tracer trace points
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only dumps on failure
//   - LevelPhase: command and grid boundaries
//   - LevelDetail: everything, including registry trace points
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeGrid, "render", 0)
//	defer span.End("")
package trace
