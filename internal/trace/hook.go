package trace

import (
	"context"
	"time"
)

type ctxKey struct{}

// WithTracer attaches t to ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// Hook adapts a Tracer to the registry trace points (notice.Tracer).
// Every message becomes a KindPoint event at ScopeRegistry.
type Hook struct {
	Tracer Tracer
	Name   string // event name, e.g. "grid:orders"
	Parent uint64
}

// Tracing reports whether registry trace points would be recorded.
func (h Hook) Tracing() bool {
	return h.Tracer != nil && h.Tracer.Enabled()
}

// Trace emits msg as a point event.
func (h Hook) Trace(msg string) {
	if !h.Tracing() {
		return
	}
	h.Tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    ScopeRegistry,
		ParentID: h.Parent,
		Name:     h.Name,
		Detail:   msg,
	})
}
