package notice

import (
	"fmt"
	"slices"
)

// Host is the grid-side rendering context consumed by Render.
type Host interface {
	Width() int
	ID() string
	// ThemeFramework reports whether the host page uses the jQuery UI CSS
	// framework, which selects the framework-aware wrapper.
	ThemeFramework() bool
	Label(key string) string
}

// Tracer receives diagnostic trace points. Optional.
type Tracer interface {
	Tracing() bool
	Trace(msg string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithTracer sets the tracer used by Render. It takes precedence over a Host
// that implements Tracer itself.
func WithTracer(t Tracer) Option {
	return func(r *Registry) { r.tracer = t }
}

// Registry is the ordered collection of notices owned by one grid.
type Registry struct {
	items        []Notice
	defaultStyle Style
	host         Host
	tracer       Tracer
}

// NewRegistry creates an empty registry. defaultStyle is applied to notices
// added without an explicit style.
func NewRegistry(host Host, defaultStyle Style, opts ...Option) *Registry {
	r := &Registry{
		host:         host,
		defaultStyle: defaultStyle,
	}
	if t, ok := host.(Tracer); ok {
		r.tracer = t
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddOpts describes a notice to add. Zero values are the defaults: not
// critical, registry default style, unlocated.
type AddOpts struct {
	Text     string
	Critical bool
	Style    *Style
	Location string
}

// Add appends a notice and returns the registry length after the insert,
// i.e. the 1-based position of the new notice.
func (r *Registry) Add(opts AddOpts) int {
	style := r.defaultStyle
	if opts.Style != nil {
		style = *opts.Style
	}
	r.items = append(r.items, New(opts.Text, opts.Critical, style, opts.Location))
	return len(r.items)
}

// AddText adds a non-critical notice with the default style.
func (r *Registry) AddText(text string) int {
	return r.Add(AddOpts{Text: text})
}

// Addf is AddText with fmt formatting.
func (r *Registry) Addf(format string, args ...any) int {
	return r.Add(AddOpts{Text: fmt.Sprintf(format, args...)})
}

// AddCritical adds a critical notice with the default style.
func (r *Registry) AddCritical(text string) int {
	return r.Add(AddOpts{Text: text, Critical: true})
}

// Remove deletes the notice at index when 0 <= index < Len()-1. The last
// notice is never removed by index; out-of-range requests are ignored.
func (r *Registry) Remove(index int) {
	if index < 0 || index >= len(r.items)-1 {
		return
	}
	r.items = slices.Delete(r.items, index, index+1)
}

// Clear drops every notice.
func (r *Registry) Clear() {
	r.items = r.items[:0]
}

// Merge appends the notices of other in their order.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	r.items = append(r.items, other.Items()...)
}

// Len returns the number of notices.
func (r *Registry) Len() int {
	return len(r.items)
}

// CriticalCount returns how many notices are critical.
func (r *Registry) CriticalCount() int {
	if len(r.items) == 0 {
		return 0
	}
	n := 0
	for i := range r.items {
		if r.items[i].critical {
			n++
		}
	}
	return n
}

// HasCritical возвращает true, если есть хотя бы один критический notice.
func (r *Registry) HasCritical() bool {
	for i := range r.items {
		if r.items[i].critical {
			return true
		}
	}
	return false
}

// Lookup returns the first notice whose location equals key. The comparison
// is exact and case-sensitive; an empty key never matches.
func (r *Registry) Lookup(key string) (Notice, bool) {
	if key == "" {
		return Notice{}, false
	}
	for i := range r.items {
		if r.items[i].location == key {
			return r.items[i], true
		}
	}
	return Notice{}, false
}

// Items returns a copy of the notices in insertion order.
func (r *Registry) Items() []Notice {
	out := make([]Notice, len(r.items))
	copy(out, r.items)
	return out
}

// DefaultStyle returns the style applied when AddOpts.Style is nil.
func (r *Registry) DefaultStyle() Style {
	return r.defaultStyle
}
