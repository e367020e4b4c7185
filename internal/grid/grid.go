// Package grid is the owning side of the notice registry: it supplies the
// rendering context (width, id, theme, labels) and tracing, and replays
// configured notices into its registry.
package grid

import (
	"github.com/rs/zerolog/log"

	"gridmsg/internal/config"
	"gridmsg/internal/labels"
	"gridmsg/internal/notice"
	"gridmsg/internal/trace"
)

// Grid implements notice.Host and notice.Tracer.
type Grid struct {
	id        string
	width     int
	framework bool
	labels    *labels.Catalog
	hook      trace.Hook
	messages  *notice.Registry
}

// Options describe a grid.
type Options struct {
	ID           string
	Width        int
	Theme        config.Theme
	DefaultStyle notice.Style
	Labels       *labels.Catalog
	Tracer       trace.Tracer
}

// New creates a grid with an empty registry.
func New(opts Options) *Grid {
	t := opts.Tracer
	if t == nil {
		t = trace.Nop
	}
	g := &Grid{
		id:        opts.ID,
		width:     opts.Width,
		framework: opts.Theme == config.ThemeJQueryUI,
		labels:    opts.Labels,
		hook:      trace.Hook{Tracer: t, Name: "grid:" + opts.ID},
	}
	g.messages = notice.NewRegistry(g, opts.DefaultStyle)
	return g
}

// FromConfig builds a grid from a loaded config and replays its notices in
// file order. With [grid].dedupe set, repeats of an identical notice are
// dropped.
func FromConfig(cfg *config.Config, t trace.Tracer) (*Grid, error) {
	cat, err := labels.New(cfg.Grid.Locale, cfg.Labels)
	if err != nil {
		return nil, err
	}
	g := New(Options{
		ID:           cfg.Grid.ID,
		Width:        cfg.Grid.Width,
		Theme:        cfg.Grid.Theme,
		DefaultStyle: cfg.Grid.DefaultStyle,
		Labels:       cat,
		Tracer:       t,
	})
	var rep notice.Reporter = notice.RegistryReporter{Registry: g.messages}
	if cfg.Grid.Dedupe {
		rep = notice.NewDedupReporter(rep)
	}
	for _, n := range cfg.Notices {
		style := g.messages.DefaultStyle()
		if n.Style != nil {
			style = *n.Style
		}
		b := notice.Report(rep, n.Text).Styled(style)
		if n.Critical {
			b.Critical()
		}
		if n.Location() != "" {
			b.At(n.Row, n.Column)
		}
		b.Emit()
	}
	log.Debug().Str("grid", g.id).Int("notices", g.messages.Len()).Int("critical", g.messages.CriticalCount()).Msg("notices replayed")
	return g, nil
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) ID() string { return g.id }

func (g *Grid) ThemeFramework() bool { return g.framework }

// Label resolves key through the grid's label catalog.
func (g *Grid) Label(key string) string {
	return g.labels.Label(key)
}

func (g *Grid) Tracing() bool { return g.hook.Tracing() }

func (g *Grid) Trace(msg string) { g.hook.Trace(msg) }

// Messages returns the grid's registry.
func (g *Grid) Messages() *notice.Registry { return g.messages }

// RenderMessages renders the system-message box inside a grid-scoped span.
func (g *Grid) RenderMessages() (string, bool) {
	span := trace.Begin(g.hook.Tracer, trace.ScopeGrid, "render", 0)
	prev := g.hook.Parent
	g.hook.Parent = span.ID()
	out, ok := g.messages.Render()
	g.hook.Parent = prev

	detail := "suppressed"
	if ok {
		detail = "rendered"
	}
	span.WithExtra("grid", g.id).End(detail)
	return out, ok
}
