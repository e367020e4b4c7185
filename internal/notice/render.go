package notice

import (
	"fmt"
	"strings"
)

// LabelKey is the label looked up for the wrapper caption.
const LabelKey = "SystemMessage"

const (
	frameworkOpen = `<table id="wgSystemMessage_%[3]s" class="ui-state-error wgsystemmessagebox" style="margin-bottom: 5px" width="%[1]d"><tr><td class="ui-state-error-text wgsystemmessagecell">%[2]s</td></tr><tr><td class="wgsystemmessagecell">`
	plainOpen     = `<table id="wgSystemMessage_%[3]s" class="wgsystemmessagebox" width="%[1]d" ><tr><td class="wgsystemmessagecell">%[2]s</td></tr><tr><td class="wgsystemmessagecell">`
	lineBreak     = "<br/>"
	wrapperClose  = "</td></tr></table>"
)

// Render builds the markup fragment for the grid. It returns false when
// nothing should be emitted: the registry is empty, or none of its notices
// uses StyleGrid. When at least one StyleGrid notice exists every notice is
// listed, in insertion order.
//
// Render does not modify the registry; repeated calls give identical output.
func (r *Registry) Render() (string, bool) {
	r.trace("Start render")
	if len(r.items) == 0 {
		r.trace("End render, no notices")
		return "", false
	}

	owned := false
	for i := range r.items {
		if r.items[i].style == StyleGrid {
			owned = true
			break
		}
	}
	if !owned {
		r.trace("Render suppressed, no grid-styled notices")
		return "", false
	}

	var (
		width     int
		id, label string
		framework bool
	)
	if r.host != nil {
		width = r.host.Width()
		id = r.host.ID()
		label = r.host.Label(LabelKey)
		framework = r.host.ThemeFramework()
	}

	open := plainOpen
	if framework {
		open = frameworkOpen
	}

	var b strings.Builder
	fmt.Fprintf(&b, open, width, label, id)
	for i := range r.items {
		b.WriteString(r.items[i].text)
		b.WriteString(lineBreak)
	}
	b.WriteString(wrapperClose)

	r.trace("Finished render")
	return b.String(), true
}

func (r *Registry) trace(msg string) {
	if r.tracer == nil || !r.tracer.Tracing() {
		return
	}
	r.tracer.Trace(msg)
}
