package notice

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	if out, ok := r.Render(); ok || out != "" {
		t.Fatalf("empty registry rendered %q", out)
	}
}

func TestRenderSuppressedWithoutGridStyle(t *testing.T) {
	r := NewRegistry(plainHost(), StylePlain)
	r.AddText("page only")
	r.AddCritical("also page only")

	if out, ok := r.Render(); ok || out != "" {
		t.Fatalf("registry without grid-styled notices rendered %q", out)
	}
	if r.Len() != 2 {
		t.Fatal("render must not mutate the registry")
	}
}

func TestRenderPlain(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	r.Add(AddOpts{Text: "Name required", Location: "1;2"})
	r.Add(AddOpts{Text: "DB timeout", Critical: true})

	out, ok := r.Render()
	if !ok {
		t.Fatal("expected markup")
	}
	want := `<table id="wgSystemMessage_g1" class="wgsystemmessagebox" width="300" >` +
		`<tr><td class="wgsystemmessagecell">System message</td></tr>` +
		`<tr><td class="wgsystemmessagecell">Name required<br/>DB timeout<br/></td></tr></table>`
	if out != want {
		t.Fatalf("unexpected markup:\nwant: %s\ngot:  %s", want, out)
	}
	if r.CriticalCount() != 1 {
		t.Fatalf("CriticalCount = %d, want 1", r.CriticalCount())
	}
}

func TestRenderFramework(t *testing.T) {
	host := plainHost()
	host.framework = true
	host.width = 640
	host.id = "orders"
	r := NewRegistry(host, StyleGrid)
	r.AddText("x")

	out, ok := r.Render()
	if !ok {
		t.Fatal("expected markup")
	}
	want := `<table id="wgSystemMessage_orders" class="ui-state-error wgsystemmessagebox" style="margin-bottom: 5px" width="640">` +
		`<tr><td class="ui-state-error-text wgsystemmessagecell">System message</td></tr>` +
		`<tr><td class="wgsystemmessagecell">x<br/></td></tr></table>`
	if out != want {
		t.Fatalf("unexpected markup:\nwant: %s\ngot:  %s", want, out)
	}
}

func TestRenderListsEveryStyleOnceOwned(t *testing.T) {
	r := NewRegistry(plainHost(), StylePlain)
	r.AddText("plain one")
	r.Add(AddOpts{Text: "grid one", Style: StyleGrid.Ptr()})
	r.AddText("plain two")

	out, ok := r.Render()
	if !ok {
		t.Fatal("expected markup")
	}
	body := "plain one<br/>grid one<br/>plain two<br/>"
	if !strings.Contains(out, body) {
		t.Fatalf("expected body %q in %q", body, out)
	}
	if strings.Count(out, "<table") != 1 || strings.Count(out, "</table>") != 1 {
		t.Fatalf("expected exactly one wrapper: %q", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	r.AddText("a")
	r.AddCritical("b")
	first, _ := r.Render()
	second, _ := r.Render()
	if first != second {
		t.Fatalf("render not idempotent:\n%s\n%s", first, second)
	}
}

func TestRenderMissingLabelAndHost(t *testing.T) {
	host := plainHost()
	host.labels = nil
	r := NewRegistry(host, StyleGrid)
	r.AddText("a")
	out, ok := r.Render()
	if !ok || !strings.Contains(out, `<td class="wgsystemmessagecell"></td>`) {
		t.Fatalf("missing label should embed empty text: %q", out)
	}

	r = NewRegistry(nil, StyleGrid)
	r.AddText("a")
	if _, ok := r.Render(); !ok {
		t.Fatal("nil host must still render")
	}
}

func TestRenderTracePoints(t *testing.T) {
	tr := &recordingTracer{enabled: true}
	r := NewRegistry(plainHost(), StylePlain, WithTracer(tr))

	r.Render()
	r.AddText("plain")
	r.Render()
	r.Add(AddOpts{Text: "grid", Style: StyleGrid.Ptr()})
	r.Render()

	want := []string{
		"Start render", "End render, no notices",
		"Start render", "Render suppressed, no grid-styled notices",
		"Start render", "Finished render",
	}
	if len(tr.msgs) != len(want) {
		t.Fatalf("trace = %q, want %q", tr.msgs, want)
	}
	for i := range want {
		if tr.msgs[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, tr.msgs[i], want[i])
		}
	}
}

func TestRenderTracerDisabledOrFromHost(t *testing.T) {
	off := &recordingTracer{}
	r := NewRegistry(plainHost(), StyleGrid, WithTracer(off))
	r.AddText("a")
	r.Render()
	if len(off.msgs) != 0 {
		t.Fatalf("disabled tracer received %q", off.msgs)
	}

	on := &recordingTracer{enabled: true}
	r = NewRegistry(tracingHost{fakeHost: plainHost(), recordingTracer: on}, StyleGrid)
	r.AddText("a")
	r.Render()
	if len(on.msgs) != 2 {
		t.Fatalf("host tracer should be used, got %q", on.msgs)
	}
}
