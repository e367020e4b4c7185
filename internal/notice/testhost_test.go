package notice

type fakeHost struct {
	width     int
	id        string
	framework bool
	labels    map[string]string
}

func (h fakeHost) Width() int { return h.width }
func (h fakeHost) ID() string { return h.id }
func (h fakeHost) ThemeFramework() bool { return h.framework }
func (h fakeHost) Label(key string) string { return h.labels[key] }

type recordingTracer struct {
	enabled bool
	msgs    []string
}

func (t *recordingTracer) Tracing() bool { return t.enabled }
func (t *recordingTracer) Trace(msg string) { t.msgs = append(t.msgs, msg) }

type tracingHost struct {
	fakeHost
	*recordingTracer
}

func plainHost() fakeHost {
	return fakeHost{width: 300, id: "g1", labels: map[string]string{LabelKey: "System message"}}
}
