package notice

// Reporter is the minimal sink for notices.
// Implementations: RegistryReporter, DedupReporter.
type Reporter interface {
	Report(n Notice)
}

// RegistryReporter appends reported notices to a Registry.
type RegistryReporter struct{ Registry *Registry }

func (r RegistryReporter) Report(n Notice) {
	if r.Registry == nil {
		return
	}
	r.Registry.items = append(r.Registry.items, n)
}

// ReportBuilder accumulates notice details before emitting to a Reporter.
type ReportBuilder struct {
	reporter Reporter
	notice   Notice
	emitted  bool
}

// Report starts a non-critical StyleGrid notice bound to r.
func Report(r Reporter, text string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		notice:   New(text, false, StyleGrid, ""),
	}
}

// Critical marks the notice as critical.
func (b *ReportBuilder) Critical() *ReportBuilder {
	if b == nil {
		return nil
	}
	b.notice.critical = true
	return b
}

// Styled overrides the style.
func (b *ReportBuilder) Styled(s Style) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.notice.style = s
	return b
}

// At attaches the notice to a row and column.
func (b *ReportBuilder) At(rowID, columnID string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.notice.location = LocationKey(rowID, columnID)
	return b
}

// Emit sends the notice to the underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.notice)
	}
	b.emitted = true
}

// Notice returns the accumulated notice without emitting.
func (b *ReportBuilder) Notice() Notice {
	if b == nil {
		return Notice{}
	}
	return b.notice
}
