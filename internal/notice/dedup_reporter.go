package notice

// DedupReporter wraps another Reporter and suppresses notices identical to
// one already forwarded.
type DedupReporter struct {
	next Reporter
	seen map[Notice]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique notices to next.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[Notice]struct{}),
	}
}

func (r *DedupReporter) Report(n Notice) {
	if r == nil {
		return
	}
	if _, ok := r.seen[n]; ok {
		return
	}
	r.seen[n] = struct{}{}
	if r.next != nil {
		r.next.Report(n)
	}
}
