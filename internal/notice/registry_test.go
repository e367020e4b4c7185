package notice

import "testing"

func TestAddDefaults(t *testing.T) {
	r := NewRegistry(plainHost(), StylePlain)

	if got := r.AddText("first"); got != 1 {
		t.Fatalf("AddText returned %d, want 1", got)
	}
	if got := r.Add(AddOpts{Text: "second", Critical: true, Style: StyleGrid.Ptr(), Location: "1;2"}); got != 2 {
		t.Fatalf("Add returned %d, want 2", got)
	}

	items := r.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Style() != StylePlain || items[0].Critical() || items[0].Located() {
		t.Errorf("unexpected defaults on first notice: %+v", items[0])
	}
	if items[1].Style() != StyleGrid || !items[1].Critical() || items[1].Location() != "1;2" {
		t.Errorf("unexpected second notice: %+v", items[1])
	}
}

func TestCountsFollowMutations(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	if r.CriticalCount() != 0 || r.HasCritical() {
		t.Fatal("empty registry must report no critical notices")
	}

	r.AddText("a")
	r.AddCritical("b")
	r.Addf("c %d", 3)
	r.AddCritical("d")

	if r.Len() != 4 {
		t.Fatalf("Len = %d, want 4", r.Len())
	}
	if r.CriticalCount() != 2 {
		t.Fatalf("CriticalCount = %d, want 2", r.CriticalCount())
	}

	r.Remove(1)
	if r.Len() != 3 || r.CriticalCount() != 1 {
		t.Fatalf("after Remove(1): Len=%d CriticalCount=%d", r.Len(), r.CriticalCount())
	}
	if got := r.Items()[1].Text(); got != "c 3" {
		t.Fatalf("expected %q at index 1, got %q", "c 3", got)
	}

	r.Clear()
	if r.Len() != 0 || r.CriticalCount() != 0 {
		t.Fatal("Clear must empty the registry")
	}
}

func TestRemoveBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantLen int
		want    []string
	}{
		{name: "negative", index: -1, wantLen: 3, want: []string{"a", "b", "c"}},
		{name: "first", index: 0, wantLen: 2, want: []string{"b", "c"}},
		{name: "middle", index: 1, wantLen: 2, want: []string{"a", "c"}},
		{name: "last is kept", index: 2, wantLen: 3, want: []string{"a", "b", "c"}},
		{name: "past end", index: 3, wantLen: 3, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(plainHost(), StyleGrid)
			for _, s := range []string{"a", "b", "c"} {
				r.AddText(s)
			}
			r.Remove(tt.index)
			if r.Len() != tt.wantLen {
				t.Fatalf("Len = %d, want %d", r.Len(), tt.wantLen)
			}
			for i, n := range r.Items() {
				if n.Text() != tt.want[i] {
					t.Errorf("item %d = %q, want %q", i, n.Text(), tt.want[i])
				}
			}
		})
	}
}

func TestRemoveSingleNoticeIsNoop(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	r.AddText("only")
	r.Remove(0)
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRemoveReleasesVacatedSlot(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	for _, s := range []string{"a", "b", "c"} {
		r.AddText(s)
	}
	r.Remove(0)
	if vacated := r.items[:r.Len()+1][r.Len()]; vacated != (Notice{}) {
		t.Fatalf("vacated slot still holds %q", vacated.Text())
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	r.AddText("unlocated")
	r.Add(AddOpts{Text: "first", Location: LocationKey("1", "2")})
	r.Add(AddOpts{Text: "second", Location: "1;2"})
	r.Add(AddOpts{Text: "upper", Location: "A;b"})

	if n, ok := r.Lookup("1;2"); !ok || n.Text() != "first" {
		t.Errorf("Lookup(1;2) = %q, %v; want first", n.Text(), ok)
	}
	if _, ok := r.Lookup("a;b"); ok {
		t.Error("Lookup must be case-sensitive")
	}
	if n, ok := r.Lookup("A;b"); !ok || n.Text() != "upper" {
		t.Errorf("Lookup(A;b) = %q, %v", n.Text(), ok)
	}
	if _, ok := r.Lookup("9;9"); ok {
		t.Error("Lookup of absent key must fail")
	}
	if _, ok := r.Lookup(""); ok {
		t.Error("empty key must never match")
	}
}

func TestItemsIsACopy(t *testing.T) {
	r := NewRegistry(plainHost(), StyleGrid)
	r.AddText("a")
	items := r.Items()
	items[0] = New("changed", true, StylePlain, "")
	if got := r.Items()[0].Text(); got != "a" {
		t.Fatalf("registry changed through Items copy: %q", got)
	}
}

func TestMerge(t *testing.T) {
	a := NewRegistry(plainHost(), StyleGrid)
	a.AddText("a1")
	b := NewRegistry(plainHost(), StyleGrid)
	b.AddCritical("b1")
	b.AddText("b2")

	a.Merge(b)
	a.Merge(nil)
	if a.Len() != 3 || a.CriticalCount() != 1 {
		t.Fatalf("after merge: Len=%d CriticalCount=%d", a.Len(), a.CriticalCount())
	}
	if b.Len() != 2 {
		t.Fatal("merge must not touch the source")
	}

	a.Merge(a)
	if a.Len() != 6 {
		t.Fatalf("self merge: Len=%d, want 6", a.Len())
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"grid", StyleGrid, false},
		{" Plain ", StylePlain, false},
		{"jquery", StyleGrid, true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
