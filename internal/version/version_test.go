package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColoredWithoutColor(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()
	color.NoColor = true

	tests := []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.123", "dev"}
	for _, v := range tests {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with Version=%q = %q", v, got)
		}
	}
}

func TestColoredPaintsParts(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()
	color.NoColor = false

	Version = "1.2.3-dev"
	got := Colored()
	if got == Version {
		t.Fatal("expected escape sequences in coloured version")
	}
	if want := "\x1b[33;1m1"; !strings.HasPrefix(got, want) {
		t.Fatalf("unexpected major segment in %q", got)
	}
}
