package notice

import (
	"fmt"
	"strings"
)

// Style selects the visual wrapper a notice belongs to.
type Style uint8

const (
	// StyleGrid is the owned style: the notice is shown inside the grid's
	// own themed wrapper.
	StyleGrid Style = iota
	// StylePlain leaves the notice to the host page.
	StylePlain
)

func (s Style) String() string {
	switch s {
	case StyleGrid:
		return "grid"
	case StylePlain:
		return "plain"
	}
	return "unknown"
}

// ParseStyle converts a style name to Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return StyleGrid, nil
	case "plain":
		return StylePlain, nil
	default:
		return StyleGrid, fmt.Errorf("invalid notice style: %q (expected: grid|plain)", s)
	}
}

// Ptr returns a pointer to a copy of s, for AddOpts.Style.
func (s Style) Ptr() *Style {
	return &s
}
