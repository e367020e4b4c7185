package notice

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatShort renders notices one per line for CLI short output:
//
//	critical [1;2] text
//	error text
//
// Lines wider than width columns are truncated with "..."; width <= 0
// disables truncation. Returns "" for no notices.
func FormatShort(items []Notice, width int) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range items {
		line := severityLabel(n.critical)
		if n.location != "" {
			line += " [" + n.location + "]"
		}
		line += " " + sanitizeText(n.text)
		b.WriteString(Truncate(line, width))
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Truncate shortens value to at most width terminal columns.
func Truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

func severityLabel(critical bool) string {
	if critical {
		return "critical"
	}
	return "error"
}

func sanitizeText(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
