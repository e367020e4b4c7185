package noticefmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gridmsg/internal/notice"
)

type prettyStyles struct {
	critical    lipgloss.Style
	nonCritical lipgloss.Style
	location    lipgloss.Style
	dim         lipgloss.Style
}

// newPrettyStyles binds the styles to w. Color forces ANSI output whatever w
// is, since the caller has already decided.
func newPrettyStyles(w io.Writer, color bool) prettyStyles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return prettyStyles{
		critical:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		nonCritical: r.NewStyle().Foreground(lipgloss.Color("3")),
		location:    r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:         r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Pretty writes a human-readable listing, one notice per line:
//
//	CRITICAL  [1;2]  text  (plain)
//
// followed by a summary line. The style suffix is shown only for notices that
// are not StyleGrid.
func Pretty(w io.Writer, reg *notice.Registry, opts PrettyOpts) error {
	st := newPrettyStyles(w, opts.Color)
	items := reg.Items()
	for _, n := range items {
		var b strings.Builder
		b.WriteString(st.severity(n.Critical()).Render(fmt.Sprintf("%-8s", severity(n.Critical()))))
		if n.Located() {
			b.WriteString("  ")
			b.WriteString(st.location.Render("[" + n.Location() + "]"))
		}
		b.WriteString("  ")
		b.WriteString(oneLine(n.Text()))
		if n.Style() != notice.StyleGrid {
			b.WriteString("  ")
			b.WriteString(st.dim.Render("(" + n.Style().String() + ")"))
		}
		if _, err := fmt.Fprintln(w, truncateStyled(b.String(), opts.Width)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d notice(s), %d critical\n", len(items), reg.CriticalCount())
	return err
}

// truncateStyled cuts line to width visible columns, leaving escape
// sequences intact. Same tail rules as notice.Truncate.
func truncateStyled(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	if width <= 3 {
		return ansi.Truncate(line, width, "")
	}
	return ansi.Truncate(line, width, "...")
}

func severity(critical bool) string {
	if critical {
		return "CRITICAL"
	}
	return "ERROR"
}

func (s prettyStyles) severity(critical bool) lipgloss.Style {
	if critical {
		return s.critical
	}
	return s.nonCritical
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
