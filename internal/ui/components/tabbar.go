package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tabvdev/tabv/internal/tabline"
	"github.com/tabvdev/tabv/internal/ui/style"
)

// RenderTabLine renders one row of padded tab names. The names arrive
// already padded to a shared width by the tab line engine; this function
// only styles them and adds the chrome the engine's overheads account for
// (one edge column on the left, one separator column per tab).
func RenderTabLine(theme style.Theme, tabs []*tabline.Tab, current, width int) string {
	if width < 1 {
		return ""
	}

	sep := theme.TabSeparator.Render("│")

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		s := theme.TabInactiveStyle
		if i == current {
			s = theme.TabActiveStyle
		}
		parts = append(parts, s.Render(tab.Display.Visible))
	}

	line := " " + strings.Join(parts, sep)

	// A degenerate config (min width above what fits) can overshoot the
	// terminal; cap the row so it never wraps into the content below.
	line = ansi.Truncate(line, width, "")

	return theme.TabLineStyle.Width(width).Render(line)
}
