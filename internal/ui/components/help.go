package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tabvdev/tabv/internal/ui/style"
)

// RenderHelp renders the help overlay.
func RenderHelp(theme style.Theme, width, height int) string {
	boxWidth := 60
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	title := theme.ModalTitle.Render("  tabv - Keyboard Shortcuts")

	sections := []struct {
		name  string
		binds []struct{ key, desc string }
	}{
		{
			name: "Tabs",
			binds: []struct{ key, desc string }{
				{"Tab / l", "Next tab"},
				{"S-Tab / h", "Previous tab"},
				{"1-9", "Jump to tab"},
				{"R", "Rename current tab"},
				{"x", "Close current tab"},
				{"N", "Sort tabs by name"},
			},
		},
		{
			name: "Scrolling",
			binds: []struct{ key, desc string }{
				{"j/k", "Line down/up"},
				{"PgDn/PgUp", "Page down/up"},
				{"g/G", "Top / bottom"},
			},
		},
		{
			name: "Tab line width",
			binds: []struct{ key, desc string }{
				{"+/-", "Grow/shrink max tab width"},
				{"</>", "Shrink/grow min tab width"},
			},
		},
		{
			name: "General",
			binds: []struct{ key, desc string }{
				{"n", "Toggle line numbers"},
				{"?", "Toggle help"},
				{"q", "Quit"},
			},
		},
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	for _, sec := range sections {
		secTitle := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Render("  " + sec.name)
		lines = append(lines, secTitle)

		for _, b := range sec.binds {
			key := theme.HelpKey.Width(14).Render("    " + b.key)
			desc := theme.HelpDesc.Render(b.desc)
			lines = append(lines, fmt.Sprintf("%s %s", key, desc))
		}
		lines = append(lines, "")
	}

	close := lipgloss.NewStyle().
		Foreground(theme.TextMuted).
		Render("  Press ? or Esc to close")
	lines = append(lines, close)

	content := strings.Join(lines, "\n")

	box := theme.ModalStyle.
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
