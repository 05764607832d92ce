package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/tabvdev/tabv/internal/ui/style"
)

// NewRenameInput returns a text input seeded with the tab's current true
// label, ready for editing.
func NewRenameInput(label string, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = "tab name"
	input.SetValue(label)
	input.CursorEnd()
	input.CharLimit = 128
	w := width - 12
	if w > 36 {
		w = 36
	}
	if w < 10 {
		w = 10
	}
	input.Width = w
	input.Focus()
	return input
}

// RenderRename renders the rename modal.
func RenderRename(theme style.Theme, input textinput.Model, width, height int) string {
	boxWidth := 44
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	var lines []string
	lines = append(lines, theme.ModalTitle.Render("  Rename Tab"))
	lines = append(lines, "  "+input.View())
	lines = append(lines, "")

	hint := lipgloss.NewStyle().
		Foreground(theme.TextMuted).
		Render("  Enter to confirm, Esc to cancel")
	lines = append(lines, hint)

	content := strings.Join(lines, "\n")

	box := theme.ModalStyle.
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
