package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tabvdev/tabv/internal/buffer"
	"github.com/tabvdev/tabv/internal/ui/style"
)

// Viewer renders the content pane for one buffer.
type Viewer struct {
	Theme           style.Theme
	Layout          style.Layout
	Buffer          *buffer.Buffer
	Offset          int
	ShowLineNumbers bool
}

// MaxOffset returns the largest useful scroll offset.
func (v *Viewer) MaxOffset() int {
	if v.Buffer == nil {
		return 0
	}
	m := v.Buffer.LineCount() - v.Layout.ContentHeight()
	if m < 0 {
		m = 0
	}
	return m
}

// Render renders the visible window of the buffer.
func (v *Viewer) Render() string {
	width := v.Layout.ContentWidth()
	height := v.Layout.ContentHeight()

	if v.Buffer == nil || v.Buffer.LineCount() == 0 {
		empty := lipgloss.NewStyle().Foreground(v.Theme.TextMuted).Render("  (empty buffer)")
		lines := []string{style.FullWidth(empty, width)}
		for len(lines) < height {
			lines = append(lines, strings.Repeat(" ", width))
		}
		return strings.Join(lines, "\n")
	}

	offset := v.Offset
	if offset > v.MaxOffset() {
		offset = v.MaxOffset()
	}
	if offset < 0 {
		offset = 0
	}

	gutterWidth := 0
	if v.ShowLineNumbers {
		gutterWidth = numberWidth(v.Buffer.LineCount()) + 2 // number + " │"
	}
	contentWidth := width - gutterWidth
	if contentWidth < 1 {
		contentWidth = 1
	}

	end := offset + height
	if end > v.Buffer.LineCount() {
		end = v.Buffer.LineCount()
	}

	var lines []string
	for i := offset; i < end; i++ {
		text := ansi.Truncate(v.Buffer.Lines[i], contentWidth, "…")
		row := v.Theme.ContentLine.Render(text)
		if v.ShowLineNumbers {
			gutter := v.Theme.LineNumber.Render(fmt.Sprintf("%*d │", gutterWidth-2, i+1))
			row = gutter + row
		}
		lines = append(lines, style.FullWidth(row, width))
	}

	// Pad remaining height
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

func numberWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}
