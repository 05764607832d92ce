package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tabvdev/tabv/internal/buffer"
	"github.com/tabvdev/tabv/internal/ui/style"
	"github.com/tabvdev/tabv/internal/util"
)

// StatusInfo holds the current state for the status bar.
type StatusInfo struct {
	Buffer     *buffer.Buffer
	TabCount   int
	Offset     int
	ViewHeight int
	Message    string
	IsError    bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(theme style.Theme, info StatusInfo, width int) string {
	if info.Message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		if info.IsError {
			msgStyle = theme.ErrorText.Bold(true)
		}
		msgLine := " " + msgStyle.Render(info.Message)
		return theme.StatusBarStyle.Width(width).Render(msgLine)
	}

	var parts []string

	if info.Buffer != nil {
		b := info.Buffer
		name := util.TruncateString(b.Origin, width/2)
		parts = append(parts, util.FileIcon(b.Name)+" "+name)
		parts = append(parts, util.FormatSize(b.Size))
		parts = append(parts, fmt.Sprintf("%s lines", util.FormatCount(int64(b.LineCount()))))
		if b.Remote {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("remote"))
		}
	}

	if info.TabCount > 1 {
		parts = append(parts, fmt.Sprintf("%d tabs", info.TabCount))
	}

	left := " " + strings.Join(parts, " | ")

	var right string
	if info.Buffer != nil {
		bottom := info.Offset + info.ViewHeight
		if bottom > info.Buffer.LineCount() {
			bottom = info.Buffer.LineCount()
		}
		ratio := util.Percent(bottom, info.Buffer.LineCount()) / 100
		right = theme.PositionBar(10, ratio) + fmt.Sprintf(" %3.0f%% ", ratio*100)
	}

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return theme.StatusBarStyle.Width(width).Render(line)
}
