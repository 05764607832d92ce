package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tabvdev/tabv/internal/source"
	"github.com/tabvdev/tabv/internal/ui/style"
	"github.com/tabvdev/tabv/internal/util"
)

// RenderLoading renders the remote fetch progress overlay.
func RenderLoading(theme style.Theme, progress source.Progress, width, height int) string {
	boxWidth := 50
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	var lines []string

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render("  Loading...")

	lines = append(lines, title)
	lines = append(lines, "")

	statStyle := lipgloss.NewStyle().Foreground(theme.TextSecondary)

	if progress.CurrentPath != "" {
		path := util.TruncateString(progress.CurrentPath, boxWidth-12)
		lines = append(lines, statStyle.Render("  File:   "+path))
	}
	filesLine := fmt.Sprintf("  Files:  %d/%d", progress.FilesDone, progress.FilesTotal)
	sizeLine := fmt.Sprintf("  Read:   %s", util.FormatSize(progress.BytesRead))
	speedLine := fmt.Sprintf("  Speed:  %s/s", util.FormatSize(int64(progress.BytesPerSecond())))

	lines = append(lines, statStyle.Render(filesLine))
	lines = append(lines, statStyle.Render(sizeLine))
	lines = append(lines, statStyle.Render(speedLine))

	lines = append(lines, "")

	elapsed := fmt.Sprintf("  Elapsed: %.1fs", progress.Duration.Seconds())
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextMuted).Render(elapsed))

	content := strings.Join(lines, "\n")

	box := theme.ModalStyle.
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
