package buffer

import (
	"strings"
	"time"
)

// tabStop is the column width tab characters expand to.
const tabStop = 4

// Buffer is the read-only content behind one tab.
type Buffer struct {
	Name   string    // Auto-derived label (base name, or host:path for remote)
	Origin string    // Full path, or user@host:path for remote files
	Lines  []string  // Content split into lines, tabs expanded
	Size   int64     // Content size in bytes
	Mtime  time.Time // Last modification time, zero if unknown
	Remote bool
}

// New builds a buffer from raw file content. Tabs are expanded to spaces so
// the viewer can treat every character as one column; a trailing newline
// does not produce a phantom empty last line.
func New(name, origin string, content []byte) *Buffer {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.ContainsRune(line, '\t') {
			lines[i] = expandTabs(line)
		}
	}

	return &Buffer{
		Name:   name,
		Origin: origin,
		Lines:  lines,
		Size:   int64(len(content)),
	}
}

// LineCount returns the number of content lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

func expandTabs(line string) string {
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabStop - col%tabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}
