package util

import "strings"

// FileIcon returns a Unicode icon based on file extension, for the status
// bar. Icons never appear inside tab labels — they would break the
// one-column-per-character width math of the tab line.
func FileIcon(name string) string {
	ext := strings.ToLower(getExt(name))
	if icon, ok := extIcons[ext]; ok {
		return icon
	}
	return "📄"
}

func getExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
		if name[i] == '/' {
			break
		}
	}
	return ""
}

var extIcons = map[string]string{
	// Code
	".go":   "🐹",
	".py":   "🐍",
	".js":   "🟨",
	".ts":   "🔷",
	".rs":   "🦀",
	".c":    "🔵",
	".cpp":  "🔵",
	".java": "☕",
	".rb":   "💎",
	".html": "🌐",
	".css":  "🎨",

	// Data
	".json": "📋",
	".yaml": "📋",
	".yml":  "📋",
	".toml": "📋",
	".xml":  "📋",
	".csv":  "📊",
	".sql":  "🗃️",

	// Documents
	".md":  "📝",
	".txt": "📄",

	// System
	".log":  "📜",
	".conf": "⚙️",
	".env":  "🔐",

	// Shell
	".sh":   "🐚",
	".bash": "🐚",
	".zsh":  "🐚",
}
