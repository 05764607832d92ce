package buffer

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SortBuffers orders buffers by name, case-insensitively and with natural
// number ordering ("file2" before "file10"). The sort is stable so buffers
// with identical names keep their opening order. Returns the index the
// buffer at position current ended up at, so the caller can keep the same
// tab focused.
func SortBuffers(buffers []*Buffer, current int) int {
	var focused *Buffer
	if current >= 0 && current < len(buffers) {
		focused = buffers[current]
	}

	sort.SliceStable(buffers, func(i, j int) bool {
		return natural.Less(strings.ToLower(buffers[i].Name), strings.ToLower(buffers[j].Name))
	})

	if focused == nil {
		return current
	}
	for i, b := range buffers {
		if b == focused {
			return i
		}
	}
	return current
}
