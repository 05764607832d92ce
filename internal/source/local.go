package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tabvdev/tabv/internal/buffer"
)

// maxFileSize caps how much of a file tabv will load into memory.
const maxFileSize = 64 << 20 // 64 MiB

// LoadLocal reads local files into buffers, one per path, in argument order.
func LoadLocal(paths []string) ([]*buffer.Buffer, error) {
	buffers := make([]*buffer.Buffer, 0, len(paths))
	for _, path := range paths {
		b, err := loadLocalFile(path)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, b)
	}
	return buffers, nil
}

func loadLocalFile(path string) (*buffer.Buffer, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%s is too large (%d bytes, limit %d)", path, info.Size(), maxFileSize)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	b := buffer.New(filepath.Base(absPath), absPath, content)
	b.Mtime = info.ModTime()
	return b, nil
}
