package source

import "time"

// Progress reports file loading progress.
type Progress struct {
	// CurrentPath is the file currently being read.
	CurrentPath string
	// FilesDone is the number of files fully loaded so far.
	FilesDone int
	// FilesTotal is the number of files requested.
	FilesTotal int
	// BytesRead is the total bytes read so far across all files.
	BytesRead int64
	// Done indicates loading is complete.
	Done bool
	// StartTime is when loading began.
	StartTime time.Time
	// Duration is elapsed time.
	Duration time.Duration
}

// BytesPerSecond returns the transfer rate.
func (p Progress) BytesPerSecond() float64 {
	if p.Duration.Seconds() == 0 {
		return 0
	}
	return float64(p.BytesRead) / p.Duration.Seconds()
}
