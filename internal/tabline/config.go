package tabline

// Config holds the tab line width tunables. All four are user-adjustable at
// runtime; Recompute reads whatever values it is handed on each call, so a
// change takes effect on the next recomputation with no caching.
//
// No cross-field validation is enforced at write time. The engine tolerates
// degenerate combinations (overhead exceeding the terminal width, MinWidth
// above MaxWidth after an adjustment) by clamping rather than erroring.
type Config struct {
	// MinWidth is the smallest width a tab may be allocated, in columns.
	MinWidth int
	// MaxWidth is the largest width a tab may be allocated, in columns.
	MaxWidth int
	// FixedOverhead is the column count consumed by tab line chrome that
	// does not scale with the number of tabs (edge markers).
	FixedOverhead int
	// PerTabOverhead is the column count consumed per tab beyond its label
	// (the separator).
	PerTabOverhead int
}

// DefaultConfig returns the default tab line tunables: 2 columns of edge
// chrome and a 1-column separator per tab.
func DefaultConfig() Config {
	return Config{
		MinWidth:       10,
		MaxWidth:       40,
		FixedOverhead:  2,
		PerTabOverhead: 1,
	}
}
