package tabline

// Recompute rewrites the display name of every tab so that all tabs
// together fill width columns under cfg, and returns the display string of
// the current tab so the caller needs no second lookup.
//
// An empty tab slice means "just the current tab, untracked": a single
// synthetic entry is substituted and becomes current. The current index is
// clamped into range. All tabs share one allocated target width.
//
// True labels are collected before any display name is overwritten, then
// each tab's Display is replaced in place. Calling Recompute repeatedly
// with unchanged inputs yields byte-identical output: the marker carried on
// the padding recovers the original label, so padding never compounds.
func Recompute(tabs []*Tab, current, width int, cfg Config, host Host) ([]*Tab, string) {
	if len(tabs) == 0 {
		tabs = []*Tab{{Synthetic: true}}
		current = 0
	}
	if current < 0 {
		current = 0
	}
	if current >= len(tabs) {
		current = len(tabs) - 1
	}

	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		labels[i] = TrueLabel(tab, host)
	}

	target := AllocateWidth(width, len(tabs), cfg)
	for i, tab := range tabs {
		tab.Display = PadLabel(labels[i], target)
	}

	return tabs, tabs[current].Display.Visible
}
