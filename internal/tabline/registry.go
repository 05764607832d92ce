package tabline

// Tab is one entry in the tab line as seen by the host.
type Tab struct {
	// Synthetic marks the current-tab pseudo-entry that Recompute
	// substitutes when the host reports no tabs at all. Its label is a
	// live view of whatever buffer is focused, never stored state.
	Synthetic bool

	// ExplicitName is non-empty when a human renamed the tab, as opposed
	// to a name auto-derived from the buffer behind it.
	ExplicitName string

	// Display is what the host currently shows for this tab: a plain
	// label before the first recomputation, a padded string carrying the
	// original-label marker afterwards.
	Display DisplayName
}

// Host is the live environment query the registry needs. CurrentLabel
// returns the label of whatever buffer is currently focused; it is
// re-fetched on every recomputation because the synthetic entry's label is
// not an independent piece of state.
type Host interface {
	CurrentLabel() string
}

// TrueLabel returns the tab's semantic name before any width-driven padding
// or truncation. Three sources of truth exist, checked in order:
//
// Synthetic entries take their label from the host's focused buffer, live.
//
// Explicitly renamed tabs prefer the marker embedded in the displayed name,
// which holds the name as last typed even if the host's own explicit-name
// field has gone stale; a freshly renamed, not-yet-padded tab falls back to
// the displayed string verbatim.
//
// Ordinary tabs likewise prefer the marker, falling back to the displayed
// string. A tab with no name anywhere yields the empty label; that is valid
// input downstream, not an error.
func TrueLabel(tab *Tab, host Host) string {
	if tab.Synthetic {
		return host.CurrentLabel()
	}

	if tab.ExplicitName != "" {
		if tab.Display.HasMarker {
			return tab.Display.Original
		}
		return tab.Display.Visible
	}

	if tab.Display.HasMarker {
		return tab.Display.Original
	}
	return tab.Display.Visible
}
