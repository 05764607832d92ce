package tabline

import "strings"

// ellipsis is the single character appended to a truncated label.
const ellipsis = "…"

// DisplayName is a padded tab label together with the original label it was
// padded from.
//
// Visible is the behavioral source of truth: padding is realized as literal
// repeated spaces, not a "treat as N columns" directive, so a recomputation
// that changes only the padding count still produces a different string and
// forces hosts that cache rendered text to redraw. Columns records the width
// the string was computed for; it is informational only, for renderers that
// can display a fixed character at a variable width.
//
// Original is the marker that makes recomputation idempotent: it carries the
// true, unpadded label through any number of re-paddings. HasMarker records
// whether the marker is present at all — the empty string is a legitimate
// label, so Original alone cannot distinguish "padded from an empty label"
// from "plain text that has never been through PadLabel".
type DisplayName struct {
	Visible   string
	Original  string
	HasMarker bool
	Columns   int
}

// AllocateWidth returns the target width in columns for each tab when
// tabCount tabs share totalWidth columns. The shared width (minus the fixed
// overhead, floored at 1) is divided evenly, clamped into
// [MinWidth, MaxWidth], and the per-tab overhead is subtracted.
//
// The result may be zero or negative when the overheads are misconfigured
// relative to the bounds; PadLabel degrades gracefully on such targets.
// A tabCount below 1 is treated as 1.
func AllocateWidth(totalWidth, tabCount int, cfg Config) int {
	if tabCount < 1 {
		tabCount = 1
	}

	available := totalWidth - cfg.FixedOverhead
	if available < 1 {
		available = 1
	}

	computed := available / tabCount
	if computed < cfg.MinWidth {
		computed = cfg.MinWidth
	} else if computed > cfg.MaxWidth {
		computed = cfg.MaxWidth
	}

	return computed - cfg.PerTabOverhead
}

// PadLabel fits label into target columns. Each character is assumed to
// occupy exactly one display column, so lengths are measured in runes.
//
// A label that cannot fit with one mandatory padding column on each side
// (len+2 > target) is truncated: one leading pad column, the label cut to
// max(target-2, 0) runes, then an ellipsis. Otherwise the label is centered
// with spaces, the right side absorbing the odd column. In both cases the
// leading padding carries the original label so a later recomputation can
// recover it.
//
// PadLabel never panics; for degenerate targets (0, negative) the result is
// a best-effort minimal string rather than an exact-width one.
func PadLabel(label string, target int) DisplayName {
	runes := []rune(label)

	if len(runes)+2 > target {
		keep := target - 2
		if keep < 0 {
			keep = 0
		}
		return DisplayName{
			Visible:   " " + string(runes[:keep]) + ellipsis,
			Original:  label,
			HasMarker: true,
			Columns:   target,
		}
	}

	pad := target - len(runes)
	left := pad / 2
	right := pad - left

	return DisplayName{
		Visible:   strings.Repeat(" ", left) + label + strings.Repeat(" ", right),
		Original:  label,
		HasMarker: true,
		Columns:   target,
	}
}
