package tabline

import (
	"strings"
	"testing"
)

func TestAllocateWidth(t *testing.T) {
	cfg := Config{MinWidth: 20, MaxWidth: 300, FixedOverhead: 1, PerTabOverhead: 1}

	tests := []struct {
		name  string
		width int
		tabs  int
		cfg   Config
		want  int
	}{
		// available=79, computed=26, within [20,300], minus per-tab 1
		{name: "even split", width: 80, tabs: 3, cfg: cfg, want: 25},
		{name: "single tab hits max", width: 80, tabs: 1, cfg: Config{MinWidth: 10, MaxWidth: 40, FixedOverhead: 2, PerTabOverhead: 1}, want: 39},
		{name: "many tabs hit min", width: 80, tabs: 20, cfg: cfg, want: 19},
		{name: "zero width clamps available to 1", width: 0, tabs: 1, cfg: cfg, want: 19},
		{name: "overhead exceeds width", width: 5, tabs: 2, cfg: Config{MinWidth: 1, MaxWidth: 300, FixedOverhead: 10, PerTabOverhead: 0}, want: 1},
		{name: "zero tabs treated as one", width: 80, tabs: 0, cfg: cfg, want: 78},
		// MinWidth 3, PerTabOverhead 5: target goes negative, passed through
		{name: "per-tab overhead above min", width: 10, tabs: 4, cfg: Config{MinWidth: 3, MaxWidth: 10, FixedOverhead: 0, PerTabOverhead: 5}, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateWidth(tt.width, tt.tabs, tt.cfg)
			if got != tt.want {
				t.Errorf("AllocateWidth(%d, %d, %+v) = %d, want %d", tt.width, tt.tabs, tt.cfg, got, tt.want)
			}
		})
	}
}

// When the unclamped split lands inside [MinWidth, MaxWidth], the per-tab
// width times the tab count plus the fixed overhead never exceeds the total
// width. Clamping deliberately breaks this: MinWidth wins over fitting.
func TestAllocateWidth_Conservation(t *testing.T) {
	cfg := Config{MinWidth: 4, MaxWidth: 60, FixedOverhead: 3, PerTabOverhead: 0}

	for width := 10; width <= 200; width += 7 {
		for tabs := 1; tabs <= 12; tabs++ {
			computed := (width - cfg.FixedOverhead) / tabs
			if computed < cfg.MinWidth || computed > cfg.MaxWidth {
				continue // clamped, conservation not promised
			}
			got := AllocateWidth(width, tabs, cfg)
			if got*tabs+cfg.FixedOverhead > width {
				t.Fatalf("AllocateWidth(%d, %d) = %d: %d tabs overflow width %d",
					width, tabs, got, tabs, width)
			}
		}
	}

	// The documented boundary: min width forces overflow on narrow screens.
	narrow := AllocateWidth(10, 8, cfg)
	if narrow != cfg.MinWidth {
		t.Fatalf("expected min clamp, got %d", narrow)
	}
	if narrow*8+cfg.FixedOverhead <= 10 {
		t.Fatal("expected clamped allocation to exceed total width")
	}
}

func TestPadLabel_Truncation(t *testing.T) {
	got := PadLabel("a-very-long-buffer-name.txt", 10)

	if got.Visible != " a-very-l…" {
		t.Errorf("Visible = %q, want %q", got.Visible, " a-very-l…")
	}
	if n := len([]rune(got.Visible)); n != 10 {
		t.Errorf("visible width = %d, want 10", n)
	}
	if !got.HasMarker || got.Original != "a-very-long-buffer-name.txt" {
		t.Errorf("marker = (%v, %q), want full label", got.HasMarker, got.Original)
	}
	if got.Columns != 10 {
		t.Errorf("Columns = %d, want 10", got.Columns)
	}
}

func TestPadLabel_SymmetricPadding(t *testing.T) {
	got := PadLabel("main.rs", 25)

	want := strings.Repeat(" ", 9) + "main.rs" + strings.Repeat(" ", 9)
	if got.Visible != want {
		t.Errorf("Visible = %q, want %q", got.Visible, want)
	}
	if !got.HasMarker || got.Original != "main.rs" {
		t.Errorf("marker = (%v, %q), want %q", got.HasMarker, got.Original, "main.rs")
	}
}

// The empty string is a valid label: padding it must still attach a marker,
// or the all-space result would be mistaken for a plain label and drift to
// a truncated form on the next recomputation.
func TestPadLabel_EmptyLabelCarriesMarker(t *testing.T) {
	got := PadLabel("", 25)

	if got.Visible != strings.Repeat(" ", 25) {
		t.Errorf("Visible = %q, want 25 spaces", got.Visible)
	}
	if !got.HasMarker {
		t.Fatal("expected a marker on a padded empty label")
	}
	if got.Original != "" {
		t.Errorf("Original = %q, want empty", got.Original)
	}

	again := PadLabel(got.Original, 25)
	if again.Visible != got.Visible {
		t.Errorf("re-pad drifted: %q then %q", got.Visible, again.Visible)
	}
}

// Truncation triggers iff len+2 > target; len+2 == target still pads.
func TestPadLabel_TruncationBoundary(t *testing.T) {
	label := "abcdef" // len 6

	atBoundary := PadLabel(label, 8) // 6+2 == 8: padding path
	if atBoundary.Visible != " abcdef " {
		t.Errorf("width 8: Visible = %q, want %q", atBoundary.Visible, " abcdef ")
	}

	below := PadLabel(label, 7) // 6+2 > 7: truncation path
	if below.Visible != " abcde…" {
		t.Errorf("width 7: Visible = %q, want %q", below.Visible, " abcde…")
	}
}

func TestPadLabel_PaddingSymmetry(t *testing.T) {
	for _, label := range []string{"", "a", "notes", "Приве́т", "main.go"} {
		runes := len([]rune(label))
		for target := runes + 2; target <= runes+11; target++ {
			got := PadLabel(label, target)

			left := len(got.Visible) - len(strings.TrimLeft(got.Visible, " "))
			right := len(got.Visible) - len(strings.TrimRight(got.Visible, " "))
			if label == "" {
				// an all-space result: charge everything to the left run
				left = len([]rune(got.Visible))
				right = 0
			}

			if left+runes+right != target {
				t.Fatalf("PadLabel(%q, %d): left(%d)+len(%d)+right(%d) != %d",
					label, target, left, runes, right, target)
			}
			if d := right - left; label != "" && (d < 0 || d > 1) {
				t.Fatalf("PadLabel(%q, %d): right-left = %d, want 0 or 1", label, target, d)
			}
		}
	}
}

func TestPadLabel_DegenerateWidths(t *testing.T) {
	for _, target := range []int{2, 1, 0, -5} {
		got := PadLabel("anything", target)
		if got.Visible != " …" {
			t.Errorf("PadLabel(target=%d).Visible = %q, want %q", target, got.Visible, " …")
		}
		if !got.HasMarker || got.Original != "anything" {
			t.Errorf("PadLabel(target=%d) marker = (%v, %q), want %q", target, got.HasMarker, got.Original, "anything")
		}
	}
}
