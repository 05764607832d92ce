package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all key bindings for the application.
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	GoTab   key.Binding

	Rename   key.Binding
	Close    key.Binding
	SortTabs key.Binding

	// Scrolling
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding

	// Tab line width tuning
	GrowMax   key.Binding
	ShrinkMax key.Binding
	GrowMin   key.Binding
	ShrinkMin key.Binding

	ToggleNumbers key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding

	// Rename prompt
	ConfirmRename key.Binding
	CancelRename  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab/h", "prev tab"),
		),
		GoTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to tab"),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		SortTabs: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "sort tabs"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		GrowMax: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "wider tabs"),
		),
		ShrinkMax: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrower tabs"),
		),
		GrowMin: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "raise min width"),
		),
		ShrinkMin: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "lower min width"),
		),
		ToggleNumbers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "line numbers"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		ConfirmRename: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		CancelRename: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
