package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the TUI
type keyMap struct {
	Process   key.Binding
	Copy      key.Binding
	Save      key.Binding
	Refresh   key.Binding
	FocusNext key.Binding
	Quit      key.Binding
}

// keys is the default set of key bindings
var keys = keyMap{
	Process: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "process"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy tf list"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save json"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "refresh browser"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
