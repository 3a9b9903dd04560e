package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for jumptree.
type KeyMap struct {
	// Navigation
	Jump key.Binding
	Back key.Binding

	// Panel
	TogglePanel key.Binding
	Pin         key.Binding
	Unpin       key.Binding

	// Actions
	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys("o", "]"),
			key.WithHelp("o", "jump to symbol"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "H", "ctrl+o"),
			key.WithHelp("b", "jump back"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("h", "ctrl+h"),
			key.WithHelp("h", "pin/unpin history panel"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin current symbol"),
		),
		Unpin: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "unpin current symbol"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
