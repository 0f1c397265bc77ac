package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	More key.Binding
	Quit key.Binding
}

// ShortHelp - implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.More, k.Quit}
}

// FullHelp - implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		More: key.NewBinding(
			key.WithKeys("enter", " ", "m"),
			key.WithHelp("enter/m", "show more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
