package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	AdvanceFirst  key.Binding
	AdvanceSecond key.Binding
	AdvanceBoth   key.Binding
	Reset         key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AdvanceFirst: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "next #1"),
		),
		AdvanceSecond: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next #2"),
		),
		AdvanceBoth: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "next both"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AdvanceFirst, k.AdvanceSecond, k.AdvanceBoth, k.Reset, k.Quit}
}
