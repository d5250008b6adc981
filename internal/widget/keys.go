package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the widget handles itself. Everything
// else goes to the text input.
type KeyMap struct {
	Swap key.Binding // Reverse conversion direction.
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Swap: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "swap"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "close"),
	),
}

// ShortHelp returns bindings for the help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Swap, k.Quit}
}
