package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the field
type KeyMap struct {
	Clear  key.Binding
	Reveal key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Reveal}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear, k.Reveal},
	}
}

// DefaultKeyMap returns the default field bindings. The text input's own
// editing keys are left untouched.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide"),
		),
	}
}
