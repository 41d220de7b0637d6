package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// appKeyMap defines the application-level key bindings
type appKeyMap struct {
	NextFocus key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.Help, k.Quit},
	}
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// combinedKeyMap merges the app bindings with the focused widget's
type combinedKeyMap struct {
	app    appKeyMap
	widget help.KeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k combinedKeyMap) ShortHelp() []key.Binding {
	bindings := append([]key.Binding(nil), k.widget.ShortHelp()...)
	return append(bindings, k.app.ShortHelp()...)
}

// FullHelp returns keybindings for the expanded help view
func (k combinedKeyMap) FullHelp() [][]key.Binding {
	groups := append([][]key.Binding(nil), k.widget.FullHelp()...)
	return append(groups, k.app.FullHelp()...)
}
