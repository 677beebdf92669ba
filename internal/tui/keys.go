package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	// Widget
	Show      key.Binding
	FocusNext key.Binding
	Submit    key.Binding
	Back      key.Binding
	Copy      key.Binding
	Browse    key.Binding
	ForceQuit key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Show, k.FocusNext, k.Copy, k.Browse, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Show, k.FocusNext, k.Submit, k.Back},
		{k.Copy, k.Browse},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// inputHelp is the short help shown while the add-phrase input has focus.
func (k KeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.FocusNext, k.ForceQuit}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Show: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "show phrase"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add phrase"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy phrase"),
		),
		Browse: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list phrases"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
