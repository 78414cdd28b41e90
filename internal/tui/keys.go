package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Complete  key.Binding // Complete selected task
	AddSimple key.Binding // Add a simple task
	AddTimed  key.Binding // Add a timed task

	// General
	Quit   key.Binding // Quit application
	Escape key.Binding // Cancel input
	Submit key.Binding // Submit input
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys("enter", " ", "c"),
			key.WithHelp("enter", "complete"),
		),
		AddSimple: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add simple"),
		),
		AddTimed: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "add timed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.AddSimple, k.AddTimed, k.Quit}
}
