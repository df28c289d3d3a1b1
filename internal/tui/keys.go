package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the stepper key bindings
type keyMap struct {
	Decrement key.Binding
	Increment key.Binding
	Edit      key.Binding
	Commit    key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Edit, k.Commit, k.Copy, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrement, k.Increment},
		{k.Edit, k.Commit},
		{k.Copy, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Decrement: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-/↓", "decrement"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+/↑", "increment"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "tab", "e"),
			key.WithHelp("enter", "edit"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "tab", "esc"),
			key.WithHelp("enter", "commit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setEditing switches the bindings shown between browse and edit mode.
func (k *keyMap) setEditing(editing, editable bool) {
	k.Edit.SetEnabled(!editing && editable)
	k.Commit.SetEnabled(editing)
	k.Copy.SetEnabled(!editing)
	k.Quit.SetEnabled(!editing)
}
