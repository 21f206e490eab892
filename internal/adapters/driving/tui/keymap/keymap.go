// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the key help line.
	Help key.Binding

	// Search focuses the search box.
	Search key.Binding

	// Submit runs the typed search.
	Submit key.Binding

	// Cancel leaves the search box.
	Cancel key.Binding

	// Up moves the sidebar cursor up.
	Up key.Binding

	// Down moves the sidebar cursor down.
	Down key.Binding

	// Open selects the row under the cursor as if it were clicked.
	Open key.Binding

	// Toggle adds or removes the row's marker from the selection.
	Toggle key.Binding

	// SetSelection makes the row's marker the whole selection.
	SetSelection key.Binding

	// HistoryBack returns to the previous selection.
	HistoryBack key.Binding

	// HistoryForward moves to the next selection.
	HistoryForward key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		SetSelection: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "only this"),
		),
		HistoryBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		HistoryForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.HistoryBack, k.HistoryForward, k.Help, k.Quit}
}

// SearchHelp returns keybindings shown while typing a query.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns the full list of keybindings for the help line.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Toggle, k.SetSelection},
		{k.Search, k.HistoryBack, k.HistoryForward},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
