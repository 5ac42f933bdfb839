package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mmcdole/listman/internal/tui/components"
)

// KeyMap defines the page-level key bindings
type KeyMap struct {
	New       key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	t := components.ItemTableKeys
	return []key.Binding{k.New, t.Edit, t.Delete, t.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	t := components.ItemTableKeys
	return [][]key.Binding{
		{t.Up, t.Down, t.Home, t.End},
		{k.New, t.Edit, t.Delete},
		{t.Filter, t.Escape, k.Help, k.Quit},
	}
}

// Keys is the package-level key map instance
var Keys = DefaultKeyMap()
