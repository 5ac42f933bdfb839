package components

import "github.com/charmbracelet/bubbles/key"

// ItemTableKeyMap defines key bindings for table navigation and row actions
type ItemTableKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Escape key.Binding
	Enter  key.Binding
}

// DefaultItemTableKeyMap returns the default table key bindings
func DefaultItemTableKeyMap() ItemTableKeyMap {
	return ItemTableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
	}
}

// ItemFormKeyMap defines key bindings for the item form dialog
type ItemFormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultItemFormKeyMap returns the default form key bindings
func DefaultItemFormKeyMap() ItemFormKeyMap {
	return ItemFormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// DeleteModalKeyMap defines key bindings for the delete confirmation
type DeleteModalKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultDeleteModalKeyMap returns the default delete confirmation key bindings
func DefaultDeleteModalKeyMap() DeleteModalKeyMap {
	return DeleteModalKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc", "q"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// Package-level key map instances
var (
	ItemTableKeys   = DefaultItemTableKeyMap()
	ItemFormKeys    = DefaultItemFormKeyMap()
	DeleteModalKeys = DefaultDeleteModalKeyMap()
)
