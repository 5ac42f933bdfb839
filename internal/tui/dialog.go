package tui

import "github.com/mmcdole/listman/internal/domain"

// Dialog is the page's modal state. Exactly one variant is active.
type Dialog interface {
	dialog()
}

// IdleDialog means no dialog is open
type IdleDialog struct{}

// CreatingDialog means the form is open for a new item
type CreatingDialog struct{}

// EditingDialog means the form is open for Item
type EditingDialog struct {
	Item domain.Item
}

// ConfirmingDeleteDialog means the delete confirmation is open for ID
type ConfirmingDeleteDialog struct {
	ID    string
	Title string
}

func (IdleDialog) dialog()             {}
func (CreatingDialog) dialog()         {}
func (EditingDialog) dialog()          {}
func (ConfirmingDeleteDialog) dialog() {}
