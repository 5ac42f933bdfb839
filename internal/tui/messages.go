package tui

import (
	"github.com/mmcdole/listman/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ItemsLoadedMsg signals that the persisted collection has been read
type ItemsLoadedMsg struct {
	Items []domain.Item
}

// EditRequestedMsg is emitted by a row when its edit action fires
type EditRequestedMsg struct {
	Item domain.Item
}

// DeleteRequestedMsg is emitted by a row when its delete action fires
type DeleteRequestedMsg struct {
	ID string
}

// ClearStatusMsg clears the status bar message if it is still the one numbered Seq
type ClearStatusMsg struct {
	Seq int
}
