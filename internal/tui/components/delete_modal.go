package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/listman/internal/tui/styles"
)

// DeleteTarget identifies the item awaiting deletion
type DeleteTarget struct {
	ID    string
	Title string
}

// DeleteModal asks for confirmation before an item is removed
type DeleteModal struct {
	visible bool
	target  DeleteTarget
	width   int
}

// NewDeleteModal creates a new delete confirmation modal
func NewDeleteModal() DeleteModal {
	return DeleteModal{width: 50}
}

// Show displays the modal for the given item
func (m *DeleteModal) Show(id, title string) {
	m.visible = true
	m.target = DeleteTarget{ID: id, Title: title}
}

// Hide dismisses the modal and forgets the target
func (m *DeleteModal) Hide() {
	m.visible = false
	m.target = DeleteTarget{}
}

// IsVisible returns whether the modal is shown
func (m DeleteModal) IsVisible() bool {
	return m.visible
}

// Target returns the pending deletion
func (m DeleteModal) Target() DeleteTarget {
	return m.target
}

// SetWidth sets the modal width
func (m *DeleteModal) SetWidth(width int) {
	if width < 30 {
		width = 30
	}
	m.width = width
}

// Message returns the confirmation text
func (m DeleteModal) Message() string {
	if m.target.Title == "" {
		return "Are you sure you want to delete this item? This action cannot be undone."
	}
	return fmt.Sprintf("Are you sure you want to delete \"%s\"? This action cannot be undone.", m.target.Title)
}

// HandleKeyMsg processes a key press, returns (handled, confirmed).
// On confirm the target is returned before the modal resets.
func (m *DeleteModal) HandleKeyMsg(msg tea.KeyMsg) (handled bool, confirmed *DeleteTarget) {
	if !m.visible {
		return false, nil
	}

	switch {
	case key.Matches(msg, DeleteModalKeys.Confirm):
		target := m.target
		m.Hide()
		return true, &target
	case key.Matches(msg, DeleteModalKeys.Cancel):
		m.Hide()
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the delete confirmation modal
func (m DeleteModal) View() string {
	if !m.visible {
		return ""
	}

	inner := m.width - 6
	body := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Width(inner).
		Render(m.Message())

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.OutlineButtonStyle.Render("Cancel"),
		"  ",
		styles.DangerButtonStyle.Render("Delete"),
	)

	lines := []string{
		styles.ModalTitleStyle.Render("Delete Item"),
		body,
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons),
		"",
		styles.DimStyle.Render("y: Delete  n/Esc: Cancel"),
	}

	return styles.DangerModalStyle.
		Width(m.width).
		Render(strings.Join(lines, "\n"))
}
