package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/listman/internal/tui/styles"
)

// Layout constants
const (
	MinBodyWidth = 40
	MinTableRows = 5
)

// updateLayout sizes the table and dialogs for the current terminal
func (m *Model) updateLayout() {
	bodyW, bodyH := m.bodySize()
	m.Table.SetSize(bodyW, bodyH)

	modalW := m.Width * 2 / 3
	if modalW > 70 {
		modalW = 70
	}
	m.Form.SetWidth(modalW)
	m.DeleteModal.SetWidth(modalW)
	m.Help.Width = m.Width
}

// bodySize returns the space left for the table after header and footer
func (m Model) bodySize() (int, int) {
	frameW, frameH := styles.BodyStyle.GetFrameSize()
	w := m.Width - frameW
	if w < MinBodyWidth {
		w = MinBodyWidth
	}
	h := m.Height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter()) - frameH
	if h < MinTableRows {
		h = MinTableRows
	}
	return w, h
}
