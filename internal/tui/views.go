package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/tui/components"
	"github.com/mmcdole/listman/internal/tui/styles"
)

// Page text
const (
	PageSubtitle   = "Manage your items efficiently"
	EmptyTitle     = "No items yet"
	EmptySubtitle  = "Get started by creating your first item"
	EmptyCallToAct = "Press n to create your first item"
)

// View renders the page, with the open dialog centred over it
func (m Model) View() string {
	page := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		styles.BodyStyle.Render(m.renderBody()),
		m.renderFooter(),
	)

	switch m.Dialog.(type) {
	case CreatingDialog, EditingDialog:
		return placeOverlay(page, m.Form.View(), m.Width, m.Height)
	case ConfirmingDeleteDialog:
		return placeOverlay(page, m.DeleteModal.View(), m.Width, m.Height)
	}
	return page
}

// placeOverlay splices fg into the centre of bg, keeping the bg cells on
// either side of each modal line.
func placeOverlay(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgW := lipgloss.Width(fg)

	x := max((width-fgW)/2, 0)
	y := max((height-len(fgLines))/2, 0)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		bgRow := bgLines[row]
		rowW := xansi.StringWidth(bgRow)

		left := xansi.Cut(bgRow, 0, x)
		if w := xansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if rowW > x+fgW {
			right = xansi.Cut(bgRow, x+fgW, rowW)
		}
		line += strings.Repeat(" ", max(fgW-xansi.StringWidth(line), 0))
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

func (m Model) renderHeader() string {
	return styles.HeaderStyle.Render(
		styles.TitleStyle.Render(m.Title) + "\n" +
			styles.SubtitleStyle.Render(PageSubtitle),
	)
}

func (m Model) renderBody() string {
	if m.Table.Len() == 0 && !m.Table.IsFiltering() {
		return renderEmptyState()
	}
	return m.Table.View()
}

func renderEmptyState() string {
	return styles.EmptyStateStyle.Render(
		styles.TitleStyle.Render(EmptyTitle) + "\n" +
			styles.SubtitleStyle.Render(EmptySubtitle) + "\n\n" +
			styles.ButtonStyle.Render(EmptyCallToAct),
	)
}

// renderFooter renders the status message on the left and key help on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	} else if !m.Loaded {
		left = styles.DimStyle.Render("Loading...")
	}

	right := m.Help.View(Keys)

	if m.Help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, " "+left, right)
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + right
}

// RenderSnapshot renders the collection as a static table for non-interactive output
func RenderSnapshot(items []domain.Item, loc *time.Location, showTime bool) string {
	const width = 100
	if len(items) == 0 {
		return EmptyTitle + "\n" + EmptySubtitle + "\n"
	}

	var b strings.Builder
	b.WriteString(components.RenderColumnHeader(width, showTime))
	b.WriteString("\n")
	for _, item := range items {
		row := components.ItemRow{Item: item}
		b.WriteString(strings.TrimRight(row.Render(components.RowView{
			Width:    width,
			Location: loc,
			ShowTime: showTime,
		}), " "))
		b.WriteString("\n")
	}
	return b.String()
}
