package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/tui/styles"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

// FormatDate renders a creation date for display in loc
func FormatDate(t time.Time, loc *time.Location, showTime bool) string {
	if loc == nil {
		loc = time.Local
	}
	if showTime {
		return t.In(loc).Format(dateTimeLayout)
	}
	return t.In(loc).Format(dateLayout)
}

// ItemRow renders one item and forwards row actions to its owner.
// It holds no state of its own.
type ItemRow struct {
	Item     domain.Item
	OnEdit   func(domain.Item) tea.Cmd
	OnDelete func(id string) tea.Cmd
}

// Edit invokes the edit callback with the row's item
func (r ItemRow) Edit() tea.Cmd {
	if r.OnEdit == nil {
		return nil
	}
	return r.OnEdit(r.Item)
}

// Delete invokes the delete callback with the row's item id
func (r ItemRow) Delete() tea.Cmd {
	if r.OnDelete == nil {
		return nil
	}
	return r.OnDelete(r.Item.ID)
}

// ColumnWidths splits the available row width into title, subtitle and date columns
type ColumnWidths struct {
	Title    int
	Subtitle int
	Date     int
}

// ComputeColumnWidths sizes columns for a row of the given width
func ComputeColumnWidths(width int, showTime bool) ColumnWidths {
	date := len(dateLayout) + 1
	if showTime {
		date = len(dateTimeLayout) + 1
	}
	// 2 for row margins, 4 for column gaps
	rest := width - 2 - 4 - date
	if rest < 10 {
		rest = 10
	}
	title := rest * 2 / 5
	return ColumnWidths{
		Title:    title,
		Subtitle: rest - title,
		Date:     date,
	}
}

// RowView carries per-render options
type RowView struct {
	Width    int
	Selected bool
	Location *time.Location
	ShowTime bool
	// Title rune positions to highlight, from the filter
	Matched []int
}

// Render draws the row as a single line
func (r ItemRow) Render(v RowView) string {
	cols := ComputeColumnWidths(v.Width, v.ShowTime)

	titleFg := styles.White
	subFg := styles.LightGray
	dateFg := styles.DimGray

	parts := make([]styles.RowPart, 0, 8)
	if len(v.Matched) > 0 {
		parts = append(parts, highlightParts(styles.Pad(r.Item.Title, cols.Title), v.Matched, titleFg)...)
	} else {
		parts = append(parts, styles.RowPart{Text: styles.Pad(r.Item.Title, cols.Title), Foreground: &titleFg, Bold: true})
	}
	parts = append(parts,
		styles.RowPart{Text: "  "},
		styles.RowPart{Text: styles.Pad(r.Item.Subtitle, cols.Subtitle), Foreground: &subFg},
		styles.RowPart{Text: "  "},
		styles.RowPart{Text: FormatDate(r.Item.DateCreated, v.Location, v.ShowTime), Foreground: &dateFg},
	)

	return styles.RenderListRow(parts, v.Selected, v.Width)
}

// highlightParts splits text into runs, bolding the matched rune positions
func highlightParts(text string, matched []int, fg lipgloss.Color) []styles.RowPart {
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	accent := styles.Indigo

	var parts []styles.RowPart
	var run []rune
	runHit := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runHit {
			parts = append(parts, styles.RowPart{Text: string(run), Foreground: &accent, Bold: true})
		} else {
			parts = append(parts, styles.RowPart{Text: string(run), Foreground: &fg, Bold: true})
		}
		run = run[:0]
	}
	for i, r := range []rune(text) {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return parts
}

// RenderColumnHeader draws the table's column header line
func RenderColumnHeader(width int, showTime bool) string {
	cols := ComputeColumnWidths(width, showTime)
	line := " " + styles.Pad("Title", cols.Title) + "  " +
		styles.Pad("Subtitle", cols.Subtitle) + "  " +
		styles.Pad("Date Created", cols.Date)
	return styles.ColumnHeaderStyle.Render(line)
}
