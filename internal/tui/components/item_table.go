package components

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/tui/styles"
	sfuzzy "github.com/sahilm/fuzzy"
)

// Lines the table reserves around its rows
const (
	tableHeaderLines = 1 // column header
	scrollLines      = 2 // "↑ more" / "↓ more"
)

// titleSource implements sahilm/fuzzy.Source over lowercased item titles
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int            { return len(s) }

// ItemTable is a scrollable list of item rows with an optional filter
type ItemTable struct {
	items []domain.Item

	onEdit   func(domain.Item) tea.Cmd
	onDelete func(id string) tea.Cmd

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	// Date display
	location *time.Location
	showTime bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int         // indices into items, nil when unfiltered
	matched      map[int][]int // item index -> title rune positions
}

// NewItemTable creates a table whose rows report edit and delete through the callbacks
func NewItemTable(onEdit func(domain.Item) tea.Cmd, onDelete func(id string) tea.Cmd) *ItemTable {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ItemTable{
		onEdit:      onEdit,
		onDelete:    onDelete,
		location:    time.Local,
		showTime:    true,
		filterInput: ti,
	}
}

// SetItems replaces the displayed rows. The cursor is kept where possible
// and an active filter is re-applied.
func (t *ItemTable) SetItems(items []domain.Item) {
	t.items = items
	if t.filterActive {
		t.applyFilter(false)
	}
	t.clampCursor()
}

// SetSize sets the outer dimensions of the table
func (t *ItemTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.recalcMaxVisible()
	t.ensureVisible()
}

// SetDateFormat sets the location and time display used for the date column
func (t *ItemTable) SetDateFormat(loc *time.Location, showTime bool) {
	if loc == nil {
		loc = time.Local
	}
	t.location = loc
	t.showTime = showTime
}

// Len returns the number of visible rows after filtering
func (t *ItemTable) Len() int {
	if t.filteredIdx != nil {
		return len(t.filteredIdx)
	}
	return len(t.items)
}

// Cursor returns the selected row position
func (t *ItemTable) Cursor() int {
	return t.cursor
}

// Row returns the row at visible position i
func (t *ItemTable) Row(i int) (ItemRow, bool) {
	if i < 0 || i >= t.Len() {
		return ItemRow{}, false
	}
	return ItemRow{
		Item:     t.items[t.mapIndex(i)],
		OnEdit:   t.onEdit,
		OnDelete: t.onDelete,
	}, true
}

// Selected returns the item under the cursor
func (t *ItemTable) Selected() (domain.Item, bool) {
	row, ok := t.Row(t.cursor)
	return row.Item, ok
}

// IsFiltering returns true if filter mode is active
func (t *ItemTable) IsFiltering() bool {
	return t.filterActive
}

// IsFilterTyping returns true if the filter input has focus
func (t *ItemTable) IsFilterTyping() bool {
	return t.filterActive && t.filterInput.Focused()
}

// Update handles navigation, filtering and row actions
func (t *ItemTable) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if t.IsFilterTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, ItemTableKeys.Escape):
				t.clearFilter()
				return nil
			case key.Matches(keyMsg, ItemTableKeys.Enter):
				t.filterInput.Blur()
				return nil
			case keyMsg.Type == tea.KeyBackspace && t.filterInput.Value() == "":
				t.clearFilter()
				return nil
			}
		}
		var cmd tea.Cmd
		t.filterInput, cmd = t.filterInput.Update(msg)
		t.applyFilter(true)
		return cmd
	}

	if !isKey {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ItemTableKeys.Filter):
		t.filterActive = true
		t.recalcMaxVisible()
		return t.filterInput.Focus()
	case t.filterActive && key.Matches(keyMsg, ItemTableKeys.Escape):
		t.clearFilter()
		return nil
	}

	count := t.Len()
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ItemTableKeys.Down):
		if t.cursor < count-1 {
			t.cursor++
			t.ensureVisible()
		}
	case key.Matches(keyMsg, ItemTableKeys.Up):
		if t.cursor > 0 {
			t.cursor--
			t.ensureVisible()
		}
	case key.Matches(keyMsg, ItemTableKeys.Home):
		t.cursor = 0
		t.offset = 0
	case key.Matches(keyMsg, ItemTableKeys.End):
		t.cursor = count - 1
		t.ensureVisible()
	case key.Matches(keyMsg, ItemTableKeys.Edit):
		if row, ok := t.Row(t.cursor); ok {
			return row.Edit()
		}
	case key.Matches(keyMsg, ItemTableKeys.Delete):
		if row, ok := t.Row(t.cursor); ok {
			return row.Delete()
		}
	}
	return nil
}

// View renders the bordered table
func (t *ItemTable) View() string {
	frameW, frameH := styles.TableBorder.GetFrameSize()
	innerW := t.width - frameW
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{RenderColumnHeader(innerW, t.showTime)}

	count := t.Len()
	end := t.offset + t.maxVisible
	if end > count {
		end = count
	}

	header := " "
	if t.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	lines = append(lines, header)

	if count == 0 {
		lines = append(lines, styles.DimStyle.Render(" No matches"))
	}
	for i := t.offset; i < end; i++ {
		row, _ := t.Row(i)
		lines = append(lines, row.Render(RowView{
			Width:    innerW,
			Selected: i == t.cursor,
			Location: t.location,
			ShowTime: t.showTime,
			Matched:  t.matched[t.mapIndex(i)],
		}))
	}

	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}
	lines = append(lines, footer)

	if t.filterActive {
		lines = append(lines, t.renderFilterBar())
	}

	style := styles.TableBorder.Width(innerW)
	if t.height > 0 {
		style = style.Height(t.height - frameH)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (t *ItemTable) renderFilterBar() string {
	count := styles.DimStyle.Render(fmt.Sprintf(" %d/%d", t.Len(), len(t.items)))
	return t.filterInput.View() + count
}

// Internal methods

func (t *ItemTable) recalcMaxVisible() {
	_, frameH := styles.TableBorder.GetFrameSize()
	t.maxVisible = t.height - frameH - tableHeaderLines - scrollLines
	if t.filterActive {
		t.maxVisible--
	}
	if t.maxVisible < 1 {
		t.maxVisible = 1
	}
}

func (t *ItemTable) ensureVisible() {
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
}

func (t *ItemTable) clampCursor() {
	count := t.Len()
	if t.cursor >= count {
		t.cursor = count - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.offset > t.cursor {
		t.offset = t.cursor
	}
	t.ensureVisible()
}

func (t *ItemTable) mapIndex(i int) int {
	if t.filteredIdx != nil && i < len(t.filteredIdx) {
		return t.filteredIdx[i]
	}
	return i
}

func (t *ItemTable) clearFilter() {
	t.filterActive = false
	t.filteredIdx = nil
	t.matched = nil
	t.filterInput.SetValue("")
	t.filterInput.Blur()
	t.recalcMaxVisible()
	t.clampCursor()
}

// applyFilter ranks titles first, then appends items whose subtitle alone matches
func (t *ItemTable) applyFilter(resetCursor bool) {
	query := strings.ToLower(strings.TrimSpace(t.filterInput.Value()))
	if query == "" {
		t.filteredIdx = nil
		t.matched = nil
		if resetCursor {
			t.cursor, t.offset = 0, 0
		}
		return
	}

	titles := make(titleSource, len(t.items))
	for i, item := range t.items {
		titles[i] = strings.ToLower(item.Title)
	}

	matches := sfuzzy.FindFrom(query, titles)
	t.filteredIdx = make([]int, 0, len(matches))
	t.matched = make(map[int][]int, len(matches))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		t.filteredIdx = append(t.filteredIdx, m.Index)
		t.matched[m.Index] = runePositions(titles[m.Index], m.MatchedIndexes)
		seen[m.Index] = true
	}

	for i, item := range t.items {
		if !seen[i] && fuzzy.MatchFold(query, item.Subtitle) {
			t.filteredIdx = append(t.filteredIdx, i)
		}
	}

	if resetCursor {
		t.cursor, t.offset = 0, 0
	}
}

// runePositions converts byte offsets into rune positions within s
func runePositions(s string, byteIdx []int) []int {
	out := make([]int, 0, len(byteIdx))
	for _, b := range byteIdx {
		if b <= len(s) {
			out = append(out, utf8.RuneCountInString(s[:b]))
		}
	}
	return out
}
