package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/listman/internal/domain"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		loc      *time.Location
		showTime bool
		want     string
	}{
		{"date only", time.UTC, false, "Jan 1, 2024"},
		{"with time", time.UTC, true, "Jan 1, 2024, 12:00 AM"},
		{"afternoon", time.FixedZone("UTC+15", 15*3600), true, "Jan 1, 2024, 03:00 PM"},
		{"earlier zone", time.FixedZone("UTC-5", -5*3600), false, "Dec 31, 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(ts, tt.loc, tt.showTime); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemRow_Callbacks(t *testing.T) {
	item := domain.Item{ID: "7", Title: "T", Subtitle: "S"}
	var edited domain.Item
	var deleted string
	row := ItemRow{
		Item:     item,
		OnEdit:   func(it domain.Item) tea.Cmd { edited = it; return nil },
		OnDelete: func(id string) tea.Cmd { deleted = id; return nil },
	}

	row.Edit()
	row.Delete()
	if edited != item {
		t.Errorf("edit callback got %+v", edited)
	}
	if deleted != "7" {
		t.Errorf("delete callback got %q", deleted)
	}

	if (ItemRow{Item: item}).Edit() != nil {
		t.Errorf("row without callbacks must return nil")
	}
}

func TestItemRow_Render(t *testing.T) {
	row := ItemRow{Item: domain.Item{
		ID:          "1",
		Title:       "Saved",
		Subtitle:    "Sub",
		DateCreated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	out := row.Render(RowView{Width: 80, Location: time.UTC})
	for _, s := range []string{"Saved", "Sub", "Jan 1, 2024"} {
		if !strings.Contains(out, s) {
			t.Errorf("row missing %q: %q", s, out)
		}
	}
}

type tableRecorder struct {
	edited  []domain.Item
	deleted []string
}

func newTestTable(items []domain.Item) (*ItemTable, *tableRecorder) {
	rec := &tableRecorder{}
	tbl := NewItemTable(
		func(it domain.Item) tea.Cmd { rec.edited = append(rec.edited, it); return nil },
		func(id string) tea.Cmd { rec.deleted = append(rec.deleted, id); return nil },
	)
	tbl.SetSize(100, 20)
	tbl.SetDateFormat(time.UTC, false)
	tbl.SetItems(items)
	return tbl, rec
}

func tableItems() []domain.Item {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Item{
		{ID: "1", Title: "Buy milk", Subtitle: "Corner shop", DateCreated: ts},
		{ID: "2", Title: "Call mom", Subtitle: "Sunday", DateCreated: ts},
		{ID: "3", Title: "Taxes", Subtitle: "Send to accountant", DateCreated: ts},
	}
}

func TestItemTable_NavigationAndActions(t *testing.T) {
	tbl, rec := newTestTable(tableItems())

	tbl.Update(runes("j"))
	tbl.Update(runes("j"))
	tbl.Update(runes("j")) // clamped at bottom
	if tbl.Cursor() != 2 {
		t.Fatalf("cursor: got %d, want 2", tbl.Cursor())
	}

	tbl.Update(runes("e"))
	if len(rec.edited) != 1 || rec.edited[0].ID != "3" {
		t.Fatalf("edit: got %+v", rec.edited)
	}

	tbl.Update(runes("g"))
	tbl.Update(runes("x"))
	if len(rec.deleted) != 1 || rec.deleted[0] != "1" {
		t.Fatalf("delete: got %v", rec.deleted)
	}
}

func TestItemTable_SetItemsClampsCursor(t *testing.T) {
	tbl, _ := newTestTable(tableItems())
	tbl.Update(runes("G"))
	tbl.SetItems(tableItems()[:1])
	if sel, ok := tbl.Selected(); !ok || sel.ID != "1" {
		t.Fatalf("expected cursor clamped to remaining row, got %+v ok=%v", sel, ok)
	}

	tbl.SetItems(nil)
	if _, ok := tbl.Selected(); ok {
		t.Fatalf("empty table has no selection")
	}
}

func TestItemTable_Filter(t *testing.T) {
	tbl, rec := newTestTable(tableItems())
	tbl.Update(runes("/"))
	if !tbl.IsFilterTyping() {
		t.Fatalf("expected filter input to take focus")
	}

	for _, r := range "sund" {
		tbl.Update(runes(string(r)))
	}
	// "sund" only matches the subtitle "Sunday"
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 match, got %d", tbl.Len())
	}
	if sel, _ := tbl.Selected(); sel.ID != "2" {
		t.Fatalf("expected subtitle match, got %+v", sel)
	}

	tbl.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if tbl.IsFilterTyping() || !tbl.IsFiltering() {
		t.Fatalf("enter should accept the filter and keep it applied")
	}
	tbl.Update(runes("e"))
	if len(rec.edited) != 1 || rec.edited[0].ID != "2" {
		t.Fatalf("edit on filtered row: got %+v", rec.edited)
	}

	tbl.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if tbl.IsFiltering() || tbl.Len() != 3 {
		t.Fatalf("esc should clear the filter, len=%d", tbl.Len())
	}
}

func TestItemTable_FilterRanksTitles(t *testing.T) {
	tbl, _ := newTestTable(tableItems())
	tbl.Update(runes("/"))
	for _, r := range "tax" {
		tbl.Update(runes(string(r)))
	}
	if tbl.Len() == 0 {
		t.Fatalf("expected title match")
	}
	if sel, _ := tbl.Selected(); sel.ID != "3" {
		t.Fatalf("expected Taxes first, got %+v", sel)
	}
	if !strings.Contains(tbl.View(), "/") {
		t.Fatalf("filter bar should render")
	}
}

func TestItemTable_ViewHeader(t *testing.T) {
	tbl, _ := newTestTable(tableItems())
	view := tbl.View()
	for _, s := range []string{"Title", "Subtitle", "Date Created", "Buy milk", "Jan 1, 2024"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}
