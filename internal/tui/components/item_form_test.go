package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/listman/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, f ItemForm, s string) ItemForm {
	t.Helper()
	for _, r := range s {
		f, _, _ = f.Update(runes(string(r)))
	}
	return f
}

func press(f ItemForm, k tea.KeyType) (ItemForm, FormResult) {
	f, _, res := f.Update(tea.KeyMsg{Type: k})
	return f, res
}

func TestItemForm_Modes(t *testing.T) {
	tests := []struct {
		mode      FormMode
		wantTitle string
		wantLabel string
	}{
		{FormModeCreate, "Create New Item", "Create"},
		{FormModeEdit, "Edit Item", "Update"},
	}
	for _, tt := range tests {
		f := NewItemForm()
		f.Show(tt.mode, nil)
		if f.Mode() != tt.mode {
			t.Fatalf("mode: got %v, want %v", f.Mode(), tt.mode)
		}
		view := f.View()
		if !strings.Contains(view, tt.wantTitle) || !strings.Contains(view, tt.wantLabel) {
			t.Errorf("view for mode %v missing %q/%q", tt.mode, tt.wantTitle, tt.wantLabel)
		}
	}
}

func TestItemForm_BlankSubmitShowsBothErrors(t *testing.T) {
	f := NewItemForm()
	f.Show(FormModeCreate, nil)

	f, res := press(f, tea.KeyEnter)
	if res.Action != FormActionNone {
		t.Fatalf("expected no action, got %v", res.Action)
	}
	if !f.IsVisible() {
		t.Fatalf("form must stay open after failed validation")
	}
	if got := f.FieldError(domain.FieldTitle); got != domain.MsgTitleRequired {
		t.Errorf("title error: got %q", got)
	}
	if got := f.FieldError(domain.FieldSubtitle); got != domain.MsgSubtitleRequired {
		t.Errorf("subtitle error: got %q", got)
	}
	view := f.View()
	if !strings.Contains(view, "Title is required") || !strings.Contains(view, "Subtitle is required") {
		t.Errorf("view must show both messages")
	}
}

func TestItemForm_WhitespaceIsBlank(t *testing.T) {
	f := NewItemForm()
	f.Show(FormModeCreate, nil)
	f = typeInto(t, f, "   ")
	f, _ = press(f, tea.KeyTab)
	f = typeInto(t, f, "Sub")

	f, res := press(f, tea.KeyEnter)
	if res.Action != FormActionNone {
		t.Fatalf("whitespace title must be rejected")
	}
	if f.FieldError(domain.FieldTitle) == "" {
		t.Errorf("expected title error")
	}
	if f.FieldError(domain.FieldSubtitle) != "" {
		t.Errorf("subtitle is valid, got %q", f.FieldError(domain.FieldSubtitle))
	}
}

func TestItemForm_EditClearsOnlyThatFieldError(t *testing.T) {
	f := NewItemForm()
	f.Show(FormModeCreate, nil)
	f, _ = press(f, tea.KeyEnter)

	// failed submit focuses the title
	f = typeInto(t, f, "a")

	if got := f.FieldError(domain.FieldTitle); got != "" {
		t.Errorf("title error should clear, got %q", got)
	}
	if got := f.FieldError(domain.FieldSubtitle); got != domain.MsgSubtitleRequired {
		t.Errorf("subtitle error should remain, got %q", got)
	}
}

func TestItemForm_SubmitTrims(t *testing.T) {
	f := NewItemForm()
	f.Show(FormModeCreate, nil)
	f = typeInto(t, f, "  Test Title  ")
	f, _ = press(f, tea.KeyTab)
	f = typeInto(t, f, "  Test Subtitle  ")

	f, res := press(f, tea.KeyEnter)
	if res.Action != FormActionSubmit {
		t.Fatalf("expected submit, got %v", res.Action)
	}
	want := domain.Draft{Title: "Test Title", Subtitle: "Test Subtitle"}
	if res.Draft != want {
		t.Fatalf("draft: got %+v, want %+v", res.Draft, want)
	}
	if f.IsVisible() {
		t.Fatalf("form must close after submit")
	}
}

func TestItemForm_CancelDiscards(t *testing.T) {
	f := NewItemForm()
	f.Show(FormModeCreate, nil)
	f = typeInto(t, f, "typed")
	f, _ = press(f, tea.KeyEnter)

	f, res := press(f, tea.KeyEsc)
	if res.Action != FormActionCancel {
		t.Fatalf("expected cancel, got %v", res.Action)
	}
	if f.IsVisible() {
		t.Fatalf("form must close on cancel")
	}

	f.Show(FormModeCreate, nil)
	if v := f.Values(); v.Title != "" || v.Subtitle != "" {
		t.Errorf("reopened form kept stale values: %+v", v)
	}
	if f.FieldError(domain.FieldTitle) != "" || f.FieldError(domain.FieldSubtitle) != "" {
		t.Errorf("reopened form kept stale errors")
	}
}

func TestItemForm_EditPrefills(t *testing.T) {
	item := domain.Item{ID: "1", Title: "Old", Subtitle: "Sub", DateCreated: time.Now()}
	f := NewItemForm()
	f.Show(FormModeEdit, &item)

	if v := f.Values(); v.Title != "Old" || v.Subtitle != "Sub" {
		t.Fatalf("expected pre-filled values, got %+v", v)
	}

	f = typeInto(t, f, "er")
	f, res := press(f, tea.KeyEnter)
	if res.Action != FormActionSubmit || res.Draft.Title != "Older" || res.Draft.Subtitle != "Sub" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestItemForm_HiddenIgnoresInput(t *testing.T) {
	f := NewItemForm()
	f, _, res := f.Update(runes("x"))
	if res.Action != FormActionNone || f.Values().Title != "" {
		t.Fatalf("hidden form must ignore input")
	}
}

func TestItemForm_EditKeepsUntouchedValues(t *testing.T) {
	long := strings.Repeat("a", 250)
	item := domain.Item{ID: "1", Title: long, Subtitle: "Sub\tTab"}
	f := NewItemForm()
	f.Show(FormModeEdit, &item)

	f, res := press(f, tea.KeyEnter)
	if res.Action != FormActionSubmit {
		t.Fatalf("expected submit, got %v", res.Action)
	}
	if res.Draft.Title != long {
		t.Fatalf("title changed without edit: len %d", len(res.Draft.Title))
	}
	if res.Draft.Subtitle != "Sub\tTab" {
		t.Fatalf("subtitle changed without edit: %q", res.Draft.Subtitle)
	}

	// editing one field leaves the other verbatim
	f.Show(FormModeEdit, &item)
	f, _ = press(f, tea.KeyTab)
	f = typeInto(t, f, "!")
	_, res = press(f, tea.KeyEnter)
	if res.Draft.Title != long || !strings.HasSuffix(res.Draft.Subtitle, "!") {
		t.Fatalf("unexpected draft %+v", res.Draft)
	}
}

func TestItemForm_NoLengthLimit(t *testing.T) {
	long := strings.Repeat("b", 250)
	f := NewItemForm()
	f.Show(FormModeCreate, nil)
	f = typeInto(t, f, long)
	f, _ = press(f, tea.KeyTab)
	f = typeInto(t, f, "S")

	_, res := press(f, tea.KeyEnter)
	if res.Action != FormActionSubmit || res.Draft.Title != long {
		t.Fatalf("typed title truncated: len %d", len(res.Draft.Title))
	}
}
