package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDeleteModal_Confirm(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("y"), {Type: tea.KeyEnter}} {
		m := NewDeleteModal()
		m.Show("42", "Groceries")

		handled, target := m.HandleKeyMsg(k)
		if !handled || target == nil {
			t.Fatalf("%q: expected confirmation", k.String())
		}
		if target.ID != "42" || target.Title != "Groceries" {
			t.Fatalf("%q: wrong target %+v", k.String(), target)
		}
		if m.IsVisible() || m.Target() != (DeleteTarget{}) {
			t.Fatalf("%q: modal must reset after confirm", k.String())
		}
	}
}

func TestDeleteModal_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("n"), runes("q"), {Type: tea.KeyEsc}} {
		m := NewDeleteModal()
		m.Show("42", "Groceries")

		handled, target := m.HandleKeyMsg(k)
		if !handled || target != nil {
			t.Fatalf("%q: expected cancel without target", k.String())
		}
		if m.IsVisible() {
			t.Fatalf("%q: modal must hide on cancel", k.String())
		}
	}
}

func TestDeleteModal_ConsumesOtherKeys(t *testing.T) {
	m := NewDeleteModal()
	m.Show("1", "A")
	handled, target := m.HandleKeyMsg(runes("j"))
	if !handled || target != nil || !m.IsVisible() {
		t.Fatalf("unrelated key must be swallowed while open")
	}

	m.Hide()
	if handled, _ := m.HandleKeyMsg(runes("y")); handled {
		t.Fatalf("hidden modal must not handle keys")
	}
}

func TestDeleteModal_View(t *testing.T) {
	m := NewDeleteModal()
	m.SetWidth(90)
	if m.View() != "" {
		t.Fatalf("hidden modal renders nothing")
	}
	m.Show("1", "Groceries")
	want := `Are you sure you want to delete "Groceries"? This action cannot be undone.`
	if m.Message() != want {
		t.Fatalf("message: got %q", m.Message())
	}
	view := m.View()
	for _, s := range []string{"Delete Item", "Groceries", "Cancel", "Delete"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}
