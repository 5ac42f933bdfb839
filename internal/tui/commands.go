package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/service"
)

// Command factories for async operations

// LoadItemsCmd reads the persisted collection
func LoadItemsCmd(svc *service.ItemService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		items, err := svc.Load(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading items"}
		}
		return ItemsLoadedMsg{Items: items}
	}
}

// EditRequestedCmd asks the page to open the edit form for item
func EditRequestedCmd(item domain.Item) tea.Cmd {
	return func() tea.Msg {
		return EditRequestedMsg{Item: item}
	}
}

// DeleteRequestedCmd asks the page to confirm deletion of id
func DeleteRequestedCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return DeleteRequestedMsg{ID: id}
	}
}

// ClearStatusCmd returns a command that clears status seq after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
