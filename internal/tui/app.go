package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/service"
	"github.com/mmcdole/listman/internal/tui/components"
	"github.com/mmcdole/listman/internal/tui/styles"
)

// Options controls page presentation
type Options struct {
	Title    string
	Location *time.Location
	ShowTime bool
}

// Model is the main application model
type Model struct {
	Svc *service.ItemService

	// UI Components
	Table       *components.ItemTable
	Form        components.ItemForm
	DeleteModal components.DeleteModal
	Help        help.Model

	// Dialog state
	Dialog Dialog

	// Presentation
	Title string

	// Dimensions
	Width  int
	Height int

	// UI state
	Loaded      bool
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int // bumped per status so stale clears are ignored
}

// NewModel creates a new application model
func NewModel(svc *service.ItemService, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "List Management"
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	table := components.NewItemTable(EditRequestedCmd, DeleteRequestedCmd)
	table.SetDateFormat(opts.Location, opts.ShowTime)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		Svc:         svc,
		Table:       table,
		Form:        components.NewItemForm(),
		DeleteModal: components.NewDeleteModal(),
		Help:        h,
		Dialog:      IdleDialog{},
		Title:       opts.Title,
		Width:       100,
		Height:      30,
	}
	m.updateLayout()
	return m
}

// Init initializes the application. The first frame renders before the load runs.
func (m Model) Init() tea.Cmd {
	return LoadItemsCmd(m.Svc)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ItemsLoadedMsg:
		m.Loaded = true
		m.Table.SetItems(msg.Items)
		return m, nil

	case EditRequestedMsg:
		if !m.isIdle() || !m.Loaded {
			return m, nil
		}
		item := msg.Item
		m.Dialog = EditingDialog{Item: item}
		return m, m.Form.Show(components.FormModeEdit, &item)

	case DeleteRequestedMsg:
		if !m.isIdle() || !m.Loaded {
			return m, nil
		}
		item, ok := m.Svc.Get(msg.ID)
		if !ok {
			return m, nil
		}
		m.Dialog = ConfirmingDeleteDialog{ID: item.ID, Title: item.Title}
		m.DeleteModal.Show(item.ID, item.Title)
		return m, nil

	case ErrMsg:
		return m, m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Non-key messages (cursor blink) go to the open form
	if m.Form.IsVisible() {
		var cmd tea.Cmd
		m.Form, cmd, _ = m.Form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.Dialog.(type) {
	case CreatingDialog, EditingDialog:
		return m.handleFormKey(msg)
	case ConfirmingDeleteDialog:
		return m.handleDeleteKey(msg)
	}

	// Filter input swallows everything while typing
	if m.Table.IsFilterTyping() {
		return m, m.Table.Update(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil
	case key.Matches(msg, Keys.New):
		if !m.Loaded {
			return m, nil
		}
		m.Dialog = CreatingDialog{}
		return m, m.Form.Show(components.FormModeCreate, nil)
	}

	return m, m.Table.Update(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var res components.FormResult
	m.Form, cmd, res = m.Form.Update(msg)

	switch res.Action {
	case components.FormActionCancel:
		m.Dialog = IdleDialog{}
		return m, cmd
	case components.FormActionSubmit:
		dlg := m.Dialog
		m.Dialog = IdleDialog{}
		return m, tea.Batch(cmd, m.submit(dlg, res.Draft))
	}
	return m, cmd
}

// submit applies a validated draft for the dialog that produced it
func (m *Model) submit(dlg Dialog, draft domain.Draft) tea.Cmd {
	var (
		item domain.Item
		err  error
		verb string
	)
	switch d := dlg.(type) {
	case CreatingDialog:
		item, err = m.Svc.Create(draft)
		verb = "Created"
	case EditingDialog:
		var ok bool
		item, ok, err = m.Svc.Update(d.Item.ID, draft)
		if !ok && err == nil {
			m.refreshTable()
			return nil
		}
		verb = "Updated"
	default:
		return nil
	}

	m.refreshTable()
	if err != nil {
		return m.mutationFailed(err)
	}
	return m.setStatus(fmt.Sprintf("%s %q", verb, item.Title), false)
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled, target := m.DeleteModal.HandleKeyMsg(msg)
	if !handled {
		return m, nil
	}
	if m.DeleteModal.IsVisible() {
		return m, nil
	}

	m.Dialog = IdleDialog{}
	if target == nil {
		return m, nil
	}

	item, ok, err := m.Svc.Delete(target.ID)
	m.refreshTable()
	if err != nil {
		return m, m.mutationFailed(err)
	}
	if !ok {
		return m, nil
	}
	return m, m.setStatus(fmt.Sprintf("Deleted %q", item.Title), false)
}

func (m *Model) mutationFailed(err error) tea.Cmd {
	if errors.Is(err, domain.ErrNotLoaded) {
		return m.setStatus("Items are still loading", true)
	}
	return m.setStatus(err.Error(), true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	if isErr {
		return ClearStatusCmd(m.statusSeq, 5*time.Second)
	}
	return ClearStatusCmd(m.statusSeq, 3*time.Second)
}

func (m *Model) refreshTable() {
	m.Table.SetItems(m.Svc.Items())
}

func (m Model) isIdle() bool {
	_, ok := m.Dialog.(IdleDialog)
	return ok
}
