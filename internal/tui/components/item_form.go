package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/listman/internal/domain"
	"github.com/mmcdole/listman/internal/tui/styles"
)

// FormMode selects between creating a new item and editing an existing one
type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

// DialogTitle returns the heading shown at the top of the form
func (m FormMode) DialogTitle() string {
	if m == FormModeEdit {
		return "Edit Item"
	}
	return "Create New Item"
}

// SubmitLabel returns the label of the submit button
func (m FormMode) SubmitLabel() string {
	if m == FormModeEdit {
		return "Update"
	}
	return "Create"
}

// FormAction is what the form asks its owner to do after a message
type FormAction int

const (
	FormActionNone   FormAction = iota
	FormActionSubmit            // Draft holds trimmed, validated values
	FormActionCancel
)

// FormResult is returned from ItemForm.Update
type FormResult struct {
	Action FormAction
	Draft  domain.Draft
}

const (
	fieldTitle = iota
	fieldSubtitle
	fieldCount
)

var fieldNames = [fieldCount]string{domain.FieldTitle, domain.FieldSubtitle}

// ItemForm is the modal used to create or edit an item
type ItemForm struct {
	visible bool
	mode    FormMode
	inputs  [fieldCount]textinput.Model
	focus   int
	errs    [fieldCount]string
	width   int

	// Pre-filled values are returned verbatim until the field is edited,
	// since textinput rewrites tabs and newlines on SetValue.
	initial [fieldCount]string
	touched [fieldCount]bool
}

// NewItemForm creates a new, hidden item form
func NewItemForm() ItemForm {
	f := ItemForm{width: 50}
	placeholders := [fieldCount]string{"Enter title", "Enter subtitle"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = "> "
		ti.CharLimit = 0
		ti.Width = f.width - 8
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		f.inputs[i] = ti
	}
	return f
}

// Show opens the form. A nil initial item means create mode; otherwise the
// inputs are pre-filled from initial.
func (f *ItemForm) Show(mode FormMode, initial *domain.Item) tea.Cmd {
	f.reset()
	f.visible = true
	f.mode = mode
	if initial != nil {
		f.initial = [fieldCount]string{initial.Title, initial.Subtitle}
		f.inputs[fieldTitle].SetValue(initial.Title)
		f.inputs[fieldSubtitle].SetValue(initial.Subtitle)
		f.inputs[fieldTitle].CursorEnd()
		f.inputs[fieldSubtitle].CursorEnd()
	}
	return f.setFocus(fieldTitle)
}

// Hide dismisses the form and drops any typed text and errors
func (f *ItemForm) Hide() {
	f.visible = false
	f.reset()
}

func (f *ItemForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldTitle
	f.errs = [fieldCount]string{}
	f.initial = [fieldCount]string{}
	f.touched = [fieldCount]bool{}
}

// IsVisible returns whether the form is shown
func (f ItemForm) IsVisible() bool {
	return f.visible
}

// Mode returns the current form mode
func (f ItemForm) Mode() FormMode {
	return f.mode
}

// Values returns the raw, untrimmed input values
func (f ItemForm) Values() domain.Draft {
	return domain.Draft{
		Title:    f.value(fieldTitle),
		Subtitle: f.value(fieldSubtitle),
	}
}

func (f ItemForm) value(field int) string {
	if !f.touched[field] {
		return f.initial[field]
	}
	return f.inputs[field].Value()
}

// FieldError returns the validation message for field ("" when none)
func (f ItemForm) FieldError(field string) string {
	for i, name := range fieldNames {
		if name == field {
			return f.errs[i]
		}
	}
	return ""
}

// SetWidth sets the modal width
func (f *ItemForm) SetWidth(width int) {
	if width < 30 {
		width = 30
	}
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = width - 8
	}
}

func (f *ItemForm) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == field {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// submit validates the inputs. Failing fields get their message and the
// form stays open.
func (f *ItemForm) submit() FormResult {
	draft := f.Values()
	if errs := draft.Validate(); errs != nil {
		for i, name := range fieldNames {
			f.errs[i] = errs[name]
		}
		if f.errs[fieldTitle] != "" {
			f.setFocus(fieldTitle)
		} else {
			f.setFocus(fieldSubtitle)
		}
		return FormResult{Action: FormActionNone}
	}
	f.Hide()
	return FormResult{Action: FormActionSubmit, Draft: draft.Normalize()}
}

// Update handles input events
func (f ItemForm) Update(msg tea.Msg) (ItemForm, tea.Cmd, FormResult) {
	if !f.visible {
		return f, nil, FormResult{}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ItemFormKeys.Cancel):
			f.Hide()
			return f, nil, FormResult{Action: FormActionCancel}
		case key.Matches(keyMsg, ItemFormKeys.Submit):
			res := f.submit()
			return f, nil, res
		case key.Matches(keyMsg, ItemFormKeys.Next):
			cmd := f.setFocus((f.focus + 1) % fieldCount)
			return f, cmd, FormResult{}
		case key.Matches(keyMsg, ItemFormKeys.Prev):
			cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, cmd, FormResult{}
		}
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	// Editing a field clears only that field's error
	if f.inputs[f.focus].Value() != before {
		f.touched[f.focus] = true
		f.errs[f.focus] = ""
	}
	return f, cmd, FormResult{}
}

// View renders the form modal
func (f ItemForm) View() string {
	if !f.visible {
		return ""
	}

	inner := f.width - 6
	labels := [fieldCount]string{"Title", "Subtitle"}

	var lines []string
	lines = append(lines, styles.ModalTitleStyle.Render(f.mode.DialogTitle()))

	for i := range f.inputs {
		label := styles.LabelStyle.Render(labels[i])
		if i == f.focus {
			label = styles.AccentStyle.Bold(true).Render(labels[i])
		}
		lines = append(lines, label)

		borderColor := styles.DimGray
		if f.errs[i] != "" {
			borderColor = styles.Red
		} else if i == f.focus {
			borderColor = styles.Indigo
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(borderColor).
			Width(inner - 2).
			Render(f.inputs[i].View())
		lines = append(lines, box)

		if msg := f.errs[i]; msg != "" {
			lines = append(lines, styles.ErrorStyle.Render(msg))
		}
		lines = append(lines, "")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.OutlineButtonStyle.Render("Cancel"),
		"  ",
		styles.ButtonStyle.Render(f.mode.SubmitLabel()),
	)
	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons))
	lines = append(lines, "")
	lines = append(lines, styles.DimStyle.Render("Tab: Next field  Enter: "+f.mode.SubmitLabel()+"  Esc: Cancel"))

	return styles.ModalStyle.
		Width(f.width).
		Render(strings.Join(lines, "\n"))
}
