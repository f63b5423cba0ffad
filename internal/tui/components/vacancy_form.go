package components

import (
	"strings"

	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// VacancyInput is the editable part of a vacancy.
type VacancyInput struct {
	Title        string
	Department   string
	Location     string
	Requirements string
}

// Apply copies the input onto v.
func (in VacancyInput) Apply(v model.Vacancy) model.Vacancy {
	v.Title = in.Title
	v.Department = in.Department
	v.Location = in.Location
	v.Requirements = in.Requirements
	return v
}

var formLabels = []string{"Job Title", "Department", "Location", "Requirements"}

// VacancyForm creates or edits a vacancy.
type VacancyForm struct {
	theme        themes.Theme
	id           string
	err          string
	inputs       []textinput.Model
	requirements textarea.Model
	focus        int
	done         bool
	cancelled    bool
}

// NewVacancyForm creates an empty form for a new vacancy.
func NewVacancyForm(theme themes.Theme) VacancyForm {
	placeholders := []string{"e.g. Senior Frontend Developer", "e.g. Engineering", "e.g. Remote"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 80
		in.Width = 40
		in.Prompt = ""
		inputs[i] = in
	}

	req := textarea.New()
	req.Placeholder = "List the job requirements..."
	req.ShowLineNumbers = false
	req.SetWidth(44)
	req.SetHeight(4)

	f := VacancyForm{theme: theme, inputs: inputs, requirements: req}
	f.setFocus(0)
	return f
}

// EditVacancyForm creates a form prefilled from v.
func EditVacancyForm(v model.Vacancy, theme themes.Theme) VacancyForm {
	f := NewVacancyForm(theme)
	f.id = v.ID
	f.inputs[0].SetValue(v.Title)
	f.inputs[1].SetValue(v.Department)
	f.inputs[2].SetValue(v.Location)
	f.requirements.SetValue(v.Requirements)
	return f
}

// Editing returns the id of the vacancy being edited.
func (f VacancyForm) Editing() (string, bool) {
	return f.id, f.id != ""
}

// Done reports whether the form was submitted.
func (f VacancyForm) Done() bool {
	return f.done
}

// Cancelled reports whether the form was dismissed.
func (f VacancyForm) Cancelled() bool {
	return f.cancelled
}

// Value returns the trimmed field values.
func (f VacancyForm) Value() VacancyInput {
	return VacancyInput{
		Title:        strings.TrimSpace(f.inputs[0].Value()),
		Department:   strings.TrimSpace(f.inputs[1].Value()),
		Location:     strings.TrimSpace(f.inputs[2].Value()),
		Requirements: strings.TrimSpace(f.requirements.Value()),
	}
}

func (f *VacancyForm) setFocus(i int) tea.Cmd {
	f.focus = (i + len(formLabels)) % len(formLabels)
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.requirements.Blur()

	if f.focus < len(f.inputs) {
		return f.inputs[f.focus].Focus()
	}
	return f.requirements.Focus()
}

// Update handles messages.
func (f VacancyForm) Update(msg tea.Msg) (VacancyForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			f.cancelled = true
			return f, nil
		case "ctrl+s":
			return f.submit()
		case "tab":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab":
			return f, f.setFocus(f.focus - 1)
		case "enter":
			if f.focus < len(f.inputs) {
				return f, f.setFocus(f.focus + 1)
			}
		}
	}

	var cmd tea.Cmd
	if f.focus < len(f.inputs) {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	} else {
		f.requirements, cmd = f.requirements.Update(msg)
	}
	return f, cmd
}

func (f VacancyForm) submit() (VacancyForm, tea.Cmd) {
	v := f.Value()
	switch {
	case v.Title == "":
		f.err = "Job title is required"
		return f, f.setFocus(0)
	case v.Department == "":
		f.err = "Department is required"
		return f, f.setFocus(1)
	case v.Location == "":
		f.err = "Location is required"
		return f, f.setFocus(2)
	}
	f.err = ""
	f.done = true
	return f, nil
}

// View renders the form.
func (f VacancyForm) View() string {
	title := "Add New Job Vacancy"
	if _, editing := f.Editing(); editing {
		title = "Edit Job Vacancy"
	}

	lines := []string{f.theme.Title.Render(title)}
	for i, label := range formLabels {
		style := f.theme.Faint
		if i == f.focus {
			style = f.theme.Key
		}
		lines = append(lines, style.Render(label))
		if i < len(f.inputs) {
			lines = append(lines, f.inputs[i].View(), "")
		} else {
			lines = append(lines, f.requirements.View())
		}
	}

	if f.err != "" {
		lines = append(lines, "", f.theme.StatusError.Render(f.err))
	}
	lines = append(lines, "", f.theme.Faint.Render("[Tab] Next field  [Ctrl+S] Save  [Esc] Cancel"))

	return f.theme.Dialog.Width(52).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
