package components

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var vacancyActions = []ActionKey{
	{Key: "t", Label: "Open/close", Action: model.ActionToggle},
}

// VacanciesModel is the job vacancy management screen.
type VacanciesModel struct {
	theme   themes.Theme
	clock   admin.Clock
	form    *VacancyForm
	confirm *ConfirmDialog
	newID   func() string
	target  string
	screen  ScreenModel[model.Vacancy]
}

// NewVacanciesModel creates the vacancies screen.
func NewVacanciesModel(vacancies []model.Vacancy, clock admin.Clock, theme themes.Theme) VacanciesModel {
	list := NewListModel(admin.Vacancies(), vacancies, theme)
	details := func(v model.Vacancy) DetailDialog {
		return NewDetailDialog(v.Title, []Detail{
			{Label: "Department", Value: v.Department},
			{Label: "Location", Value: v.Location},
			{Label: "Applicants", Value: strconv.Itoa(v.Applicants)},
			{Label: "Created", Value: v.CreatedAt},
			{Label: "Status", Value: admin.Capitalize(string(v.Status)), Style: badge(theme, v.Status)},
			{Label: "Requirements", Value: v.Requirements},
		}, theme).WithFooter("[t] Open/close  [Esc] Close")
	}
	screen := NewScreenModel(list, details, theme, vacancyActions...)
	screen.list.SetHints("[Enter] Details", "[n] New", "[e] Edit", "[d] Delete", "[t] Open/close")

	return VacanciesModel{
		theme:  theme,
		clock:  clock,
		newID:  uuid.NewString,
		screen: screen,
	}
}

// List returns the underlying list.
func (m VacanciesModel) List() ListModel[model.Vacancy] {
	return m.screen.List()
}

// Records returns the screen's collection.
func (m VacanciesModel) Records() []model.Vacancy {
	return m.screen.Records()
}

// Capturing reports whether key presses belong to an input or a dialog.
func (m VacanciesModel) Capturing() bool {
	return m.form != nil || m.confirm != nil || m.screen.Capturing()
}

// Resize sets the space available to the screen.
func (m *VacanciesModel) Resize(width, height int) {
	m.screen.Resize(width, height)
}

// Update handles messages.
func (m VacanciesModel) Update(msg tea.Msg) (VacanciesModel, tea.Cmd) {
	switch {
	case m.form != nil:
		return m.updateForm(msg)
	case m.confirm != nil:
		return m.updateConfirm(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok || m.screen.Capturing() {
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(msg)
		return m, cmd
	}

	switch k.String() {
	case "n":
		f := NewVacancyForm(m.theme)
		m.form = &f
		return m, textinput.Blink

	case "e":
		v, ok := m.screen.list.Selected()
		if !ok {
			return m, Toast(ToastWarning, "No vacancy selected")
		}
		f := EditVacancyForm(v, m.theme)
		m.form = &f
		return m, textinput.Blink

	case "d":
		v, ok := m.screen.list.Selected()
		if !ok {
			return m, Toast(ToastWarning, "No vacancy selected")
		}
		c := NewConfirmDialog(fmt.Sprintf("Delete the %q vacancy? This cannot be undone.", v.Title), m.theme)
		m.confirm = &c
		m.target = v.ID
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m VacanciesModel) updateForm(msg tea.Msg) (VacanciesModel, tea.Cmd) {
	f, cmd := m.form.Update(msg)
	switch {
	case f.Cancelled():
		m.form = nil
		return m, nil
	case !f.Done():
		m.form = &f
		return m, cmd
	}
	m.form = nil

	schema := m.screen.list.List().Schema
	records := m.screen.list.Records()
	in := f.Value()

	if id, editing := f.Editing(); editing {
		m.screen.list.SetRecords(schema.Update(records, id, in.Apply))
		return m, Toast(ToastSuccess, fmt.Sprintf("Vacancy %q updated", in.Title))
	}

	v := in.Apply(model.Vacancy{
		ID:         m.newID(),
		Status:     model.StatusActive,
		Applicants: 0,
		CreatedAt:  m.clock.Now().Format("2006-01-02"),
	})
	m.screen.list.SetRecords(append(slices.Clip(records), v))
	m.screen.list.SelectTab(string(model.StatusActive))
	return m, Toast(ToastSuccess, fmt.Sprintf("Vacancy %q created", v.Title))
}

func (m VacanciesModel) updateConfirm(msg tea.Msg) (VacanciesModel, tea.Cmd) {
	c, cmd := m.confirm.Update(msg)
	if !c.Done() {
		m.confirm = &c
		return m, cmd
	}
	m.confirm = nil

	if !c.Confirmed() {
		return m, nil
	}

	v, err := m.remove(m.target)
	if errors.Is(err, common.ErrNotFound) {
		return m, Toast(ToastError, "Vacancy no longer exists")
	}
	return m, Toast(ToastError, fmt.Sprintf("Vacancy %q deleted", v.Title))
}

// remove deletes the vacancy identified by id and returns it.
func (m *VacanciesModel) remove(id string) (model.Vacancy, error) {
	schema := m.screen.list.List().Schema
	records := m.screen.list.Records()

	v, ok := schema.Find(records, id)
	if !ok {
		return model.Vacancy{}, fmt.Errorf("%w: vacancy %q", common.ErrNotFound, id)
	}
	m.screen.list.SetRecords(schema.Remove(records, id))
	return v, nil
}

// View renders the screen, the form or the confirmation.
func (m VacanciesModel) View() string {
	w, h := m.screen.list.width, m.screen.list.height
	switch {
	case m.form != nil:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.form.View())
	case m.confirm != nil:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.confirm.View())
	default:
		return m.screen.View()
	}
}
