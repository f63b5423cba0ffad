package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var requestActions = []ActionKey{
	{Key: "a", Label: "Accept", Action: model.ActionAccept},
	{Key: "r", Label: "Reject", Action: model.ActionReject},
}

// RequestsModel is the job request review screen.
type RequestsModel struct {
	screen ScreenModel[model.Application]
}

// NewRequestsModel creates the job requests screen.
func NewRequestsModel(applications []model.Application, theme themes.Theme) RequestsModel {
	list := NewListModel(admin.Requests(), applications, theme)
	screen := NewScreenModel(list, func(a model.Application) DetailDialog {
		return profileDialog(a, theme)
	}, theme, requestActions...)
	screen.list.SetHints("[Enter] Profile", "[a] Accept", "[r] Reject", "[s] Send SMS")
	return RequestsModel{screen: screen}
}

func profileDialog(a model.Application, theme themes.Theme) DetailDialog {
	avatar := lipgloss.NewStyle().
		Background(theme.Primary).
		Foreground(theme.Foreground).
		Bold(true).
		Padding(0, 1).
		Render(a.Applicant.Initial())
	header := lipgloss.JoinHorizontal(lipgloss.Center, avatar, " ",
		theme.Faint.Render("applied for "+a.JobTitle+" on "+a.AppliedAt))

	footer := actionFooter(model.ApplicationWorkflow, a.Status, requestActions)
	footer = strings.Replace(footer, "[Esc] Close", "[s] Send SMS  [Esc] Close", 1)

	return NewDetailDialog(a.Applicant.Name, []Detail{
		{Label: "Email", Value: a.Applicant.Email},
		{Label: "Phone", Value: a.Applicant.Phone},
		{Label: "Experience", Value: a.Applicant.Experience},
		{Label: "Education", Value: a.Applicant.Education},
		{Label: "Skills", Value: strings.Join(a.Applicant.Skills, ", ")},
		{Label: "Portfolio", Value: a.Applicant.Portfolio},
		{Label: "Availability", Value: a.Applicant.Availability},
		{Label: "Status", Value: admin.Capitalize(string(a.Status)), Style: badge(theme, a.Status)},
	}, theme).WithHeader(header).WithFooter(footer)
}

// List returns the underlying list.
func (m RequestsModel) List() ListModel[model.Application] {
	return m.screen.List()
}

// Records returns the screen's collection.
func (m RequestsModel) Records() []model.Application {
	return m.screen.Records()
}

// Capturing reports whether key presses belong to the search input or a dialog.
func (m RequestsModel) Capturing() bool {
	return m.screen.Capturing()
}

// DialogOpen reports whether the profile dialog is shown.
func (m RequestsModel) DialogOpen() bool {
	return m.screen.DialogOpen()
}

// Resize sets the space available to the screen.
func (m *RequestsModel) Resize(width, height int) {
	m.screen.Resize(width, height)
}

// Update handles messages.
func (m RequestsModel) Update(msg tea.Msg) (RequestsModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "s" && !m.screen.list.Searching() {
		a, ok := m.screen.list.Selected()
		if !ok {
			return m, Toast(ToastWarning, "No request selected")
		}
		return m, Toast(ToastInfo, fmt.Sprintf("SMS sent to %s (%s)", a.Applicant.Name, a.Applicant.Phone))
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

// View renders the screen.
func (m RequestsModel) View() string {
	return m.screen.View()
}
