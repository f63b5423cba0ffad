package tui

import (
	"strings"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := m.renderScreen()
	if m.showHelp {
		content = m.renderHelp()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m Model) renderScreen() string {
	switch m.screen {
	case admin.ScreenDashboard:
		return m.dashboard.View()
	case admin.ScreenUsers:
		return m.users.View()
	case admin.ScreenComplaints:
		return m.complaints.View()
	case admin.ScreenReports:
		return m.reports.View()
	case admin.ScreenVacancies:
		return m.vacancies.View()
	case admin.ScreenRequests:
		return m.requests.View()
	case admin.ScreenSettings:
		return m.settings.View()
	default:
		return ""
	}
}

// renderSidebar renders the navigation column.
func (m Model) renderSidebar() string {
	lines := []string{m.theme.Title.Render("JobDesk Admin"), ""}
	for _, s := range admin.Screens() {
		if s == m.screen {
			lines = append(lines, m.theme.NavActive.Render(s.Title()))
		} else {
			lines = append(lines, m.theme.NavItem.Render(s.Title()))
		}
	}
	lines = append(lines, "", m.theme.Faint.Render("[ ] switch screens"))

	return m.theme.Sidebar.
		Width(sidebarWidth - 1).
		Height(max(m.height-3, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("JobDesk - Help"),
		"",
		m.help.View(m.keymap),
		"",
		m.theme.Faint.Render("Press ? or Esc to close help"),
	)

	return lipgloss.Place(
		max(m.width-sidebarWidth-2, 20),
		max(m.height-2, 8),
		lipgloss.Center,
		lipgloss.Center,
		m.theme.Dialog.Render(content),
	)
}

// renderStatusBar renders the bottom status bar: screen on the left, the
// latest toast in the middle, the help hint on the right.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(" " + m.screen.Title())
	right := m.theme.Faint.Render("? Help ")

	var center string
	if m.toast != nil {
		center = m.toastStyle(m.toast.Level).Render(m.toast.Text)
	}

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right), 2)
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
	return m.theme.StatusBar.
		Width(m.width).
		MaxWidth(m.width).
		Render(status)
}

func (m Model) toastStyle(level components.ToastLevel) lipgloss.Style {
	switch level {
	case components.ToastSuccess:
		return m.theme.StatusSuccess
	case components.ToastWarning:
		return m.theme.StatusWarning
	case components.ToastError:
		return m.theme.StatusError
	default:
		return m.theme.StatusInfo
	}
}
