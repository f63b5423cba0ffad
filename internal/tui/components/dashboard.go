package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/Veraticus/jobdesk/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel shows headline stats, the monthly activity chart and the work queues.
type DashboardModel struct {
	theme  themes.Theme
	now    time.Time
	view   viewmodel.DashboardView
	bars   []progress.Model
	chart  int
	width  int
	height int
}

// NewDashboardModel creates the dashboard.
func NewDashboardModel(theme themes.Theme) DashboardModel {
	colors := []lipgloss.Color{theme.Primary, theme.Muted}
	bars := make([]progress.Model, len(colors))
	for i, c := range colors {
		bars[i] = progress.New(
			progress.WithSolidFill(string(c)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		)
	}

	return DashboardModel{
		theme:  theme,
		bars:   bars,
		width:  100,
		height: 30,
	}
}

// SetData recomputes the dashboard from the live collections.
func (m *DashboardModel) SetData(ds model.Dataset, now time.Time) {
	m.now = now
	m.view = viewmodel.NewDashboardView(ds, now)
	if m.chart >= len(m.view.Charts) {
		m.chart = 0
	}
}

// Data returns the computed dashboard data.
func (m DashboardModel) Data() viewmodel.DashboardView {
	return m.view
}

// Chart returns the name of the selected chart tab.
func (m DashboardModel) Chart() string {
	if len(m.view.Charts) == 0 {
		return ""
	}
	return m.view.Charts[m.chart].Name
}

// Resize sets the space available to the dashboard.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.bars {
		m.bars[i].Width = max(min(width-24, 50), 10)
	}
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.view.Charts) == 0 {
		return m, nil
	}

	n := len(m.view.Charts)
	switch k.String() {
	case "tab":
		m.chart = (m.chart + 1) % n
	case "shift+tab":
		m.chart = (m.chart + n - 1) % n
	}
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	sections := []string{
		m.theme.Bold.Render("Admin Dashboard"),
		m.renderCards(),
		m.renderChart(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderApprovals(), "  ", m.renderComplaints()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderCards() string {
	width := max((m.width-8)/4-4, 16)
	cards := make([]string, 0, len(m.view.Cards))
	for _, c := range m.view.Cards {
		change := m.theme.Faint
		switch c.Trend {
		case viewmodel.TrendPositive:
			change = m.theme.StatusSuccess
		case viewmodel.TrendNegative:
			change = m.theme.StatusError
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Faint.Render(c.Title),
			m.theme.Bold.Render(c.Value),
			change.UnsetBold().Render(c.Change),
		)
		cards = append(cards, m.theme.RoundedBox.Width(width).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m DashboardModel) renderChart() string {
	if len(m.view.Charts) == 0 {
		return ""
	}

	tabs := make([]string, len(m.view.Charts))
	for i, c := range m.view.Charts {
		if i == m.chart {
			tabs[i] = m.theme.TabActive.Render(c.Name)
		} else {
			tabs[i] = m.theme.Tab.Render(c.Name)
		}
	}

	chart := m.view.Charts[m.chart]
	top := float64(max(chart.Max(), 1))

	lines := []string{m.theme.Bold.Render("Activity Overview") + "  " + strings.Join(tabs, " ")}
	for i, label := range chart.Labels {
		for j, s := range chart.Series {
			month := ""
			if j == 0 {
				month = label
			}
			bar := m.bars[j%len(m.bars)]
			lines = append(lines, fmt.Sprintf("%-4s %-10s %s %3d", month, s.Name, bar.ViewAs(float64(s.Values[i])/top), s.Values[i]))
		}
	}
	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderApprovals() string {
	lines := []string{m.theme.Bold.Render("User Approval Requests")}
	if len(m.view.PendingApprovals) == 0 {
		lines = append(lines, m.theme.Faint.Render("Nothing waiting"))
	}
	for _, u := range m.view.PendingApprovals {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			u.Name,
			m.theme.Faint.Render(admin.Capitalize(string(u.Role))),
			m.theme.Faint.Render(admin.Ago(u.RegisteredAt, m.now))))
	}
	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderComplaints() string {
	lines := []string{m.theme.Bold.Render("Recent Complaints")}
	if len(m.view.RecentComplaints) == 0 {
		lines = append(lines, m.theme.Faint.Render("No complaints"))
	}
	for _, c := range m.view.RecentComplaints {
		lines = append(lines, fmt.Sprintf("%s  %s",
			admin.Truncate(c.Title, 32),
			m.theme.Badge(c.Status).Render(admin.Capitalize(string(c.Status)))))
	}
	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}
