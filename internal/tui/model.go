package tui

import (
	"slices"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/components"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sidebarWidth is the navigation column, border included.
const sidebarWidth = 24

// Model holds the main TUI state. Each screen owns its records; the dashboard
// is recomputed from them whenever it is shown.
type Model struct {
	theme         themes.Theme
	clock         admin.Clock
	toast         *components.ToastMsg
	keymap        KeyMap
	help          help.Model
	monthly       []model.MonthlyActivity
	dashboard     components.DashboardModel
	users         components.UsersModel
	complaints    components.ComplaintsModel
	reports       components.ReportsModel
	vacancies     components.VacanciesModel
	requests      components.RequestsModel
	settings      components.SettingsModel
	screen        admin.Screen
	toastDuration time.Duration
	toastID       int
	width         int
	height        int
	showHelp      bool
	quitting      bool
}

// New creates the console model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		theme:         cfg.Theme,
		clock:         cfg.Clock,
		keymap:        DefaultKeyMap(),
		help:          h,
		monthly:       cfg.Data.Monthly,
		dashboard:     components.NewDashboardModel(cfg.Theme),
		users:         components.NewUsersModel(cfg.Data.Users, cfg.Clock, cfg.Theme),
		complaints:    components.NewComplaintsModel(cfg.Data.Complaints, cfg.Clock, cfg.Theme),
		reports:       components.NewReportsModel(cfg.Data.Reports, cfg.Theme),
		vacancies:     components.NewVacanciesModel(cfg.Data.Vacancies, cfg.Clock, cfg.Theme),
		requests:      components.NewRequestsModel(cfg.Data.Applications, cfg.Theme),
		settings:      components.NewSettingsModel(cfg.Theme),
		screen:        admin.ScreenDashboard,
		toastDuration: cfg.ToastDuration,
	}
	m.resize(cfg.Width, cfg.Height)
	m.dashboard.SetData(m.Dataset(), m.clock.Now())
	m.navigate(cfg.Screen)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the active screen.
func (m Model) Screen() admin.Screen {
	return m.screen
}

// Toast returns the notification currently shown.
func (m Model) Toast() (components.ToastMsg, bool) {
	if m.toast == nil {
		return components.ToastMsg{}, false
	}
	return *m.toast, true
}

// Dataset returns the live collections as edited during the session.
func (m Model) Dataset() model.Dataset {
	return model.Dataset{
		Users:        m.users.Records(),
		Complaints:   m.complaints.Records(),
		Reports:      m.reports.Records(),
		Vacancies:    m.vacancies.Records(),
		Applications: m.requests.Records(),
		Monthly:      m.monthly,
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case components.ToastMsg:
		m.toast = &msg
		m.toastID++
		id := m.toastID
		return m, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	return m.updateScreen(msg)
}

// handleGlobalKeys handles keys that work on every screen. Screens capturing
// text or showing a dialog only give up ctrl+c.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit, true
	}

	if m.capturing() {
		return nil, false
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Close) {
			m.showHelp = false
		}
		return nil, true
	}

	screens := admin.Screens()
	i := slices.Index(screens, m.screen)

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return nil, true
	case key.Matches(msg, m.keymap.NextPage):
		m.navigate(screens[(i+1)%len(screens)])
		return nil, true
	case key.Matches(msg, m.keymap.PrevPage):
		m.navigate(screens[(i+len(screens)-1)%len(screens)])
		return nil, true
	}
	return nil, false
}

// navigate switches screens. The dashboard is rebuilt from the live records on entry.
func (m *Model) navigate(screen admin.Screen) {
	m.screen = screen
	if screen == admin.ScreenDashboard {
		m.dashboard.SetData(m.Dataset(), m.clock.Now())
	}
}

// capturing reports whether the active screen is taking raw key input.
func (m Model) capturing() bool {
	switch m.screen {
	case admin.ScreenUsers:
		return m.users.Capturing()
	case admin.ScreenComplaints:
		return m.complaints.Capturing()
	case admin.ScreenReports:
		return m.reports.Capturing()
	case admin.ScreenVacancies:
		return m.vacancies.Capturing()
	case admin.ScreenRequests:
		return m.requests.Capturing()
	default:
		return false
	}
}

// updateScreen delegates to the active screen.
func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case admin.ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case admin.ScreenUsers:
		m.users, cmd = m.users.Update(msg)
	case admin.ScreenComplaints:
		m.complaints, cmd = m.complaints.Update(msg)
	case admin.ScreenReports:
		m.reports, cmd = m.reports.Update(msg)
	case admin.ScreenVacancies:
		m.vacancies, cmd = m.vacancies.Update(msg)
	case admin.ScreenRequests:
		m.requests, cmd = m.requests.Update(msg)
	case admin.ScreenSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// sidebar and status bar
	w := max(width-sidebarWidth-2, 20)
	h := max(height-2, 8)

	m.dashboard.Resize(w, h)
	m.users.Resize(w, h)
	m.complaints.Resize(w, h)
	m.reports.Resize(w, h)
	m.vacancies.Resize(w, h)
	m.requests.Resize(w, h)
	m.help.Width = w
}
