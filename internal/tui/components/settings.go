package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/jobdesk/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Switch is one on/off setting.
type Switch struct {
	Label       string
	Description string
	On          bool
}

// SettingsSection groups switches under a tab.
type SettingsSection struct {
	Name     string
	Switches []Switch
}

// DefaultSettings returns the console's settings with their initial values.
func DefaultSettings() []SettingsSection {
	return []SettingsSection{
		{
			Name: "General",
			Switches: []Switch{
				{Label: "Auto-approve new users", Description: "Skip manual review of registrations"},
				{Label: "Require manager approval", Description: "Managers must be approved before posting jobs", On: true},
				{Label: "Analytics tracking", Description: "Collect anonymous usage statistics", On: true},
			},
		},
		{
			Name: "Notifications",
			Switches: []Switch{
				{Label: "New user registrations", Description: "Notify when a user signs up", On: true},
				{Label: "New complaints", Description: "Notify when a complaint is filed", On: true},
				{Label: "System reports", Description: "Send a weekly system report"},
				{Label: "Urgent complaints", Description: "Alert immediately on urgent complaints", On: true},
				{Label: "System updates", Description: "Announce maintenance windows", On: true},
			},
		},
	}
}

// SettingsModel edits in-memory settings for the session.
type SettingsModel struct {
	theme    themes.Theme
	sections []SettingsSection
	section  int
	cursor   int
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(theme themes.Theme) SettingsModel {
	return SettingsModel{theme: theme, sections: DefaultSettings()}
}

// Sections returns the current settings.
func (m SettingsModel) Sections() []SettingsSection {
	return m.sections
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.sections)
	switch k.String() {
	case "tab":
		m.section = (m.section + 1) % n
		m.cursor = 0
	case "shift+tab":
		m.section = (m.section + n - 1) % n
		m.cursor = 0
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.sections[m.section].Switches)-1)
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case " ", "enter":
		return m.toggle()
	case "s":
		return m, Toast(ToastSuccess, fmt.Sprintf("%s settings saved", m.sections[m.section].Name))
	}
	return m, nil
}

func (m SettingsModel) toggle() (SettingsModel, tea.Cmd) {
	sections := make([]SettingsSection, len(m.sections))
	copy(sections, m.sections)
	switches := make([]Switch, len(sections[m.section].Switches))
	copy(switches, sections[m.section].Switches)

	sw := &switches[m.cursor]
	sw.On = !sw.On
	sections[m.section].Switches = switches
	m.sections = sections

	state := "disabled"
	if sw.On {
		state = "enabled"
	}
	return m, Toast(ToastInfo, fmt.Sprintf("%s %s", sw.Label, state))
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		if i == m.section {
			tabs[i] = m.theme.TabActive.Render(s.Name)
		} else {
			tabs[i] = m.theme.Tab.Render(s.Name)
		}
	}

	lines := []string{m.theme.Bold.Render("Settings"), strings.Join(tabs, " "), ""}
	for i, sw := range m.sections[m.section].Switches {
		toggle := m.theme.Faint.Render("[ off ]")
		if sw.On {
			toggle = m.theme.StatusSuccess.Render("[ on  ]")
		}
		label := sw.Label
		if i == m.cursor {
			label = m.theme.Selected.Render(label)
		}
		lines = append(lines, fmt.Sprintf("%s %s", toggle, label), "        "+m.theme.Faint.Render(sw.Description))
	}
	lines = append(lines, "", m.theme.Faint.Render("[Space] Toggle  [Tab] Section  [s] Save"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
