// Package themes holds the console's lipgloss styles.
package themes

import (
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme is derived from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
}

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	RoundedBox    lipgloss.Style
	Dialog        lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	Sidebar       lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	StatusBar     lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style
	Key           lipgloss.Style
	Palette
}

func newTheme(p Palette) Theme {
	return Theme{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Normal: lipgloss.NewStyle().
			Foreground(p.Foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		Faint: lipgloss.NewStyle().
			Foreground(p.Muted),
		Selected: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Foreground).
			Bold(true),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Border).
			Padding(1, 1),
		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Surface),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Info).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.Warning).
			Italic(true),

		Key: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
	}
}

// Default is the default theme.
var Default = newTheme(Palette{
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#3b82f6"),
	Background: lipgloss.Color("#1a1a1a"),
	Foreground: lipgloss.Color("#fafafa"),
	Surface:    lipgloss.Color("#262626"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(Palette{
	Primary:    lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#f5c2e7"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Info:       lipgloss.Color("#89dceb"),
	Background: lipgloss.Color("#1e1e2e"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Surface:    lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// Badge returns the style for a status label. Positive outcomes are green,
// pending work is amber, negative outcomes are red.
func (t Theme) Badge(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusApproved, model.StatusVerified, model.StatusAccepted,
		model.StatusResolved, model.StatusActive:
		return t.StatusSuccess
	case model.StatusPending:
		return t.StatusPending
	case model.StatusInvestigating:
		return t.StatusInfo
	case model.StatusRejected, model.StatusClosed:
		return t.StatusError
	default:
		return t.Normal
	}
}

// PriorityStyle returns the style for a report priority.
func (t Theme) PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return t.StatusError
	case model.PriorityMedium:
		return t.StatusWarning
	default:
		return t.StatusSuccess
	}
}
