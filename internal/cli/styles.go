// Package cli renders the console's lists for plain terminal output.
package cli

import (
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Colors shared with the console's default theme.
var (
	AccentColor  = lipgloss.Color("#7C3AED")
	SuccessColor = lipgloss.Color("#22C55E")
	WarningColor = lipgloss.Color("#F59E0B")
	ErrorColor   = lipgloss.Color("#EF4444")
	InfoColor    = lipgloss.Color("#38BDF8")
	MutedColor   = lipgloss.Color("#6B7280")
)

var (
	// TitleStyle renders the screen name above a table.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	// TableHeaderStyle renders column titles.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)
)

// Message prefixes.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "!"
	InfoIcon    = "›"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// StatusStyle colors a status value the same way the console's badges do.
func StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusApproved, model.StatusVerified, model.StatusResolved, model.StatusActive, model.StatusAccepted:
		return SuccessStyle
	case model.StatusRejected, model.StatusClosed:
		return ErrorStyle
	case model.StatusPending:
		return WarningStyle
	case model.StatusInvestigating:
		return InfoStyle
	default:
		return lipgloss.NewStyle()
	}
}
