// Package admin describes the console's screens: which records each list shows,
// how they are searched, filtered, bucketed into tabs and rendered as columns.
package admin

import (
	"fmt"
	"strings"

	"github.com/Veraticus/jobdesk/internal/common"
)

// Screen identifies one page of the console.
type Screen string

// Screens.
const (
	ScreenDashboard  Screen = "dashboard"
	ScreenUsers      Screen = "users"
	ScreenComplaints Screen = "complaints"
	ScreenReports    Screen = "reports"
	ScreenVacancies  Screen = "vacancies"
	ScreenRequests   Screen = "requests"
	ScreenSettings   Screen = "settings"
)

// Screens returns every screen in navigation order.
func Screens() []Screen {
	return []Screen{
		ScreenDashboard,
		ScreenUsers,
		ScreenComplaints,
		ScreenReports,
		ScreenVacancies,
		ScreenRequests,
		ScreenSettings,
	}
}

// ListScreens returns the screens backed by a record list.
func ListScreens() []Screen {
	return []Screen{ScreenUsers, ScreenComplaints, ScreenReports, ScreenVacancies, ScreenRequests}
}

// Title returns the sidebar label.
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Dashboard"
	case ScreenUsers:
		return "Users"
	case ScreenComplaints:
		return "Complaints"
	case ScreenReports:
		return "Reports"
	case ScreenVacancies:
		return "Job Vacancies"
	case ScreenRequests:
		return "Job Requests"
	case ScreenSettings:
		return "Settings"
	default:
		return string(s)
	}
}

// IsList reports whether the screen shows a record list.
func (s Screen) IsList() bool {
	for _, l := range ListScreens() {
		if l == s {
			return true
		}
	}
	return false
}

// ParseScreen resolves a screen name, ignoring case.
func ParseScreen(name string) (Screen, error) {
	want := Screen(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Screens() {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownScreen, name)
}
