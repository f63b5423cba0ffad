package query

import (
	"errors"
	"fmt"
)

// All is the categorical filter value that matches every record.
const All = "all"

// ErrInvalidState is returned when a query state names an unknown direction or window.
var ErrInvalidState = errors.New("invalid query state")

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Window is a relative date range used by time-stamped screens.
type Window string

// Date windows.
const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Windows lists the date windows in menu order.
func Windows() []Window {
	return []Window{WindowAll, WindowToday, WindowWeek, WindowMonth}
}

// State holds the search, filter and sort selections of one list view.
type State struct {
	Search    string
	Category  string
	Window    Window
	SortField string
	Direction Direction
}

// NewState returns a state that matches everything and does not sort.
func NewState() State {
	return State{
		Category:  All,
		Window:    WindowAll,
		Direction: Ascending,
	}
}

// ToggleSort selects field for sorting. Selecting the current field flips the
// direction; selecting a new field starts ascending.
func (s State) ToggleSort(field string) State {
	if s.SortField == field {
		s.Direction = s.Direction.Reverse()
		return s
	}
	s.SortField = field
	s.Direction = Ascending
	return s
}

// Validate checks the direction and window values.
func (s State) Validate() error {
	switch s.Direction {
	case "", Ascending, Descending:
	default:
		return fmt.Errorf("%w: direction %q", ErrInvalidState, s.Direction)
	}

	switch s.Window {
	case "", WindowAll, WindowToday, WindowWeek, WindowMonth:
	default:
		return fmt.Errorf("%w: window %q", ErrInvalidState, s.Window)
	}

	return nil
}
