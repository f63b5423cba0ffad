package admin

import (
	"fmt"

	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
)

// Table is a list view flattened to strings, used by the command line.
type Table struct {
	Counts  map[string]int
	Screen  Screen
	Tab     string
	Headers []string
	Tabs    []string
	Rows    [][]string
}

// Request selects a list view from the command line.
type Request struct {
	Search   string
	Category string
	Window   query.Window
	Sort     string
	Tab      string
	Desc     bool
}

// Build runs a request against the dataset and renders the matching rows.
func Build(ds model.Dataset, screen Screen, req Request, clock Clock) (Table, error) {
	switch screen {
	case ScreenUsers:
		return build(Users(clock), ds.Users, req)
	case ScreenComplaints:
		return build(Complaints(clock), ds.Complaints, req)
	case ScreenReports:
		return build(Reports(), ds.Reports, req)
	case ScreenVacancies:
		return build(Vacancies(), ds.Vacancies, req)
	case ScreenRequests:
		return build(Requests(), ds.Applications, req)
	default:
		return Table{}, fmt.Errorf("%w: %s has no list", common.ErrUnknownScreen, screen)
	}
}

func build[T any](l List[T], records []T, req Request) (Table, error) {
	state := l.NewState()
	state.Search = req.Search
	if req.Category != "" {
		state.Category = req.Category
	}
	if req.Window != "" {
		state.Window = req.Window
	}
	if req.Sort != "" {
		state.SortField = req.Sort
		state.Direction = query.Ascending
	}
	if req.Desc {
		state.Direction = query.Descending
	}

	if err := l.Validate(state, req.Tab); err != nil {
		return Table{}, err
	}

	visible := l.Visible(records, state, req.Tab)
	rows := make([][]string, 0, len(visible))
	for _, r := range visible {
		rows = append(rows, l.Row(r))
	}

	return Table{
		Screen:  l.Screen,
		Tab:     req.Tab,
		Headers: l.Headers(),
		Tabs:    l.Tabs,
		Counts:  l.Counts(records, state),
		Rows:    rows,
	}, nil
}
