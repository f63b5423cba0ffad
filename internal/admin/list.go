package admin

import (
	"fmt"
	"slices"

	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
)

// Column is one rendered column of a list.
type Column[T any] struct {
	Cell  func(T) string
	Title string
	// Sort names the schema field this column sorts by. Empty when not sortable.
	Sort  string
	Width int
}

// Filter describes the categorical filter offered by a list.
type Filter struct {
	Label string
	// Values excludes query.All, which is always accepted.
	Values []string
}

// List binds a record type to the query engine and its presentation.
type List[T any] struct {
	Schema query.Schema[T]
	// TabOf returns the tab a record belongs to. Nil uses the schema status.
	TabOf func(T) string
	// Label names a record in messages and dialogs.
	Label            func(T) string
	Workflow         model.Workflow
	Screen           Screen
	Noun             string
	DefaultSort      string
	DefaultDirection query.Direction
	Filter           Filter
	Columns          []Column[T]
	Tabs             []string
	Windowed         bool
}

// NewState returns the list's initial query state.
func (l List[T]) NewState() query.State {
	st := query.NewState()
	st.SortField = l.DefaultSort
	if l.DefaultDirection != "" {
		st.Direction = l.DefaultDirection
	}
	return st
}

func (l List[T]) tabOf(r T) string {
	if l.TabOf != nil {
		return l.TabOf(r)
	}
	return l.Schema.Status(r)
}

// InTab keeps the records that belong to tab. An empty tab or query.All keeps everything.
func (l List[T]) InTab(records []T, tab string) []T {
	if tab == "" || tab == query.All {
		return slices.Clone(records)
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if l.tabOf(r) == tab {
			out = append(out, r)
		}
	}
	return out
}

// Visible returns the rows of tab after applying state.
func (l List[T]) Visible(records []T, state query.State, tab string) []T {
	return l.Schema.Apply(l.InTab(records, tab), state)
}

// Counts returns the tab badge counts under state.
func (l List[T]) Counts(records []T, state query.State) map[string]int {
	return l.Schema.TabCounts(records, state, l.tabOf, l.Tabs)
}

// Headers returns the column titles.
func (l List[T]) Headers() []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Title
	}
	return out
}

// Row renders one record as cells.
func (l List[T]) Row(r T) []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Cell(r)
	}
	return out
}

// SortFields returns the sortable fields in column order.
func (l List[T]) SortFields() []string {
	var out []string
	for _, c := range l.Columns {
		if c.Sort != "" {
			out = append(out, c.Sort)
		}
	}
	return out
}

// NextFilter returns the categorical value after current, wrapping to query.All.
func (l List[T]) NextFilter(current string) string {
	values := append([]string{query.All}, l.Filter.Values...)
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

// Validate checks a query state and tab against the list's closed value sets.
func (l List[T]) Validate(state query.State, tab string) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidQuery, err)
	}

	if state.Category != "" && state.Category != query.All && !slices.Contains(l.Filter.Values, state.Category) {
		if len(l.Filter.Values) == 0 {
			return fmt.Errorf("%w: %s has no filter", common.ErrInvalidQuery, l.Screen)
		}
		return fmt.Errorf("%w: %s %q not one of %v", common.ErrInvalidQuery, l.Filter.Label, state.Category, l.Filter.Values)
	}

	if state.Window != "" && state.Window != query.WindowAll && !l.Windowed {
		return fmt.Errorf("%w: %s has no date window", common.ErrInvalidQuery, l.Screen)
	}

	if state.SortField != "" && !slices.Contains(l.Schema.FieldNames(), state.SortField) {
		return fmt.Errorf("%w: sort field %q not one of %v", common.ErrInvalidQuery, state.SortField, l.Schema.FieldNames())
	}

	if tab != "" && tab != query.All && !slices.Contains(l.Tabs, tab) {
		return fmt.Errorf("%w: tab %q not one of %v", common.ErrInvalidQuery, tab, l.Tabs)
	}

	return nil
}
