// Package query implements the list engine shared by every admin screen:
// free-text search, a categorical filter, a relative date window, stable
// sorting and status bucketing over in-memory records.
package query

import (
	"slices"
	"strings"
	"time"
)

// Field describes one sortable attribute of a record.
type Field[T any] struct {
	// Get returns the field value, or false when the record has no value.
	Get  func(T) (Value, bool)
	Name string
	Kind Kind
}

// TextField builds a string field.
func TextField[T any](name string, get func(T) string) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindString,
		Get: func(r T) (Value, bool) {
			return Text(get(r)), true
		},
	}
}

// NumberField builds a numeric field.
func NumberField[T any](name string, get func(T) float64) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindNumber,
		Get: func(r T) (Value, bool) {
			return Number(get(r)), true
		},
	}
}

// TimeField builds a timestamp field. A zero time counts as missing.
func TimeField[T any](name string, get func(T) time.Time) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindTime,
		Get: func(r T) (Value, bool) {
			t := get(r)
			return Time(t), !t.IsZero()
		},
	}
}

func (f Field[T]) value(r T) Value {
	if f.Get == nil {
		return Zero(f.Kind)
	}
	v, ok := f.Get(r)
	if !ok {
		return Zero(f.Kind)
	}
	return v
}

// Schema describes how the engine reads one record type.
type Schema[T any] struct {
	// ID returns the record identifier, unique per collection.
	ID func(T) string
	// Status returns the record's status bucket.
	Status func(T) string
	// SetStatus returns a copy of the record with a new status.
	SetStatus func(T, string) T
	// Category returns the value compared by the categorical filter.
	Category func(T) string
	// Timestamp returns the instant checked by the date window.
	Timestamp func(T) time.Time
	// Now is the clock used by date windows. Defaults to time.Now.
	Now func() time.Time
	// Search returns the strings matched by free-text search.
	Search []func(T) string
	Fields []Field[T]
}

// Field looks up a sortable field by name.
func (s Schema[T]) Field(name string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// FieldNames lists the sortable fields in declaration order.
func (s Schema[T]) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// MatchesSearch reports whether any search field contains text, ignoring case.
// Empty text matches every record.
func (s Schema[T]) MatchesSearch(record T, text string) bool {
	if text == "" {
		return true
	}

	needle := strings.ToLower(text)
	for _, get := range s.Search {
		if strings.Contains(strings.ToLower(get(record)), needle) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether the categorical field equals value.
// The value All (or empty) matches every record.
func (s Schema[T]) MatchesCategory(record T, value string) bool {
	if value == "" || value == All || s.Category == nil {
		return true
	}
	return s.Category(record) == value
}

// MatchesWindow reports whether the record timestamp falls inside window.
// Records without a timestamp only match WindowAll.
func (s Schema[T]) MatchesWindow(record T, window Window) bool {
	if window == "" || window == WindowAll || s.Timestamp == nil {
		return true
	}

	at := s.Timestamp(record)
	if at.IsZero() {
		return false
	}

	return !at.Before(WindowStart(window, s.now()))
}

// WindowStart returns the earliest instant included in window at now.
func WindowStart(window Window, now time.Time) time.Time {
	switch window {
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

// Matches reports whether a record passes every predicate of state.
func (s Schema[T]) Matches(record T, state State) bool {
	return s.MatchesSearch(record, state.Search) &&
		s.MatchesCategory(record, state.Category) &&
		s.MatchesWindow(record, state.Window)
}

// Filter keeps the records matching state, preserving input order.
func (s Schema[T]) Filter(records []T, state State) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if s.Matches(r, state) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a stably sorted copy of records. Records missing the field
// compare as the zero value of its kind. An unknown field leaves the order unchanged.
func (s Schema[T]) Sort(records []T, field string, dir Direction) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}

	f, ok := s.Field(field)
	if !ok {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(f.value(a), f.value(b))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// Apply filters and then sorts records according to state.
func (s Schema[T]) Apply(records []T, state State) []T {
	filtered := s.Filter(records, state)
	if state.SortField == "" {
		return filtered
	}
	return s.Sort(filtered, state.SortField, state.Direction)
}

// TabCounts filters records by state and counts the survivors per bucket.
// Every value in buckets is present in the result, zero when empty.
// A nil by groups on the schema status.
func (s Schema[T]) TabCounts(records []T, state State, by func(T) string, buckets []string) map[string]int {
	if by == nil {
		by = s.Status
	}

	counts := make(map[string]int, len(buckets))
	for _, b := range buckets {
		counts[b] = 0
	}
	for key, group := range BucketByStatus(s.Filter(records, state), by) {
		counts[key] = len(group)
	}
	return counts
}

// BucketByStatus partitions records by the value returned from status.
// Each bucket keeps input order.
func BucketByStatus[T any](records []T, status func(T) string) map[string][]T {
	buckets := make(map[string][]T)
	for _, r := range records {
		key := status(r)
		buckets[key] = append(buckets[key], r)
	}
	return buckets
}

func (s Schema[T]) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
