package query

import "slices"

// Transition returns a copy of records in which the record identified by id
// has the new status. An unknown id returns an unchanged copy.
func (s Schema[T]) Transition(records []T, id, status string) []T {
	return s.Update(records, id, func(r T) T {
		return s.SetStatus(r, status)
	})
}

// Update returns a copy of records with fn applied to the record identified by id.
func (s Schema[T]) Update(records []T, id string, fn func(T) T) []T {
	out := slices.Clone(records)
	for i, r := range out {
		if s.ID(r) == id {
			out[i] = fn(r)
			break
		}
	}
	return out
}

// Remove returns a copy of records without the record identified by id.
func (s Schema[T]) Remove(records []T, id string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if s.ID(r) != id {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the record identified by id.
func (s Schema[T]) Find(records []T, id string) (T, bool) {
	for _, r := range records {
		if s.ID(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
