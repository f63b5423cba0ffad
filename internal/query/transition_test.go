package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTransition_Scenario(t *testing.T) {
	s := rowSchema()
	records := []row{
		{ID: "1", Name: "a", Status: "pending"},
		{ID: "2", Name: "b", Status: "verified"},
		{ID: "3", Name: "c", Status: "pending"},
	}
	original := []row{records[0], records[1], records[2]}

	got := s.Transition(records, "2", "rejected")

	assert.Equal(t, "rejected", got[1].Status)
	assert.Equal(t, "b", got[1].Name)
	assert.Equal(t, original[0], got[0])
	assert.Equal(t, original[2], got[2])

	// input untouched
	if diff := cmp.Diff(original, records); diff != "" {
		t.Errorf("Transition mutated input (-want +got):\n%s", diff)
	}
}

func TestTransition_UnknownIDIsNoop(t *testing.T) {
	s := rowSchema()
	records := sampleRows()

	got := s.Transition(records, "missing", "rejected")

	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Transition(unknown) mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, s.Transition(nil, "1", "rejected"))
}

func TestTransition_MovesBucket(t *testing.T) {
	s := rowSchema()
	status := func(r row) string { return r.Status }

	before := BucketByStatus(sampleRows(), status)
	after := BucketByStatus(s.Transition(sampleRows(), "1", "verified"), status)

	assert.Len(t, before["pending"], 2)
	assert.Len(t, after["pending"], 1)
	assert.Len(t, after["verified"], len(before["verified"])+1)
}

func TestUpdate(t *testing.T) {
	s := rowSchema()
	got := s.Update(sampleRows(), "3", func(r row) row {
		r.Name = "Emma Stone"
		return r
	})

	assert.Equal(t, "Emma Stone", got[2].Name)
	assert.Equal(t, "pending", got[2].Status)
}

func TestRemoveAndFind(t *testing.T) {
	s := rowSchema()

	got := s.Remove(sampleRows(), "2")
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))
	assert.Len(t, s.Remove(sampleRows(), "nope"), 4)

	r, ok := s.Find(sampleRows(), "4")
	assert.True(t, ok)
	assert.Equal(t, "Sarah Johnson", r.Name)

	_, ok = s.Find(sampleRows(), "nope")
	assert.False(t, ok)
}
