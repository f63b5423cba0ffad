package admin

import (
	"testing"
	"time"

	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
	"github.com/Veraticus/jobdesk/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 4, 8, 15, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func dataset(t *testing.T) model.Dataset {
	t.Helper()
	ds, err := seed.Default(testNow)
	require.NoError(t, err)
	return ds
}

func idsOf[T any](l List[T], records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, l.Schema.ID(r))
	}
	return out
}

func TestParseScreen(t *testing.T) {
	s, err := ParseScreen(" Users ")
	require.NoError(t, err)
	assert.Equal(t, ScreenUsers, s)
	assert.Equal(t, "Job Vacancies", ScreenVacancies.Title())
	assert.True(t, ScreenRequests.IsList())
	assert.False(t, ScreenSettings.IsList())

	_, err = ParseScreen("payroll")
	assert.ErrorIs(t, err, common.ErrUnknownScreen)
}

func TestUsers(t *testing.T) {
	ds := dataset(t)
	l := Users(testClock)
	st := l.NewState()

	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(l, l.Visible(ds.Users, st, "pending")))

	st.Category = "manager"
	assert.Equal(t, []string{"2", "4"}, idsOf(l, l.Visible(ds.Users, st, "pending")))
	assert.Equal(t, map[string]int{"pending": 2, "approved": 1, "rejected": 0}, l.Counts(ds.Users, st))

	st = l.NewState()
	st.Search = "JOHN"
	assert.Equal(t, []string{"4"}, idsOf(l, l.Visible(ds.Users, st, "")))

	st = l.NewState().ToggleSort("registered")
	assert.Equal(t, []string{"6", "5", "4", "7", "3", "2", "1"}, idsOf(l, l.Visible(ds.Users, st, "")))

	assert.Equal(t, []string{"Thomas Anderson", "thomas@example.com", "+1 234 567 890", "User", "2 hours ago", "Pending"}, l.Row(ds.Users[0]))
}

func TestComplaints_Window(t *testing.T) {
	ds := dataset(t)
	l := Complaints(testClock)

	st := l.NewState()
	st.Window = query.WindowToday
	assert.Equal(t, []string{"1", "2"}, idsOf(l, l.Visible(ds.Complaints, st, "pending")))
	assert.Equal(t, map[string]int{"pending": 2, "verified": 1, "rejected": 0}, l.Counts(ds.Complaints, st))

	st.Window = query.WindowWeek
	assert.Equal(t, map[string]int{"pending": 3, "verified": 2, "rejected": 2}, l.Counts(ds.Complaints, st))

	st.Window = query.WindowAll
	st.Search = "upload"
	assert.Equal(t, []string{"5"}, idsOf(l, l.Visible(ds.Complaints, st, "")))
}

func TestReports(t *testing.T) {
	ds := dataset(t)
	l := Reports()
	st := l.NewState()

	assert.Equal(t, "date", st.SortField)
	assert.Equal(t, query.Descending, st.Direction)
	assert.Equal(t, []string{"u1", "u2", "u3", "u4", "u5"}, idsOf(l, l.Visible(ds.Reports, st, "user")))
	assert.Equal(t, []string{"m1", "m2", "m3"}, idsOf(l, l.Visible(ds.Reports, st, "manager")))

	st = st.ToggleSort("priority")
	assert.Equal(t, query.Ascending, st.Direction)
	assert.Equal(t, []string{"u1", "u3", "u4", "u2", "u5"}, idsOf(l, l.Visible(ds.Reports, st, "user")))

	st = l.NewState()
	st.Category = "pending"
	assert.Equal(t, map[string]int{"user": 2, "manager": 1}, l.Counts(ds.Reports, st))

	st = l.NewState()
	st.Search = "2023-04-07"
	assert.Equal(t, []string{"u2", "m2"}, idsOf(l, l.Visible(ds.Reports, st, "")))
}

func TestRequests_SearchSkills(t *testing.T) {
	ds := dataset(t)
	l := Requests()
	st := l.NewState()
	st.Search = "figma"
	assert.Equal(t, []string{"2"}, idsOf(l, l.Visible(ds.Applications, st, "")))
}

func TestUsers_SearchPhone(t *testing.T) {
	ds := dataset(t)
	l := Users(testClock)
	st := l.NewState()
	st.Search = "+1 987"
	assert.Equal(t, []string{"2"}, idsOf(l, l.Visible(ds.Users, st, "")))

	st.Search = "567 890"
	assert.ElementsMatch(t, []string{"1", "4"}, idsOf(l, l.Visible(ds.Users, st, "")))
}

func TestVacancies_SortApplicants(t *testing.T) {
	ds := dataset(t)
	l := Vacancies()
	st := l.NewState().ToggleSort("applicants").ToggleSort("applicants")
	assert.Equal(t, []string{"3", "1", "2"}, idsOf(l, l.Visible(ds.Vacancies, st, "")))
	assert.Equal(t, []string{"1", "2"}, idsOf(l, l.Visible(ds.Vacancies, st, "active")))
}

func TestList_NextFilter(t *testing.T) {
	l := Users(testClock)
	assert.Equal(t, "user", l.NextFilter(query.All))
	assert.Equal(t, "manager", l.NextFilter("user"))
	assert.Equal(t, query.All, l.NextFilter("manager"))
	assert.Equal(t, query.All, Complaints(testClock).NextFilter(query.All))
}

func TestList_Validate(t *testing.T) {
	tests := []struct {
		name    string
		err     func() error
		wantErr bool
	}{
		{
			name: "defaults",
			err:  func() error { return Reports().Validate(Reports().NewState(), "") },
		},
		{
			name: "known values",
			err: func() error {
				st := query.NewState()
				st.Category = "manager"
				return Users(testClock).Validate(st.ToggleSort("email"), "approved")
			},
		},
		{
			name: "unknown role",
			err: func() error {
				st := query.NewState()
				st.Category = "admin"
				return Users(testClock).Validate(st, "")
			},
			wantErr: true,
		},
		{
			name: "filter on list without one",
			err: func() error {
				st := query.NewState()
				st.Category = "pending"
				return Complaints(testClock).Validate(st, "")
			},
			wantErr: true,
		},
		{
			name: "window on list without timestamps",
			err: func() error {
				st := query.NewState()
				st.Window = query.WindowWeek
				return Users(testClock).Validate(st, "")
			},
			wantErr: true,
		},
		{
			name: "unknown sort field",
			err: func() error {
				return Reports().Validate(query.NewState().ToggleSort("salary"), "")
			},
			wantErr: true,
		},
		{
			name: "unknown tab",
			err: func() error {
				return Vacancies().Validate(query.NewState(), "archived")
			},
			wantErr: true,
		},
		{
			name: "bad direction",
			err: func() error {
				st := query.NewState()
				st.Direction = "sideways"
				return Requests().Validate(st, "")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidQuery)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	ds := dataset(t)

	table, err := Build(ds, ScreenReports, Request{Tab: "manager", Sort: "type"}, testClock)
	require.NoError(t, err)
	assert.Equal(t, []string{"Type", "Reported By", "Status", "Date", "Priority"}, table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"Analytics Data Error", "Mark Davis", "Resolved", "2023-04-07", "High"}, table.Rows[0])
	assert.Equal(t, "User Management Issue", table.Rows[2][0])
	assert.Equal(t, map[string]int{"user": 5, "manager": 3}, table.Counts)

	table, err = Build(ds, ScreenComplaints, Request{Window: query.WindowToday, Sort: "filed", Desc: true}, testClock)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Inappropriate Content Reported", table.Rows[0][0])

	_, err = Build(ds, ScreenDashboard, Request{}, testClock)
	assert.ErrorIs(t, err, common.ErrUnknownScreen)

	_, err = Build(ds, ScreenUsers, Request{Category: "guest"}, testClock)
	assert.ErrorIs(t, err, common.ErrInvalidQuery)
}

func TestAgo(t *testing.T) {
	tests := []struct {
		want string
		age  time.Duration
	}{
		{"just now", 10 * time.Second},
		{"1 minute ago", 90 * time.Second},
		{"2 hours ago", 2 * time.Hour},
		{"1 day ago", 24 * time.Hour},
		{"3 days ago", 72 * time.Hour},
		{"2 weeks ago", 14 * 24 * time.Hour},
		{"Feb 7, 2023", 60 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Ago(testNow.Add(-tt.age), testNow))
		})
	}
	assert.Empty(t, Ago(time.Time{}, testNow))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "Pending", Capitalize("pending"))
	assert.Empty(t, Capitalize(""))
	assert.Equal(t, "Reported by", Title("reported_by"))
	assert.Equal(t, "Senior…", Truncate("Senior Frontend", 7))
	assert.Equal(t, "short", Truncate("short", 10))
}
