package viewmodel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
)

// Trend tells the dashboard how to color a stat card's change line.
type Trend int

// Trends.
const (
	TrendNeutral Trend = iota
	TrendPositive
	TrendNegative
)

// StatCard is one headline number on the dashboard.
type StatCard struct {
	Title  string
	Value  string
	Change string
	Trend  Trend
}

// Series is one bar group of a chart.
type Series struct {
	Name   string
	Values []int
}

// Chart is the monthly activity chart behind one dashboard tab.
type Chart struct {
	Name   string
	Labels []string
	Series []Series
}

// Max returns the largest value across every series.
func (c Chart) Max() int {
	top := 0
	for _, s := range c.Series {
		for _, v := range s.Values {
			top = max(top, v)
		}
	}
	return top
}

// DashboardView is everything the dashboard renders, computed from the live collections.
type DashboardView struct {
	Cards            []StatCard
	Charts           []Chart
	PendingApprovals []model.User
	RecentComplaints []model.Complaint
}

const recentLimit = 3

// NewDashboardView summarizes ds as of now.
func NewDashboardView(ds model.Dataset, now time.Time) DashboardView {
	clock := admin.Clock(func() time.Time { return now })

	users := query.BucketByStatus(ds.Users, func(u model.User) string { return string(u.Status) })
	vacancies := query.BucketByStatus(ds.Vacancies, func(v model.Vacancy) string { return string(v.Status) })
	reports := query.BucketByStatus(ds.Reports, func(r model.Report) string { return string(r.Status) })
	complaints := query.BucketByStatus(ds.Complaints, func(c model.Complaint) string { return string(c.Status) })

	complaintList := admin.Complaints(clock)
	today := complaintList.NewState()
	today.Window = query.WindowToday
	newToday := len(complaintList.Visible(ds.Complaints, today, string(model.StatusPending)))

	open := len(reports[string(model.StatusPending)]) + len(reports[string(model.StatusInvestigating)])
	reportTrend := TrendPositive
	if open > 0 {
		reportTrend = TrendNegative
	}

	cards := []StatCard{
		{
			Title:  "Total Users",
			Value:  strconv.Itoa(len(ds.Users)),
			Change: fmt.Sprintf("%d pending approval", len(users[string(model.StatusPending)])),
			Trend:  TrendNeutral,
		},
		{
			Title:  "Active Jobs",
			Value:  strconv.Itoa(len(vacancies[string(model.StatusActive)])),
			Change: fmt.Sprintf("%d closed", len(vacancies[string(model.StatusClosed)])),
			Trend:  TrendPositive,
		},
		{
			Title:  "Reports",
			Value:  strconv.Itoa(len(ds.Reports)),
			Change: fmt.Sprintf("%d open", open),
			Trend:  reportTrend,
		},
		{
			Title:  "Pending Complaints",
			Value:  strconv.Itoa(len(complaints[string(model.StatusPending)])),
			Change: fmt.Sprintf("+%d new today", newToday),
			Trend:  TrendNeutral,
		},
	}

	userList := admin.Users(clock)
	newest := userList.NewState().ToggleSort("registered").ToggleSort("registered")
	pending := userList.Visible(ds.Users, newest, string(model.StatusPending))

	latest := complaintList.NewState().ToggleSort("filed").ToggleSort("filed")
	recent := complaintList.Visible(ds.Complaints, latest, query.All)

	return DashboardView{
		Cards:            cards,
		Charts:           monthlyCharts(ds.Monthly),
		PendingApprovals: pending[:min(recentLimit, len(pending))],
		RecentComplaints: recent[:min(recentLimit, len(recent))],
	}
}

func monthlyCharts(months []model.MonthlyActivity) []Chart {
	labels := make([]string, len(months))
	users := make([]int, len(months))
	managers := make([]int, len(months))
	complaints := make([]int, len(months))
	for i, m := range months {
		labels[i] = m.Month
		users[i] = m.Users
		managers[i] = m.Managers
		complaints[i] = m.Complaints
	}

	return []Chart{
		{Name: "Users", Labels: labels, Series: []Series{{Name: "Users", Values: users}, {Name: "Managers", Values: managers}}},
		{Name: "Jobs", Labels: labels, Series: []Series{{Name: "Created", Values: users}, {Name: "Completed", Values: managers}}},
		{Name: "Complaints", Labels: labels, Series: []Series{{Name: "Complaints", Values: complaints}}},
	}
}
