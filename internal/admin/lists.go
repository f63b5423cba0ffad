package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
)

// Clock returns the current time.
type Clock func() time.Time

// Now returns the current time, falling back to the wall clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Users lists platform registrations. Tabs are approval states; the filter is the role.
func Users(clock Clock) List[model.User] {
	return List[model.User]{
		Screen:   ScreenUsers,
		Noun:     "user",
		Label:    func(u model.User) string { return u.Name },
		Workflow: model.UserWorkflow,
		Tabs:     model.UserWorkflow.Values(),
		Filter:   Filter{Label: "role", Values: []string{string(model.RoleUser), string(model.RoleManager)}},
		Schema: query.Schema[model.User]{
			ID:     func(u model.User) string { return u.ID },
			Status: func(u model.User) string { return string(u.Status) },
			SetStatus: func(u model.User, s string) model.User {
				u.Status = model.Status(s)
				return u
			},
			Category: func(u model.User) string { return string(u.Role) },
			Now:      clock.Now,
			Search: []func(model.User) string{
				func(u model.User) string { return u.Name },
				func(u model.User) string { return u.Email },
				func(u model.User) string { return u.Phone },
			},
			Fields: []query.Field[model.User]{
				query.TextField("name", func(u model.User) string { return u.Name }),
				query.TextField("email", func(u model.User) string { return u.Email }),
				query.TextField("role", func(u model.User) string { return string(u.Role) }),
				query.TimeField("registered", func(u model.User) time.Time { return u.RegisteredAt }),
				query.TextField("status", func(u model.User) string { return string(u.Status) }),
			},
		},
		Columns: []Column[model.User]{
			{Title: "Name", Width: 20, Sort: "name", Cell: func(u model.User) string { return u.Name }},
			{Title: "Email", Width: 24, Sort: "email", Cell: func(u model.User) string { return u.Email }},
			{Title: "Phone", Width: 16, Cell: func(u model.User) string { return u.Phone }},
			{Title: "Role", Width: 9, Sort: "role", Cell: func(u model.User) string { return Capitalize(string(u.Role)) }},
			{Title: "Registered", Width: 14, Sort: "registered", Cell: func(u model.User) string { return Ago(u.RegisteredAt, clock.Now()) }},
			{Title: "Status", Width: 10, Sort: "status", Cell: func(u model.User) string { return Capitalize(string(u.Status)) }},
		},
	}
}

// Complaints lists moderation complaints. They are filtered by a date window instead of a category.
func Complaints(clock Clock) List[model.Complaint] {
	return List[model.Complaint]{
		Screen:   ScreenComplaints,
		Noun:     "complaint",
		Label:    func(c model.Complaint) string { return c.Title },
		Workflow: model.ComplaintWorkflow,
		Tabs:     model.ComplaintWorkflow.Values(),
		Windowed: true,
		Schema: query.Schema[model.Complaint]{
			ID:     func(c model.Complaint) string { return c.ID },
			Status: func(c model.Complaint) string { return string(c.Status) },
			SetStatus: func(c model.Complaint, s string) model.Complaint {
				c.Status = model.Status(s)
				return c
			},
			Timestamp: func(c model.Complaint) time.Time { return c.FiledAt },
			Now:       clock.Now,
			Search: []func(model.Complaint) string{
				func(c model.Complaint) string { return c.Title },
				func(c model.Complaint) string { return c.Description },
				func(c model.Complaint) string { return c.Reporter },
			},
			Fields: []query.Field[model.Complaint]{
				query.TextField("title", func(c model.Complaint) string { return c.Title }),
				query.TextField("reporter", func(c model.Complaint) string { return c.Reporter }),
				query.TimeField("filed", func(c model.Complaint) time.Time { return c.FiledAt }),
				query.TextField("status", func(c model.Complaint) string { return string(c.Status) }),
			},
		},
		Columns: []Column[model.Complaint]{
			{Title: "Title", Width: 32, Sort: "title", Cell: func(c model.Complaint) string { return c.Title }},
			{Title: "Reporter", Width: 18, Sort: "reporter", Cell: func(c model.Complaint) string { return c.Reporter }},
			{Title: "Filed", Width: 14, Sort: "filed", Cell: func(c model.Complaint) string { return Ago(c.FiledAt, clock.Now()) }},
			{Title: "Status", Width: 10, Sort: "status", Cell: func(c model.Complaint) string { return Capitalize(string(c.Status)) }},
		},
	}
}

// Reports lists support reports. Tabs split user and manager reports; the filter is the status.
func Reports() List[model.Report] {
	return List[model.Report]{
		Screen:           ScreenReports,
		Noun:             "report",
		Label:            func(r model.Report) string { return r.Type },
		Workflow:         model.ReportWorkflow,
		Tabs:             []string{string(model.AudienceUser), string(model.AudienceManager)},
		TabOf:            func(r model.Report) string { return string(r.Audience) },
		Filter:           Filter{Label: "status", Values: model.ReportWorkflow.Values()},
		DefaultSort:      "date",
		DefaultDirection: query.Descending,
		Schema: query.Schema[model.Report]{
			ID:     func(r model.Report) string { return r.ID },
			Status: func(r model.Report) string { return string(r.Status) },
			SetStatus: func(r model.Report, s string) model.Report {
				r.Status = model.Status(s)
				return r
			},
			Category: func(r model.Report) string { return string(r.Status) },
			Search: []func(model.Report) string{
				func(r model.Report) string { return r.ID },
				func(r model.Report) string { return r.Type },
				func(r model.Report) string { return r.ReportedBy },
				func(r model.Report) string { return string(r.Status) },
				func(r model.Report) string { return r.Date },
				func(r model.Report) string { return string(r.Priority) },
			},
			Fields: []query.Field[model.Report]{
				query.TextField("type", func(r model.Report) string { return r.Type }),
				query.TextField("reported_by", func(r model.Report) string { return r.ReportedBy }),
				query.TextField("status", func(r model.Report) string { return string(r.Status) }),
				query.TextField("date", func(r model.Report) string { return r.Date }),
				query.TextField("priority", func(r model.Report) string { return string(r.Priority) }),
			},
		},
		Columns: []Column[model.Report]{
			{Title: "Type", Width: 24, Sort: "type", Cell: func(r model.Report) string { return r.Type }},
			{Title: "Reported By", Width: 18, Sort: "reported_by", Cell: func(r model.Report) string { return r.ReportedBy }},
			{Title: "Status", Width: 14, Sort: "status", Cell: func(r model.Report) string { return Capitalize(string(r.Status)) }},
			{Title: "Date", Width: 12, Sort: "date", Cell: func(r model.Report) string { return r.Date }},
			{Title: "Priority", Width: 10, Sort: "priority", Cell: func(r model.Report) string { return Capitalize(string(r.Priority)) }},
		},
	}
}

// Vacancies lists the job postings managers maintain.
func Vacancies() List[model.Vacancy] {
	return List[model.Vacancy]{
		Screen:   ScreenVacancies,
		Noun:     "vacancy",
		Label:    func(v model.Vacancy) string { return v.Title },
		Workflow: model.VacancyWorkflow,
		Tabs:     model.VacancyWorkflow.Values(),
		Schema: query.Schema[model.Vacancy]{
			ID:     func(v model.Vacancy) string { return v.ID },
			Status: func(v model.Vacancy) string { return string(v.Status) },
			SetStatus: func(v model.Vacancy, s string) model.Vacancy {
				v.Status = model.Status(s)
				return v
			},
			Search: []func(model.Vacancy) string{
				func(v model.Vacancy) string { return v.Title },
				func(v model.Vacancy) string { return v.Department },
				func(v model.Vacancy) string { return v.Location },
				func(v model.Vacancy) string { return v.Requirements },
			},
			Fields: []query.Field[model.Vacancy]{
				query.TextField("title", func(v model.Vacancy) string { return v.Title }),
				query.TextField("department", func(v model.Vacancy) string { return v.Department }),
				query.TextField("location", func(v model.Vacancy) string { return v.Location }),
				query.NumberField("applicants", func(v model.Vacancy) float64 { return float64(v.Applicants) }),
				query.TextField("created", func(v model.Vacancy) string { return v.CreatedAt }),
				query.TextField("status", func(v model.Vacancy) string { return string(v.Status) }),
			},
		},
		Columns: []Column[model.Vacancy]{
			{Title: "Title", Width: 26, Sort: "title", Cell: func(v model.Vacancy) string { return v.Title }},
			{Title: "Department", Width: 14, Sort: "department", Cell: func(v model.Vacancy) string { return v.Department }},
			{Title: "Location", Width: 12, Sort: "location", Cell: func(v model.Vacancy) string { return v.Location }},
			{Title: "Applicants", Width: 10, Sort: "applicants", Cell: func(v model.Vacancy) string { return strconv.Itoa(v.Applicants) }},
			{Title: "Created", Width: 12, Sort: "created", Cell: func(v model.Vacancy) string { return v.CreatedAt }},
			{Title: "Status", Width: 8, Sort: "status", Cell: func(v model.Vacancy) string { return Capitalize(string(v.Status)) }},
		},
	}
}

// Requests lists candidates' applications for vacancies.
func Requests() List[model.Application] {
	return List[model.Application]{
		Screen:   ScreenRequests,
		Noun:     "request",
		Label:    func(a model.Application) string { return a.Applicant.Name },
		Workflow: model.ApplicationWorkflow,
		Tabs:     model.ApplicationWorkflow.Values(),
		Schema: query.Schema[model.Application]{
			ID:     func(a model.Application) string { return a.ID },
			Status: func(a model.Application) string { return string(a.Status) },
			SetStatus: func(a model.Application, s string) model.Application {
				a.Status = model.Status(s)
				return a
			},
			Search: []func(model.Application) string{
				func(a model.Application) string { return a.Applicant.Name },
				func(a model.Application) string { return a.Applicant.Email },
				func(a model.Application) string { return a.JobTitle },
				func(a model.Application) string { return strings.Join(a.Applicant.Skills, " ") },
			},
			Fields: []query.Field[model.Application]{
				query.TextField("applicant", func(a model.Application) string { return a.Applicant.Name }),
				query.TextField("job", func(a model.Application) string { return a.JobTitle }),
				query.TextField("applied", func(a model.Application) string { return a.AppliedAt }),
				query.TextField("status", func(a model.Application) string { return string(a.Status) }),
			},
		},
		Columns: []Column[model.Application]{
			{Title: "Applicant", Width: 18, Sort: "applicant", Cell: func(a model.Application) string { return a.Applicant.Name }},
			{Title: "Job", Width: 26, Sort: "job", Cell: func(a model.Application) string { return a.JobTitle }},
			{Title: "Applied", Width: 12, Sort: "applied", Cell: func(a model.Application) string { return a.AppliedAt }},
			{Title: "Skills", Width: 28, Cell: func(a model.Application) string { return strings.Join(a.Applicant.Skills, ", ") }},
			{Title: "Status", Width: 10, Sort: "status", Cell: func(a model.Application) string { return Capitalize(string(a.Status)) }},
		},
	}
}
