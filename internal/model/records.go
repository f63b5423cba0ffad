package model

import (
	"strings"
	"time"
)

// Role is a platform account type.
type Role string

// Roles.
const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

// Priority ranks a report.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Audience identifies who filed a report.
type Audience string

// Audiences.
const (
	AudienceUser    Audience = "user"
	AudienceManager Audience = "manager"
)

// User is a platform registration awaiting or past approval.
type User struct {
	RegisteredAt time.Time
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         Role
	Status       Status
}

// Complaint is a moderation complaint filed by a platform member.
type Complaint struct {
	FiledAt     time.Time
	ID          string
	Title       string
	Description string
	Reporter    string
	Status      Status
}

// Report is a support report raised by a user or a manager.
type Report struct {
	ID         string
	Audience   Audience
	Type       string
	ReportedBy string
	Status     Status
	// Date is an ISO YYYY-MM-DD string.
	Date     string
	Priority Priority
}

// Vacancy is a job posting managed by a manager.
type Vacancy struct {
	ID           string
	Title        string
	Department   string
	Location     string
	Status       Status
	Requirements string
	// CreatedAt is an ISO YYYY-MM-DD string.
	CreatedAt  string
	Applicants int
}

// Applicant is the profile attached to a job request.
type Applicant struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Experience   string
	Education    string
	Portfolio    string
	Availability string
	Skills       []string
}

// Initial returns the first letter of the applicant's name, used as an avatar.
func (a Applicant) Initial() string {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// Application is a candidate's request for a vacancy.
type Application struct {
	ID        string
	JobTitle  string
	Applicant Applicant
	// AppliedAt is an ISO YYYY-MM-DD string.
	AppliedAt string
	Status    Status
}

// MonthlyActivity is one month of dashboard chart data.
type MonthlyActivity struct {
	Month      string
	Users      int
	Managers   int
	Complaints int
}

// Dataset holds every collection the console works on.
type Dataset struct {
	Users        []User
	Complaints   []Complaint
	Reports      []Report
	Vacancies    []Vacancy
	Applications []Application
	Monthly      []MonthlyActivity
}
