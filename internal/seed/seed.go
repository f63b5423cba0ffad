// Package seed decodes the console's starting data from a YAML document.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/jobdesk/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// ErrInvalidSeed is returned when a seed document breaks a collection invariant.
var ErrInvalidSeed = errors.New("invalid seed data")

type document struct {
	Users        []userRecord        `yaml:"users"`
	Complaints   []complaintRecord   `yaml:"complaints"`
	Reports      []reportRecord      `yaml:"reports"`
	Vacancies    []vacancyRecord     `yaml:"vacancies"`
	Applications []applicationRecord `yaml:"applications"`
	Monthly      []monthlyRecord     `yaml:"monthly"`
}

type userRecord struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Email  string        `yaml:"email"`
	Phone  string        `yaml:"phone"`
	Role   string        `yaml:"role"`
	Status string        `yaml:"status"`
	Age    time.Duration `yaml:"age"`
}

type complaintRecord struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Reporter    string        `yaml:"reporter"`
	Status      string        `yaml:"status"`
	Age         time.Duration `yaml:"age"`
}

type reportRecord struct {
	ID         string `yaml:"id"`
	Audience   string `yaml:"audience"`
	Type       string `yaml:"type"`
	ReportedBy string `yaml:"reported_by"`
	Status     string `yaml:"status"`
	Date       string `yaml:"date"`
	Priority   string `yaml:"priority"`
}

type vacancyRecord struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Department   string `yaml:"department"`
	Location     string `yaml:"location"`
	Status       string `yaml:"status"`
	Requirements string `yaml:"requirements"`
	CreatedAt    string `yaml:"created_at"`
	Applicants   int    `yaml:"applicants"`
}

type applicantRecord struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone"`
	Experience   string   `yaml:"experience"`
	Education    string   `yaml:"education"`
	Portfolio    string   `yaml:"portfolio"`
	Availability string   `yaml:"availability"`
	Skills       []string `yaml:"skills"`
}

type applicationRecord struct {
	ID        string          `yaml:"id"`
	JobTitle  string          `yaml:"job_title"`
	AppliedAt string          `yaml:"applied_at"`
	Status    string          `yaml:"status"`
	Applicant applicantRecord `yaml:"applicant"`
}

type monthlyRecord struct {
	Month      string `yaml:"month"`
	Users      int    `yaml:"users"`
	Managers   int    `yaml:"managers"`
	Complaints int    `yaml:"complaints"`
}

// Default decodes the embedded seed document.
func Default(now time.Time) (model.Dataset, error) {
	return Parse(defaultDocument, now)
}

// Load decodes the seed document at path. An empty path loads the embedded default.
func Load(path string, now time.Time) (model.Dataset, error) {
	if path == "" {
		return Default(now)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	ds, err := Parse(data, now)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a seed document. Relative ages are resolved against now.
func Parse(data []byte, now time.Time) (model.Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	ds := model.Dataset{
		Users:        make([]model.User, 0, len(doc.Users)),
		Complaints:   make([]model.Complaint, 0, len(doc.Complaints)),
		Reports:      make([]model.Report, 0, len(doc.Reports)),
		Vacancies:    make([]model.Vacancy, 0, len(doc.Vacancies)),
		Applications: make([]model.Application, 0, len(doc.Applications)),
		Monthly:      make([]model.MonthlyActivity, 0, len(doc.Monthly)),
	}

	for _, u := range doc.Users {
		ds.Users = append(ds.Users, model.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			Role:         model.Role(u.Role),
			Status:       model.Status(u.Status),
			RegisteredAt: now.Add(-u.Age),
		})
	}

	for _, c := range doc.Complaints {
		ds.Complaints = append(ds.Complaints, model.Complaint{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Reporter:    c.Reporter,
			Status:      model.Status(c.Status),
			FiledAt:     now.Add(-c.Age),
		})
	}

	for _, r := range doc.Reports {
		ds.Reports = append(ds.Reports, model.Report{
			ID:         r.ID,
			Audience:   model.Audience(r.Audience),
			Type:       r.Type,
			ReportedBy: r.ReportedBy,
			Status:     model.Status(r.Status),
			Date:       r.Date,
			Priority:   model.Priority(r.Priority),
		})
	}

	for _, v := range doc.Vacancies {
		ds.Vacancies = append(ds.Vacancies, model.Vacancy{
			ID:           v.ID,
			Title:        v.Title,
			Department:   v.Department,
			Location:     v.Location,
			Status:       model.Status(v.Status),
			Requirements: v.Requirements,
			CreatedAt:    v.CreatedAt,
			Applicants:   v.Applicants,
		})
	}

	for _, a := range doc.Applications {
		ds.Applications = append(ds.Applications, model.Application{
			ID:        a.ID,
			JobTitle:  a.JobTitle,
			AppliedAt: a.AppliedAt,
			Status:    model.Status(a.Status),
			Applicant: model.Applicant{
				ID:           a.Applicant.ID,
				Name:         a.Applicant.Name,
				Email:        a.Applicant.Email,
				Phone:        a.Applicant.Phone,
				Experience:   a.Applicant.Experience,
				Education:    a.Applicant.Education,
				Portfolio:    a.Applicant.Portfolio,
				Availability: a.Applicant.Availability,
				Skills:       a.Applicant.Skills,
			},
		})
	}

	for _, m := range doc.Monthly {
		ds.Monthly = append(ds.Monthly, model.MonthlyActivity(m))
	}

	if err := Validate(ds); err != nil {
		return model.Dataset{}, err
	}
	return ds, nil
}
