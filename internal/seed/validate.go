package seed

import (
	"fmt"

	"github.com/Veraticus/jobdesk/internal/model"
)

// Validate checks that ids are unique per collection and every status belongs
// to its record type's workflow.
func Validate(ds model.Dataset) error {
	users := newChecker("users")
	for _, u := range ds.Users {
		users.id(u.ID)
		users.status(u.ID, model.UserWorkflow, u.Status)
		if u.Role != model.RoleUser && u.Role != model.RoleManager {
			users.fail("%s: unknown role %q", u.ID, u.Role)
		}
	}

	complaints := newChecker("complaints")
	for _, c := range ds.Complaints {
		complaints.id(c.ID)
		complaints.status(c.ID, model.ComplaintWorkflow, c.Status)
	}

	reports := newChecker("reports")
	for _, r := range ds.Reports {
		reports.id(r.ID)
		reports.status(r.ID, model.ReportWorkflow, r.Status)
		if r.Audience != model.AudienceUser && r.Audience != model.AudienceManager {
			reports.fail("%s: unknown audience %q", r.ID, r.Audience)
		}
		switch r.Priority {
		case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		default:
			reports.fail("%s: unknown priority %q", r.ID, r.Priority)
		}
	}

	vacancies := newChecker("vacancies")
	for _, v := range ds.Vacancies {
		vacancies.id(v.ID)
		vacancies.status(v.ID, model.VacancyWorkflow, v.Status)
		if v.Applicants < 0 {
			vacancies.fail("%s: negative applicant count", v.ID)
		}
	}

	applications := newChecker("applications")
	for _, a := range ds.Applications {
		applications.id(a.ID)
		applications.status(a.ID, model.ApplicationWorkflow, a.Status)
	}

	for _, c := range []*checker{users, complaints, reports, vacancies, applications} {
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

// checker records the first problem found in one collection.
type checker struct {
	err  error
	seen map[string]bool
	name string
}

func newChecker(name string) *checker {
	return &checker{name: name, seen: make(map[string]bool)}
}

func (c *checker) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s: %s", ErrInvalidSeed, c.name, fmt.Sprintf(format, args...))
	}
}

func (c *checker) id(id string) {
	switch {
	case id == "":
		c.fail("record with empty id")
	case c.seen[id]:
		c.fail("duplicate id %q", id)
	}
	c.seen[id] = true
}

func (c *checker) status(id string, wf model.Workflow, status model.Status) {
	if !wf.Valid(status) {
		c.fail("%s: status %q not one of %v", id, status, wf.Values())
	}
}
