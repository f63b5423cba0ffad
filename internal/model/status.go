// Package model defines the admin console's records and their status workflows.
package model

// Status is a record's lifecycle state. Each record type uses a closed subset.
type Status string

// Status constants.
const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusVerified      Status = "verified"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusActive        Status = "active"
	StatusClosed        Status = "closed"
	StatusAccepted      Status = "accepted"
)

// Action is an operator action that moves a record between statuses.
type Action string

// Actions offered by the list screens.
const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionVerify  Action = "verify"
	ActionAccept  Action = "accept"
	ActionToggle  Action = "toggle"
)

// Workflow lists a record type's statuses and the actions allowed from each.
type Workflow struct {
	moves    map[Status]map[Action]Status
	Statuses []Status
}

// Next returns the status reached by applying action from status.
func (w Workflow) Next(from Status, action Action) (Status, bool) {
	to, ok := w.moves[from][action]
	return to, ok
}

// Actions returns the actions available from status, in a stable order.
func (w Workflow) Actions(from Status) []Action {
	var out []Action
	for _, a := range []Action{ActionApprove, ActionVerify, ActionAccept, ActionReject, ActionToggle} {
		if _, ok := w.moves[from][a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Valid reports whether status belongs to the workflow.
func (w Workflow) Valid(status Status) bool {
	for _, s := range w.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Values returns the statuses as plain strings.
func (w Workflow) Values() []string {
	out := make([]string, len(w.Statuses))
	for i, s := range w.Statuses {
		out[i] = string(s)
	}
	return out
}

// UserWorkflow governs registration approval.
var UserWorkflow = Workflow{
	Statuses: []Status{StatusPending, StatusApproved, StatusRejected},
	moves: map[Status]map[Action]Status{
		StatusPending: {ActionApprove: StatusApproved, ActionReject: StatusRejected},
	},
}

// ComplaintWorkflow governs complaint review.
var ComplaintWorkflow = Workflow{
	Statuses: []Status{StatusPending, StatusVerified, StatusRejected},
	moves: map[Status]map[Action]Status{
		StatusPending: {ActionVerify: StatusVerified, ActionReject: StatusRejected},
	},
}

// ReportWorkflow has no operator actions; reports are read-only.
var ReportWorkflow = Workflow{
	Statuses: []Status{StatusPending, StatusInvestigating, StatusResolved},
}

// VacancyWorkflow toggles a posting between active and closed.
var VacancyWorkflow = Workflow{
	Statuses: []Status{StatusActive, StatusClosed},
	moves: map[Status]map[Action]Status{
		StatusActive: {ActionToggle: StatusClosed},
		StatusClosed: {ActionToggle: StatusActive},
	},
}

// ApplicationWorkflow governs job request review.
var ApplicationWorkflow = Workflow{
	Statuses: []Status{StatusPending, StatusAccepted, StatusRejected},
	moves: map[Status]map[Action]Status{
		StatusPending: {ActionAccept: StatusAccepted, ActionReject: StatusRejected},
	},
}
