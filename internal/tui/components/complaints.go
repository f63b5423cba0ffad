package components

import (
	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
)

var complaintActions = []ActionKey{
	{Key: "a", Label: "Verify", Action: model.ActionVerify},
	{Key: "r", Label: "Reject", Action: model.ActionReject},
}

// ComplaintsModel is the complaint review screen.
type ComplaintsModel = ScreenModel[model.Complaint]

// NewComplaintsModel creates the complaints screen.
func NewComplaintsModel(complaints []model.Complaint, clock admin.Clock, theme themes.Theme) ComplaintsModel {
	list := NewListModel(admin.Complaints(clock), complaints, theme)
	details := func(c model.Complaint) DetailDialog {
		return NewDetailDialog(c.Title, []Detail{
			{Label: "Reporter", Value: c.Reporter},
			{Label: "Filed", Value: admin.Ago(c.FiledAt, clock.Now())},
			{Label: "Status", Value: admin.Capitalize(string(c.Status)), Style: badge(theme, c.Status)},
			{Label: "Details", Value: c.Description},
		}, theme).WithFooter(actionFooter(model.ComplaintWorkflow, c.Status, complaintActions))
	}
	return NewScreenModel(list, details, theme, complaintActions...)
}
