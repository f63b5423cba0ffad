package components

import (
	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
)

var userActions = []ActionKey{
	{Key: "a", Label: "Approve", Action: model.ActionApprove},
	{Key: "r", Label: "Reject", Action: model.ActionReject},
}

// UsersModel is the registration approval screen.
type UsersModel = ScreenModel[model.User]

// NewUsersModel creates the users screen.
func NewUsersModel(users []model.User, clock admin.Clock, theme themes.Theme) UsersModel {
	list := NewListModel(admin.Users(clock), users, theme)
	details := func(u model.User) DetailDialog {
		return NewDetailDialog(u.Name, []Detail{
			{Label: "Email", Value: u.Email},
			{Label: "Phone", Value: u.Phone},
			{Label: "Role", Value: admin.Capitalize(string(u.Role))},
			{Label: "Registered", Value: admin.Ago(u.RegisteredAt, clock.Now())},
			{Label: "Status", Value: admin.Capitalize(string(u.Status)), Style: badge(theme, u.Status)},
		}, theme).WithFooter(actionFooter(model.UserWorkflow, u.Status, userActions))
	}
	return NewScreenModel(list, details, theme, userActions...)
}
