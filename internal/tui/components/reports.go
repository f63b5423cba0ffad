package components

import (
	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
)

// ReportsModel is the read-only support report screen.
type ReportsModel = ScreenModel[model.Report]

// NewReportsModel creates the reports screen.
func NewReportsModel(reports []model.Report, theme themes.Theme) ReportsModel {
	list := NewListModel(admin.Reports(), reports, theme)
	details := func(r model.Report) DetailDialog {
		priority := theme.PriorityStyle(r.Priority)
		return NewDetailDialog(r.Type, []Detail{
			{Label: "Report", Value: r.ID},
			{Label: "From", Value: admin.Capitalize(string(r.Audience))},
			{Label: "Reported by", Value: r.ReportedBy},
			{Label: "Date", Value: r.Date},
			{Label: "Priority", Value: admin.Capitalize(string(r.Priority)), Style: &priority},
			{Label: "Status", Value: admin.Capitalize(string(r.Status)), Style: badge(theme, r.Status)},
		}, theme)
	}
	return NewScreenModel(list, details, theme)
}
