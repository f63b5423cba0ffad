package components

import (
	"testing"

	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	tuitest "github.com/Veraticus/jobdesk/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersModel_Actions(t *testing.T) {
	m := NewUsersModel(testData(t).Users, testClock(), themes.Default)

	m, cmd := m.Update(tuitest.KeyPress("a"))
	toast := toastOf(t, cmd)
	assert.Equal(t, `User "Thomas Anderson" is now approved`, toast.Text)
	assert.Equal(t, ToastSuccess, toast.Level)

	m, cmd = m.Update(tuitest.KeyPress("r"))
	toast = toastOf(t, cmd)
	assert.Equal(t, `User "Emily Clark" is now rejected`, toast.Text)
	assert.Equal(t, ToastError, toast.Level)

	assert.Equal(t, 2, m.List().Counts()["pending"])
	assert.Equal(t, 3, m.List().Counts()["approved"])
	assert.Equal(t, 2, m.List().Counts()["rejected"])
}

func TestUsersModel_DetailDialog(t *testing.T) {
	m := NewUsersModel(testData(t).Users, testClock(), themes.Default)

	m, _ = m.Update(tuitest.KeyEnter())
	require.True(t, m.DialogOpen())
	assert.True(t, m.Capturing())

	view := tuitest.Plain(m.View())
	assert.True(t, tuitest.ContainsInOrder(view,
		"Thomas Anderson",
		"Email:", "thomas@example.com",
		"Role:", "User",
		"Registered:", "2 hours ago",
		"[a] Approve", "[r] Reject", "[Esc] Close",
	), view)

	m, _ = m.Update(tuitest.KeyEsc())
	assert.False(t, m.DialogOpen())
	assert.False(t, m.Capturing())
	assert.Len(t, m.List().Visible(), 4)
}

func TestUsersModel_ActFromDialog(t *testing.T) {
	m := NewUsersModel(testData(t).Users, testClock(), themes.Default)

	m, _ = m.Update(tuitest.KeyEnter())
	m, cmd := m.Update(tuitest.KeyPress("r"))

	assert.False(t, m.DialogOpen())
	assert.Equal(t, `User "Thomas Anderson" is now rejected`, toastOf(t, cmd).Text)
	assert.Equal(t, model.StatusRejected, m.Records()[0].Status)
}

func TestUsersModel_SearchSwallowsActionKeys(t *testing.T) {
	m := NewUsersModel(testData(t).Users, testClock(), themes.Default)

	m, _ = tuitest.Send(m, tuitest.KeyPress("/"), tuitest.KeyPress("a"))
	assert.True(t, m.Capturing())
	assert.Equal(t, "a", m.List().State().Search)
	for _, u := range m.Records() {
		if u.ID == "1" {
			assert.Equal(t, model.StatusPending, u.Status)
		}
	}
}

func TestComplaintsModel_Verify(t *testing.T) {
	m := NewComplaintsModel(testData(t).Complaints, testClock(), themes.Default)

	m, cmd := m.Update(tuitest.KeyPress("a"))
	assert.Equal(t, `Complaint "Inappropriate Content Reported" is now verified`, toastOf(t, cmd).Text)
	assert.Equal(t, 3, m.List().Counts()["verified"])

	m, _ = m.Update(tuitest.KeyTab())
	assert.Equal(t, "verified", m.List().Tab())

	_, cmd = m.Update(tuitest.KeyPress("r"))
	toast := toastOf(t, cmd)
	assert.Equal(t, ToastWarning, toast.Level)
	assert.Contains(t, toast.Text, "it is verified")
}

func TestReportsModel_ReadOnly(t *testing.T) {
	m := NewReportsModel(testData(t).Reports, themes.Default)

	require.Len(t, m.List().Visible(), 5)
	assert.Equal(t, "u1", m.List().Visible()[0].ID)
	assert.Equal(t, "u5", m.List().Visible()[4].ID)

	m, cmd := m.Update(tuitest.KeyPress("a"))
	assert.Nil(t, cmd)
	assert.Equal(t, model.StatusPending, m.Records()[0].Status)

	m, _ = m.Update(tuitest.KeyPress("f"))
	assert.Equal(t, "pending", m.List().State().Category)
	assert.Len(t, m.List().Visible(), 2)

	m, _ = m.Update(tuitest.KeyTab())
	assert.Equal(t, "manager", m.List().Tab())
	require.Len(t, m.List().Visible(), 1)
	assert.Equal(t, "Dashboard Access", m.List().Visible()[0].Type)

	m, _ = m.Update(tuitest.KeyEnter())
	require.True(t, m.DialogOpen())
	assert.Contains(t, tuitest.Plain(m.View()), "Linda Brown")
}

func TestRequestsModel(t *testing.T) {
	newModel := func(t *testing.T) RequestsModel {
		return NewRequestsModel(testData(t).Applications, themes.Default)
	}

	t.Run("send sms", func(t *testing.T) {
		m := newModel(t)
		_, cmd := m.Update(tuitest.KeyPress("s"))
		toast := toastOf(t, cmd)
		assert.Equal(t, "SMS sent to Jane Smith (+1234567890)", toast.Text)
		assert.Equal(t, ToastInfo, toast.Level)
	})

	t.Run("sms without selection", func(t *testing.T) {
		m := NewRequestsModel(nil, themes.Default)
		_, cmd := m.Update(tuitest.KeyPress("s"))
		assert.Equal(t, "No request selected", toastOf(t, cmd).Text)
	})

	t.Run("accept and reject", func(t *testing.T) {
		m := newModel(t)
		m, cmd := m.Update(tuitest.KeyPress("a"))
		assert.Equal(t, `Request "Jane Smith" is now accepted`, toastOf(t, cmd).Text)

		m, cmd = m.Update(tuitest.KeyPress("r"))
		assert.Equal(t, `Request "Mark Johnson" is now rejected`, toastOf(t, cmd).Text)
		assert.Empty(t, m.List().Visible())
		assert.Equal(t, 2, m.List().Counts()["accepted"])
	})

	t.Run("profile dialog", func(t *testing.T) {
		m := newModel(t)
		m, _ = m.Update(tuitest.KeyEnter())
		require.True(t, m.DialogOpen())

		view := tuitest.Plain(m.View())
		assert.True(t, tuitest.ContainsInOrder(view,
			"Jane Smith",
			"applied for Senior Frontend Developer on 2023-04-05",
			"jane@example.com",
			"7 years in frontend development",
			"[s] Send SMS",
		), view)

		m, cmd := m.Update(tuitest.KeyPress("s"))
		assert.True(t, m.DialogOpen())
		assert.Contains(t, toastOf(t, cmd).Text, "Jane Smith")
	})

	t.Run("search covers skills", func(t *testing.T) {
		m := newModel(t)
		m, _ = tuitest.Send(m, tuitest.KeyPress("/"))
		m, _ = tuitest.Send(m, tuitest.Type("figma")...)
		require.Len(t, m.List().Visible(), 1)
		assert.Equal(t, "Mark Johnson", m.List().Visible()[0].Applicant.Name)

		m, _ = m.Update(tuitest.KeyPress("s"))
		assert.True(t, m.Capturing())
		assert.Equal(t, "figmas", m.List().State().Search)
	})
}

func TestSettingsModel(t *testing.T) {
	m := NewSettingsModel(themes.Default)
	require.Len(t, m.Sections(), 2)
	assert.False(t, m.Sections()[0].Switches[0].On)

	m, cmd := m.Update(tuitest.KeyPress(" "))
	assert.Equal(t, "Auto-approve new users enabled", toastOf(t, cmd).Text)
	assert.True(t, m.Sections()[0].Switches[0].On)
	assert.False(t, DefaultSettings()[0].Switches[0].On)

	m, _ = tuitest.Send(m, tuitest.KeyTab(), tuitest.KeyPress("j"))
	m, cmd = m.Update(tuitest.KeyEnter())
	assert.Equal(t, "New complaints disabled", toastOf(t, cmd).Text)
	assert.False(t, m.Sections()[1].Switches[1].On)

	m, _ = tuitest.Send(m, tuitest.KeyPress("k"), tuitest.KeyPress("k"))
	m, cmd = m.Update(tuitest.KeyPress(" "))
	assert.Equal(t, "New user registrations disabled", toastOf(t, cmd).Text)

	_, cmd = m.Update(tuitest.KeyPress("s"))
	toast := toastOf(t, cmd)
	assert.Equal(t, "Notifications settings saved", toast.Text)
	assert.Equal(t, ToastSuccess, toast.Level)

	view := tuitest.Plain(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Settings", "General", "Notifications", "[ off ] New user registrations"), view)
}

func TestDashboardModel(t *testing.T) {
	m := NewDashboardModel(themes.Default)
	assert.Empty(t, m.Chart())

	m.SetData(testData(t), testNow)
	m.Resize(120, 40)
	assert.Equal(t, "Users", m.Chart())
	assert.Len(t, m.Data().Cards, 4)

	m, _ = m.Update(tuitest.KeyTab())
	assert.Equal(t, "Jobs", m.Chart())

	m, _ = tuitest.Send(m, tuitest.KeyShiftTab(), tuitest.KeyShiftTab())
	assert.Equal(t, "Complaints", m.Chart())

	view := tuitest.Plain(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Admin Dashboard", "Total Users", "Activity Overview"), view)
	assert.Contains(t, view, "Thomas Anderson")
	assert.Contains(t, view, "Inappropriate Content")
	assert.Contains(t, view, "Apr")
}
