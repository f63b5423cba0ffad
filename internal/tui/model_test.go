package tui

import (
	"testing"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/seed"
	"github.com/Veraticus/jobdesk/internal/tui/components"
	tuitest "github.com/Veraticus/jobdesk/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 4, 8, 15, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	ds, err := seed.Default(testNow)
	require.NoError(t, err)

	base := []Option{
		WithDataset(ds),
		WithClock(tuitest.FixedClock(testNow)),
		WithSize(140, 40),
		WithToastDuration(time.Millisecond),
	}
	return New(append(base, opts...)...)
}

// send feeds msgs through the root model.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, admin.ScreenDashboard, m.Screen())
	assert.Nil(t, m.Init())
	_, ok := m.Toast()
	assert.False(t, ok)
	assert.Len(t, m.Dataset().Users, 7)
	assert.Len(t, m.Dataset().Monthly, 7)
	assert.Equal(t, "7", m.dashboard.Data().Cards[0].Value)
}

func TestNew_WithScreen(t *testing.T) {
	m := newTestModel(t, WithScreen(admin.ScreenRequests))
	assert.Equal(t, admin.ScreenRequests, m.Screen())
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress("]"))
	assert.Equal(t, admin.ScreenUsers, m.Screen())

	m, _ = send(t, m, tuitest.KeyPress("]"), tuitest.KeyPress("]"))
	assert.Equal(t, admin.ScreenReports, m.Screen())

	m, _ = send(t, m, tuitest.KeyPress("["), tuitest.KeyPress("["), tuitest.KeyPress("["))
	assert.Equal(t, admin.ScreenDashboard, m.Screen())

	m, _ = send(t, m, tuitest.KeyPress("["))
	assert.Equal(t, admin.ScreenSettings, m.Screen())
}

func TestModel_Quit(t *testing.T) {
	t.Run("q quits", func(t *testing.T) {
		m := newTestModel(t)
		m, cmd := send(t, m, tuitest.KeyPress("q"))
		assert.True(t, isQuit(cmd))
		assert.Empty(t, m.View())
	})

	t.Run("q is typed into search", func(t *testing.T) {
		m := newTestModel(t, WithScreen(admin.ScreenUsers))
		m, _ = send(t, m, tuitest.KeyPress("/"), tuitest.KeyPress("q"))
		assert.False(t, m.quitting)
		assert.Equal(t, "q", m.users.List().State().Search)

		m, _ = send(t, m, tuitest.KeyPress("]"))
		assert.Equal(t, admin.ScreenUsers, m.Screen())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newTestModel(t, WithScreen(admin.ScreenVacancies))
		m, _ = send(t, m, tuitest.KeyPress("n"))
		require.True(t, m.capturing())

		_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.True(t, isQuit(cmd))
	})
}

func TestModel_Toasts(t *testing.T) {
	m := newTestModel(t, WithScreen(admin.ScreenUsers))

	m, cmd := send(t, m, tuitest.KeyPress("a"))
	msgs := tuitest.Drain(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(components.ToastMsg)
	require.True(t, ok)

	m, cmd = send(t, m, toast)
	shown, ok := m.Toast()
	require.True(t, ok)
	assert.Equal(t, `User "Thomas Anderson" is now approved`, shown.Text)
	assert.Contains(t, tuitest.Plain(m.View()), "is now approved")

	expired := tuitest.Drain(cmd)
	require.Len(t, expired, 1)

	t.Run("a newer toast survives the old expiry", func(t *testing.T) {
		newer, _ := send(t, m, components.ToastMsg{Text: "newer"})
		newer, _ = send(t, newer, expired[0])
		shown, ok := newer.Toast()
		require.True(t, ok)
		assert.Equal(t, "newer", shown.Text)
	})

	m, _ = send(t, m, expired[0])
	_, ok = m.Toast()
	assert.False(t, ok)
}

func TestNew_DashboardReadyOnAnyStartScreen(t *testing.T) {
	for _, screen := range admin.Screens() {
		t.Run(string(screen), func(t *testing.T) {
			m := newTestModel(t, WithScreen(screen))
			require.Len(t, m.dashboard.Data().Cards, 4)
			assert.Equal(t, "7", m.dashboard.Data().Cards[0].Value)
		})
	}
}

func TestModel_DashboardReflectsEdits(t *testing.T) {
	m := newTestModel(t, WithScreen(admin.ScreenUsers))
	assert.Equal(t, "4 pending approval", m.dashboard.Data().Cards[0].Change)

	m, _ = send(t, m, tuitest.KeyPress("a"), tuitest.KeyPress("["))
	require.Equal(t, admin.ScreenDashboard, m.Screen())
	assert.Equal(t, "3 pending approval", m.dashboard.Data().Cards[0].Change)
	assert.Equal(t, model.StatusApproved, m.Dataset().Users[0].Status)
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress("?"))
	require.True(t, m.showHelp)
	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "JobDesk - Help")
	assert.Contains(t, view, "next screen")

	m, cmd := send(t, m, tuitest.KeyPress("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.showHelp)

	m, _ = send(t, m, tuitest.KeyEsc())
	assert.False(t, m.showHelp)
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, WithScreen(admin.ScreenVacancies))

	view := tuitest.Plain(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "JobDesk Admin", "Dashboard", "Users", "Complaints", "Reports", "Job Vacancies", "Job Requests", "Settings"), view)
	assert.Contains(t, view, "Senior Frontend Developer")
	assert.Contains(t, view, "? Help")
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, tuitest.WindowSize(90, 30))
	assert.Nil(t, cmd)
	assert.Equal(t, 90, m.width)
	assert.Equal(t, 30, m.height)
	assert.NotEmpty(t, m.View())
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 4)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Keys())
		}
	}
}
