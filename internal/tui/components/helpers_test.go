package components

import (
	"testing"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/seed"
	tuitest "github.com/Veraticus/jobdesk/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 4, 8, 15, 0, 0, 0, time.UTC)

func testClock() admin.Clock {
	return tuitest.FixedClock(testNow)
}

func testData(t *testing.T) model.Dataset {
	t.Helper()
	ds, err := seed.Default(testNow)
	require.NoError(t, err)
	return ds
}

// toastOf runs cmd and returns the single toast it emits.
func toastOf(t *testing.T, cmd tea.Cmd) ToastMsg {
	t.Helper()
	msgs := tuitest.Drain(cmd)
	require.Len(t, msgs, 1)
	toast, ok := msgs[0].(ToastMsg)
	require.True(t, ok, "expected ToastMsg, got %T", msgs[0])
	return toast
}
