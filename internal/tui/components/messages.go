package components

import (
	"github.com/Veraticus/jobdesk/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// ToastLevel colors a toast.
type ToastLevel int

// Toast levels.
const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// ToastMsg asks the shell to show a short notification in the status bar.
type ToastMsg struct {
	Text  string
	Level ToastLevel
}

// Toast returns a command that emits a ToastMsg.
func Toast(level ToastLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Level: level, Text: text}
	}
}

func toastLevel(s model.Status) ToastLevel {
	switch s {
	case model.StatusRejected, model.StatusClosed:
		return ToastError
	case model.StatusPending, model.StatusInvestigating:
		return ToastInfo
	default:
		return ToastSuccess
	}
}
