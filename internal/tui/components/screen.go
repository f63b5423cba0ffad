package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ActionKey binds a key to a workflow action.
type ActionKey struct {
	Key    string
	Label  string
	Action model.Action
}

// ScreenModel is a list screen: the list plus a detail dialog and workflow action keys.
type ScreenModel[T any] struct {
	theme   themes.Theme
	details func(T) DetailDialog
	dialog  *DetailDialog
	actions []ActionKey
	list    ListModel[T]
}

// NewScreenModel wraps list with a detail dialog and action keys.
func NewScreenModel[T any](list ListModel[T], details func(T) DetailDialog, theme themes.Theme, actions ...ActionKey) ScreenModel[T] {
	hints := []string{"[Enter] Details"}
	for _, a := range actions {
		hints = append(hints, fmt.Sprintf("[%s] %s", a.Key, a.Label))
	}
	list.SetHints(hints...)

	return ScreenModel[T]{
		theme:   theme,
		details: details,
		actions: actions,
		list:    list,
	}
}

// List returns the underlying list.
func (m ScreenModel[T]) List() ListModel[T] {
	return m.list
}

// Records returns the screen's collection.
func (m ScreenModel[T]) Records() []T {
	return m.list.Records()
}

// Capturing reports whether key presses belong to the search input or a dialog.
func (m ScreenModel[T]) Capturing() bool {
	return m.list.Searching() || m.dialog != nil
}

// DialogOpen reports whether the detail dialog is shown.
func (m ScreenModel[T]) DialogOpen() bool {
	return m.dialog != nil
}

// Resize sets the space available to the screen.
func (m *ScreenModel[T]) Resize(width, height int) {
	m.list.Resize(width, height)
}

// Update handles messages.
func (m ScreenModel[T]) Update(msg tea.Msg) (ScreenModel[T], tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.dialog != nil && isKey {
		if cmd, ok := m.act(keyMsg.String()); ok {
			m.dialog = nil
			return m, cmd
		}
		d, cmd := m.dialog.Update(msg)
		if d.Closed() {
			m.dialog = nil
		} else {
			m.dialog = &d
		}
		return m, cmd
	}

	if isKey && !m.list.Searching() {
		if cmd, ok := m.act(keyMsg.String()); ok {
			return m, cmd
		}
		if keyMsg.String() == "enter" {
			if r, ok := m.list.Selected(); ok && m.details != nil {
				d := m.details(r)
				m.dialog = &d
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *ScreenModel[T]) act(key string) (tea.Cmd, bool) {
	for _, a := range m.actions {
		if a.Key == key {
			return m.list.Act(a.Action), true
		}
	}
	return nil, false
}

// View renders the list, or the dialog when one is open.
func (m ScreenModel[T]) View() string {
	if m.dialog != nil {
		return lipgloss.Place(m.list.width, m.list.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}
	return m.list.View()
}

// actionFooter renders the dialog hints for the actions allowed from status.
func actionFooter(wf model.Workflow, status model.Status, keys []ActionKey) string {
	var hints []string
	for _, a := range keys {
		if _, ok := wf.Next(status, a.Action); ok {
			hints = append(hints, fmt.Sprintf("[%s] %s", a.Key, a.Label))
		}
	}
	hints = append(hints, "[Esc] Close")
	return strings.Join(hints, "  ")
}

func badge(theme themes.Theme, status model.Status) *lipgloss.Style {
	s := theme.Badge(status)
	return &s
}
