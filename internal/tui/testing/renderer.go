// Package testing provides test utilities for TUI components.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Updater is any component whose Update returns its own type.
type Updater[M any] interface {
	Update(tea.Msg) (M, tea.Cmd)
}

// Send feeds msgs to m in order and returns the final model and the last command.
func Send[M Updater[M]](m M, msgs ...tea.Msg) (M, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

// Drain runs cmd and returns the messages it produces, flattening batches.
// Only use it on commands that do not wait, such as toasts.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
