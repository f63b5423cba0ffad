package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the console and blocks until the operator quits or ctx is cancelled.
// It returns the final model, whose Dataset holds the session's edits.
func Run(ctx context.Context, opts ...Option) (Model, error) {
	m := New(opts...)
	slog.Info("starting console", "screen", m.Screen(), "users", len(m.users.Records()))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return m, ctx.Err()
		}
		return m, fmt.Errorf("console failed: %w", err)
	}

	if fm, ok := final.(Model); ok {
		m = fm
	}
	slog.Info("console closed", "screen", m.Screen())
	return m, nil
}
