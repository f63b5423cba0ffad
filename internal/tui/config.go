package tui

import (
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Clock         admin.Clock
	Screen        admin.Screen
	Data          model.Dataset
	ToastDuration time.Duration
	Width         int
	Height        int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Clock:         time.Now,
		Screen:        admin.ScreenDashboard,
		ToastDuration: 3 * time.Second,
		Width:         120,
		Height:        32,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithDataset sets the collections the console starts with.
func WithDataset(ds model.Dataset) Option {
	return func(c *Config) {
		c.Data = ds
	}
}

// WithClock sets the clock used for relative times and date windows.
func WithClock(clock admin.Clock) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// WithScreen sets the screen shown at startup.
func WithScreen(screen admin.Screen) Option {
	return func(c *Config) {
		c.Screen = screen
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithToastDuration sets how long notifications stay in the status bar.
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) {
		c.ToastDuration = d
	}
}
