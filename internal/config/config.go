// Package config loads the console configuration from viper.
package config

import (
	"fmt"

	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/spf13/viper"
)

// Config is the console's runtime configuration.
type Config struct {
	Logging Logging
	Seed    Seed
	UI      UI
}

// Logging controls the slog handler.
type Logging struct {
	Level  string
	Format string
	// File receives log output while the TUI owns the terminal. Empty discards it.
	File string
}

// Seed points at an alternative seed document.
type Seed struct {
	Path string
}

// UI holds the console's display settings.
type UI struct {
	Theme  string
	Screen string
	Width  int
	Height int
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("seed.path", "")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.screen", "dashboard")
	v.SetDefault("ui.width", 120)
	v.SetDefault("ui.height", 32)
}

// Load reads the configuration from v and expands file paths.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: Logging{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Seed: Seed{
			Path: ExpandPath(v.GetString("seed.path")),
		},
		UI: UI{
			Theme:  v.GetString("ui.theme"),
			Screen: v.GetString("ui.screen"),
			Width:  v.GetInt("ui.width"),
			Height: v.GetInt("ui.height"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected later.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: ui size %dx%d", common.ErrInvalidConfig, c.UI.Width, c.UI.Height)
	}
	return nil
}
