package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "dashboard", cfg.UI.Screen)
	assert.Equal(t, 120, cfg.UI.Width)
	assert.Empty(t, cfg.Seed.Path)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `logging:
  level: debug
  format: json
seed:
  path: ~/seeds/demo.yaml
ui:
  screen: reports
  theme: catppuccin-mocha
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "reports", cfg.UI.Screen)
	assert.Equal(t, "catppuccin-mocha", cfg.UI.Theme)
	assert.NotContains(t, cfg.Seed.Path, "~")
	assert.True(t, filepath.IsAbs(cfg.Seed.Path))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"bad level", "logging.level", "shout"},
		{"bad format", "logging.format", "xml"},
		{"zero width", "ui.width", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("JOBDESK_TEST_DIR", "/tmp/jobdesk")

	assert.Empty(t, ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "seed.yaml"), ExpandPath("~/seed.yaml"))
	assert.Equal(t, "/tmp/jobdesk/seed.yaml", ExpandPath("$JOBDESK_TEST_DIR/seed.yaml"))
}

func TestDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "jobdesk"), dir)
}
