package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/jobdesk/internal/common"
	tuitest "github.com/Veraticus/jobdesk/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a throwaway config file.
func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLogs(t, config, args...)
	return out, err
}

// runWithLogs is run that also returns what the command wrote to stderr.
func runWithLogs(t *testing.T, config string, args ...string) (string, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.ExecuteContext(context.Background())
	return tuitest.StripANSI(out.String()), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "jobdesk dev\n", out)
}

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "pending users",
			args:     []string{"list", "users", "--tab", "pending"},
			contains: []string{"Users", "Thomas Anderson", "Sarah Johnson", "Pending: 4", "Approved: 2", "Rejected: 1"},
			excludes: []string{"James Wilson"},
		},
		{
			name:     "managers only",
			args:     []string{"list", "users", "--filter", "manager"},
			contains: []string{"Emily Clark", "Jessica Brown", "Pending: 2"},
			excludes: []string{"Thomas Anderson"},
		},
		{
			name:     "manager reports",
			args:     []string{"list", "reports", "--tab", "manager", "--search", "ACCESS"},
			contains: []string{"Dashboard Access", "Linda Brown", "User: 0", "Manager: 1"},
			excludes: []string{"Account Issue"},
		},
		{
			name:     "screen names ignore case",
			args:     []string{"list", "Vacancies", "--sort", "applicants", "--desc"},
			contains: []string{"Job Vacancies", "Project Manager", "Senior Frontend Developer", "UI/UX Designer"},
		},
		{
			name:     "no matches",
			args:     []string{"list", "requests", "--search", "nobody"},
			contains: []string{"No matching records.", "Pending: 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestList_SortOrder(t *testing.T) {
	out, err := run(t, "", "list", "vacancies", "--sort", "applicants", "--desc")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out, "Project Manager", "Senior Frontend Developer", "UI/UX Designer"), out)
}

func TestList_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown screen", []string{"list", "payroll"}, common.ErrUnknownScreen},
		{"screen without a list", []string{"list", "settings"}, common.ErrUnknownScreen},
		{"unknown tab", []string{"list", "users", "--tab", "archived"}, common.ErrInvalidQuery},
		{"unknown filter", []string{"list", "users", "--filter", "admin"}, common.ErrInvalidQuery},
		{"unknown sort field", []string{"list", "complaints", "--sort", "salary"}, common.ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestList_SeedFromConfig(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`users:
  - {id: "1", name: Ada Lovelace, email: ada@example.com, role: manager, status: approved, age: 1h}
`), 0o600))

	out, err := run(t, "seed:\n  path: "+seedPath+"\n", "list", "users")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Pending: 0")
	assert.Contains(t, out, "Approved: 1")
	assert.NotContains(t, out, "Thomas Anderson")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "logging:\n  format: xml\n", "version")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, common.UserMessage(err), "Invalid configuration")
}

func TestExport(t *testing.T) {
	t.Run("single screen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pending.csv")
		out, err := run(t, "", "export", "users", "--tab", "pending", "--out", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Exported 4 users rows")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, tuitest.ContainsInOrder(string(data), "Name,Email,Phone,Role,Registered,Status", "Thomas Anderson", "Sarah Johnson"))
	})

	t.Run("all screens", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports")
		out, err := run(t, "", "export", "--all", "--out", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Writing 5 lists to "+dir)

		for _, name := range []string{"users", "complaints", "reports", "vacancies", "requests"} {
			assert.FileExists(t, filepath.Join(dir, name+".csv"))
		}
	})

	t.Run("no matches writes header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "none.csv")
		out, err := run(t, "", "export", "vacancies", "--search", "astronaut", "--out", path)
		require.NoError(t, err)
		assert.Contains(t, out, "No vacancies matched")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Title,Department,Location,Applicants,Created,Status\n", string(data))
	})

	t.Run("logs each export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.csv")
		_, logs, err := runWithLogs(t, "", "export", "users", "--tab", "pending", "--out", path)
		require.NoError(t, err)
		assert.Contains(t, logs, `msg="exported list"`)
		assert.Contains(t, logs, "screen=users")
		assert.Contains(t, logs, "rows=4")
	})

	t.Run("logs failed export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "users.csv")
		_, logs, err := runWithLogs(t, "", "export", "users", "--out", path)
		require.Error(t, err)
		assert.Contains(t, logs, "level=ERROR")
		assert.Contains(t, logs, `msg="export failed"`)
	})

	t.Run("all rejects query flags", func(t *testing.T) {
		for _, flags := range [][]string{
			{"--search", "john"},
			{"--tab", "pending"},
			{"--sort", "title"},
			{"--desc"},
		} {
			dir := t.TempDir()
			args := append([]string{"export", "--all", "--out", dir}, flags...)
			_, err := run(t, "", args...)
			require.Error(t, err, "flags %v", flags)
			assert.ErrorIs(t, err, common.ErrInvalidQuery)
			assert.Contains(t, common.UserMessage(err), "unfiltered")
			assert.NoFileExists(t, filepath.Join(dir, "users.csv"))
		}
	})

	t.Run("requires out", func(t *testing.T) {
		_, err := run(t, "", "export", "users")
		assert.ErrorIs(t, err, common.ErrInvalidQuery)
	})

	t.Run("screen or all", func(t *testing.T) {
		_, err := run(t, "", "export", "users", "--all", "--out", t.TempDir())
		assert.ErrorIs(t, err, common.ErrInvalidQuery)

		_, err = run(t, "", "export", "--out", t.TempDir())
		assert.ErrorIs(t, err, common.ErrInvalidQuery)
	})
}
