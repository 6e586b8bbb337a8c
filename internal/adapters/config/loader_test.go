package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/uw/internal/adapters/config"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "config.yaml", `
projects:
  workspace_directories: ["~/code", "/srv/projects"]
  ignore: ["*.bak", "archive"]
  shortcuts:
    alpha-service: alpha
  server_paths:
    alpha-service: services/api
  web_paths:
    alpha-service: ui
  default_paths:
    server: ["backend"]
update:
  jobs: 8
  task_timeout: 90s
  npm_command: ["pnpm", "install"]
  environment:
    MAVEN_OPTS: -Xmx1g
state_dir: ~/.local/state/uw
`)

	ws, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "code"), "/srv/projects"}, ws.Directories)
	assert.Equal(t, []string{"*.bak", "archive"}, ws.Ignore)
	assert.Equal(t, "alpha", ws.Shortcuts["alpha-service"])
	assert.Equal(t, "services/api", ws.ServerPaths["alpha-service"])
	assert.Equal(t, "ui", ws.WebPaths["alpha-service"])
	assert.Equal(t, []string{"backend"}, ws.DefaultServerPaths)
	assert.Equal(t, domain.DefaultWebPaths, ws.DefaultWebPaths)
	assert.Equal(t, 8, ws.Update.Jobs)
	assert.Equal(t, 90*time.Second, ws.Update.TaskTimeout)
	assert.Equal(t, []string{"pnpm", "install"}, ws.Update.NpmCommand)
	assert.Equal(t, domain.DefaultMavenCommand, ws.Update.MavenCommand)
	assert.Equal(t, "-Xmx1g", ws.Update.Environment["MAVEN_OPTS"])
	assert.Equal(t, filepath.Join(home, ".local/state/uw"), ws.StateDir)
}

func TestLoad_LegacyJSONWithComments(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  // carried over from the previous tool
  "projects": {
    "workspace_directory": "/work",
    "shortcuts": {"beta-app": "beta",},
    /* web component lives in a nested folder */
    "web_paths": {"beta-app": "frontend/app"},
  },
}`)

	ws, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/work"}, ws.Directories)
	assert.Equal(t, "beta", ws.Shortcuts["beta-app"])
	assert.Equal(t, "frontend/app", ws.WebPaths["beta-app"])
	assert.Equal(t, domain.DefaultMaxParallelJobs, ws.Update.Jobs)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "state"), ws.StateDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	t.Setenv("HOME", home)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	path := filepath.Join(t.TempDir(), "config.yaml")
	ws, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "workspaces")}, ws.Directories)
	assert.Equal(t, domain.DefaultServerPaths, ws.DefaultServerPaths)
	assert.Equal(t, domain.DefaultTaskTimeout, ws.Update.TaskTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "Malformed YAML", file: "config.yaml", content: "projects: [", wantErr: domain.ErrConfigParseFailed},
		{name: "Malformed JSON", file: "config.json", content: `{"projects": }`, wantErr: domain.ErrConfigParseFailed},
		{name: "Bad timeout", file: "config.yaml", content: "update:\n  task_timeout: soon\n", wantErr: domain.ErrConfigParseFailed},
		{name: "Unknown format", file: "config.toml", content: "jobs = 4", wantErr: domain.ErrUnsupportedConfigFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := config.NewLoader(nil).Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := config.NewLoader(nil).Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestDefaultPath(t *testing.T) {
	t.Run("Environment override", func(t *testing.T) {
		t.Setenv(config.EnvConfigPath, "/etc/uw.yaml")
		assert.Equal(t, "/etc/uw.yaml", config.DefaultPath())
	})

	t.Run("Legacy JSON", func(t *testing.T) {
		cfgHome := t.TempDir()
		t.Setenv(config.EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", cfgHome)
		require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, "uw"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(cfgHome, "uw", "config.json"), []byte("{}"), 0o600))

		assert.Equal(t, filepath.Join(cfgHome, "uw", "config.json"), config.DefaultPath())
	})

	t.Run("YAML default", func(t *testing.T) {
		cfgHome := t.TempDir()
		t.Setenv(config.EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", cfgHome)

		assert.Equal(t, filepath.Join(cfgHome, "uw", "config.yaml"), config.DefaultPath())
	})
}

func TestLoad_EmptyPathUsesDefaultLocation(t *testing.T) {
	path := writeConfig(t, "custom.yaml", "update:\n  jobs: 9\n")
	t.Setenv(config.EnvConfigPath, path)

	ws, err := config.NewLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, ws.Update.Jobs)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, config.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), config.ExpandHome("~/x"))
	assert.Equal(t, "~user/x", config.ExpandHome("~user/x"))
	assert.Equal(t, "/abs", config.ExpandHome("/abs"))
}
