// Package config provides the configuration loader for uw.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the default configuration location.
	EnvConfigPath = "UW_CONFIG"

	defaultDirName  = "uw"
	yamlConfigName  = "config.yaml"
	jsonConfigName  = "config.json"
	defaultStateDir = "state"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path, or at DefaultPath when path is
// empty. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Workspace, error) {
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.logger != nil {
				l.logger.Info("no configuration at " + path + ", using defaults")
			}
			ws := domain.NewWorkspace()
			ws.StateDir = filepath.Join(filepath.Dir(path), defaultStateDir)
			return expand(ws), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	file, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	ws, err := toWorkspace(file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if ws.StateDir == "" {
		ws.StateDir = filepath.Join(filepath.Dir(path), defaultStateDir)
	}
	return expand(ws), nil
}

// Parse decodes data according to the extension of path.
func Parse(path string, data []byte) (*File, error) {
	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
	default:
		return nil, zerr.With(domain.ErrUnsupportedConfigFormat, "path", path)
	}
	return &file, nil
}

// DefaultPath returns the configuration path used when none is given on the
// command line: $UW_CONFIG, then config.yaml in the user config directory,
// then a legacy config.json next to it.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandHome(p)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = ExpandHome("~/.config")
	}
	dir := filepath.Join(base, defaultDirName)

	yamlPath := filepath.Join(dir, yamlConfigName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	jsonPath := filepath.Join(dir, jsonConfigName)
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	return yamlPath
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func toWorkspace(file *File) (*domain.Workspace, error) {
	ws := domain.NewWorkspace()
	p := file.Projects

	switch {
	case len(p.WorkspaceDirectories) > 0:
		ws.Directories = p.WorkspaceDirectories
	case p.WorkspaceDirectory != "":
		ws.Directories = []string{p.WorkspaceDirectory}
	}
	ws.Ignore = p.Ignore
	maps.Copy(ws.Shortcuts, p.Shortcuts)
	maps.Copy(ws.ServerPaths, p.ServerPaths)
	maps.Copy(ws.WebPaths, p.WebPaths)
	if len(p.DefaultPaths.Server) > 0 {
		ws.DefaultServerPaths = p.DefaultPaths.Server
	}
	if len(p.DefaultPaths.Web) > 0 {
		ws.DefaultWebPaths = p.DefaultPaths.Web
	}

	u := file.Update
	if u.Jobs != 0 {
		ws.Update.Jobs = u.Jobs
	}
	if u.TaskTimeout != "" {
		d, err := time.ParseDuration(u.TaskTimeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid task_timeout"), "value", u.TaskTimeout)
		}
		ws.Update.TaskTimeout = d
	}
	if len(u.MavenCommand) > 0 {
		ws.Update.MavenCommand = u.MavenCommand
	}
	if len(u.NpmCommand) > 0 {
		ws.Update.NpmCommand = u.NpmCommand
	}
	maps.Copy(ws.Update.Environment, u.Environment)
	ws.StateDir = file.StateDir

	return ws, nil
}

func expand(ws *domain.Workspace) *domain.Workspace {
	for i, dir := range ws.Directories {
		ws.Directories[i] = ExpandHome(dir)
	}
	ws.StateDir = ExpandHome(ws.StateDir)
	return ws
}
