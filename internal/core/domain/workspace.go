package domain

import "time"

// DefaultServerPaths are tried, in order, when a project has no explicit server path.
var DefaultServerPaths = []string{"java/serverJava", "serverJava", "backend", "server"}

// DefaultWebPaths are tried, in order, when a project has no explicit web path.
var DefaultWebPaths = []string{"webapp", "webApp", "web", "frontend", "client"}

// DefaultMavenCommand refreshes Maven dependencies.
var DefaultMavenCommand = []string{"mvn", "dependency:resolve", "dependency:resolve-sources", "-q"}

// DefaultNpmCommand refreshes npm packages.
var DefaultNpmCommand = []string{"npm", "install", "--silent"}

// Workspace is the loaded configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Workspace struct {
	// Directories are scanned for project directories.
	Directories []string
	// Ignore holds glob patterns matched against project directory names.
	Ignore []string
	// Shortcuts maps full project names to short aliases.
	Shortcuts map[string]string
	// ServerPaths maps full project names to a server subpath.
	ServerPaths map[string]string
	// WebPaths maps full project names to a web subpath.
	WebPaths map[string]string
	// DefaultServerPaths are tried when a project has no ServerPaths entry.
	DefaultServerPaths []string
	// DefaultWebPaths are tried when a project has no WebPaths entry.
	DefaultWebPaths []string
	// Update holds update orchestration settings.
	Update UpdateSettings
	// StateDir holds the run history.
	StateDir string
}

// UpdateSettings configures the updater.
type UpdateSettings struct {
	Jobs         int
	TaskTimeout  time.Duration
	MavenCommand []string
	NpmCommand   []string
	Environment  map[string]string
}

// NewWorkspace returns a workspace populated with defaults.
func NewWorkspace() *Workspace {
	return &Workspace{
		Directories:        []string{"~/workspaces"},
		Shortcuts:          map[string]string{},
		ServerPaths:        map[string]string{},
		WebPaths:           map[string]string{},
		DefaultServerPaths: append([]string(nil), DefaultServerPaths...),
		DefaultWebPaths:    append([]string(nil), DefaultWebPaths...),
		Update: UpdateSettings{
			Jobs:         DefaultMaxParallelJobs,
			TaskTimeout:  DefaultTaskTimeout,
			MavenCommand: append([]string(nil), DefaultMavenCommand...),
			NpmCommand:   append([]string(nil), DefaultNpmCommand...),
			Environment:  map[string]string{},
		},
	}
}

// Project is a resolved workspace project.
type Project struct {
	Name       string
	Shortcut   string
	Path       string
	ServerPath string
	WebPath    string
}

// HasComponent reports whether the project declares the given component.
// Every project has a main component.
func (p Project) HasComponent(kind ComponentKind) bool {
	switch kind {
	case ComponentServer:
		return p.ServerPath != ""
	case ComponentWeb:
		return p.WebPath != ""
	default:
		return true
	}
}
