package config

// File is the on-disk configuration. The same shape is accepted as YAML and
// as JSON with comments.
type File struct {
	Projects ProjectsDTO `yaml:"projects" json:"projects"`
	Update   UpdateDTO   `yaml:"update" json:"update"`
	StateDir string      `yaml:"state_dir" json:"state_dir"`
}

// ProjectsDTO describes project discovery and component layout.
type ProjectsDTO struct {
	WorkspaceDirectories []string          `yaml:"workspace_directories" json:"workspace_directories"`
	WorkspaceDirectory   string            `yaml:"workspace_directory" json:"workspace_directory"`
	Ignore               []string          `yaml:"ignore" json:"ignore"`
	Shortcuts            map[string]string `yaml:"shortcuts" json:"shortcuts"`
	ServerPaths          map[string]string `yaml:"server_paths" json:"server_paths"`
	WebPaths             map[string]string `yaml:"web_paths" json:"web_paths"`
	DefaultPaths         DefaultPathsDTO   `yaml:"default_paths" json:"default_paths"`
}

// DefaultPathsDTO lists the component subpaths tried in order.
type DefaultPathsDTO struct {
	Server []string `yaml:"server" json:"server"`
	Web    []string `yaml:"web" json:"web"`
}

// UpdateDTO configures the updater.
type UpdateDTO struct {
	Jobs         int               `yaml:"jobs" json:"jobs"`
	TaskTimeout  string            `yaml:"task_timeout" json:"task_timeout"`
	MavenCommand []string          `yaml:"maven_command" json:"maven_command"`
	NpmCommand   []string          `yaml:"npm_command" json:"npm_command"`
	Environment  map[string]string `yaml:"environment" json:"environment"`
}
