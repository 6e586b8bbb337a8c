// Package workspace discovers projects inside the configured workspace
// directories and implements ports.ProjectRegistry.
package workspace

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
)

// Registry implements ports.ProjectRegistry over a directory scan taken at
// construction time.
type Registry struct {
	projects map[string]domain.Project
	byShort  map[string]string
	names    []string
}

// NewRegistry scans every workspace directory in ws. Each immediate
// subdirectory not matched by an ignore pattern becomes a project named after
// the directory. When two workspace directories hold a project with the same
// name the first one wins. Missing workspace directories are skipped.
func NewRegistry(ws *domain.Workspace, logger ports.Logger) *Registry {
	r := &Registry{
		projects: make(map[string]domain.Project),
		byShort:  make(map[string]string),
	}

	for _, dir := range ws.Directories {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if logger != nil && !os.IsNotExist(err) {
				logger.Warn("cannot scan workspace directory " + dir + ": " + err.Error())
			}
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !isProjectDir(dir, entry) || ignored(name, ws.Ignore) {
				continue
			}
			if existing, ok := r.projects[name]; ok {
				if logger != nil {
					logger.Warn("project " + name + " found in " + dir + " is shadowed by " + existing.Path)
				}
				continue
			}
			r.projects[name] = r.describe(ws, name, filepath.Join(dir, name))
		}
	}

	for full, short := range ws.Shortcuts {
		if _, ok := r.projects[full]; ok && short != "" {
			r.byShort[short] = full
		}
	}

	r.names = make([]string, 0, len(r.projects))
	for name := range r.projects {
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)

	return r
}

func (r *Registry) describe(ws *domain.Workspace, name, path string) domain.Project {
	return domain.Project{
		Name:       name,
		Shortcut:   ws.Shortcuts[name],
		Path:       path,
		ServerPath: componentPath(path, ws.ServerPaths[name], ws.DefaultServerPaths),
		WebPath:    componentPath(path, ws.WebPaths[name], ws.DefaultWebPaths),
	}
}

// componentPath returns the explicit subpath when configured, otherwise the
// first candidate that exists as a directory under the project root.
func componentPath(projectPath, explicit string, candidates []string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(filepath.Join(projectPath, candidate)); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

func isProjectDir(parent string, entry os.DirEntry) bool {
	if strings.HasPrefix(entry.Name(), ".") {
		return false
	}
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(parent, entry.Name()))
		return err == nil && info.IsDir()
	}
	return false
}

func ignored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == name {
			return true
		}
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (r *Registry) lookup(name string) (domain.Project, bool) {
	if p, ok := r.projects[name]; ok {
		return p, true
	}
	if full, ok := r.byShort[name]; ok {
		return r.projects[full], true
	}
	return domain.Project{}, false
}

// ProjectName returns the full name for a full name or shortcut.
func (r *Registry) ProjectName(name string) (string, bool) {
	p, ok := r.lookup(name)
	return p.Name, ok
}

// ResolvePath returns the project root for a full name or shortcut.
func (r *Registry) ResolvePath(name string) (string, bool) {
	p, ok := r.lookup(name)
	if !ok {
		return "", false
	}
	return p.Path, true
}

// ComponentPath returns the component's path relative to the project root.
// The main component lives at the root and yields ".".
func (r *Registry) ComponentPath(name string, kind domain.ComponentKind) (string, bool) {
	p, ok := r.lookup(name)
	if !ok {
		return "", false
	}
	switch kind {
	case domain.ComponentServer:
		return p.ServerPath, p.ServerPath != ""
	case domain.ComponentWeb:
		return p.WebPath, p.WebPath != ""
	default:
		return ".", true
	}
}

// HasComponent reports whether the project declares the component.
func (r *Registry) HasComponent(name string, kind domain.ComponentKind) bool {
	p, ok := r.lookup(name)
	return ok && p.HasComponent(kind)
}

// ProjectNames lists every discovered project by full name, sorted.
func (r *Registry) ProjectNames() []string {
	return slices.Clone(r.names)
}

// Projects lists every discovered project, sorted by name.
func (r *Registry) Projects() []domain.Project {
	out := make([]domain.Project, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.projects[name])
	}
	return out
}
