package ports

import "go.trai.ch/uw/internal/core/domain"

// ProjectRegistry resolves project names to filesystem locations.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ProjectRegistry interface {
	// ResolvePath returns the absolute path of a project given its full name or shortcut.
	ResolvePath(name string) (string, bool)
	// ProjectName returns the full project name given its full name or shortcut.
	ProjectName(name string) (string, bool)
	// ComponentPath returns the component's path relative to the project root.
	ComponentPath(name string, kind domain.ComponentKind) (string, bool)
	// HasComponent reports whether the project declares the component.
	HasComponent(name string, kind domain.ComponentKind) bool
	// ProjectNames lists every known project by full name, sorted.
	ProjectNames() []string
	// Projects lists every known project with its resolved components, sorted by name.
	Projects() []domain.Project
}
