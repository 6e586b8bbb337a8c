package updater

import (
	"os"
	"path/filepath"

	"go.trai.ch/uw/internal/core/domain"
)

// PackageManager identifies a dependency refresh tool.
type PackageManager int

const (
	// Maven refreshes Java dependencies.
	Maven PackageManager = iota
	// Npm refreshes JavaScript packages.
	Npm
)

// String returns the tool name.
func (m PackageManager) String() string {
	if m == Maven {
		return "Maven"
	}
	return "npm"
}

// DetectPackageManagers returns the package managers to run for a component.
// Server components always use Maven and web components always use npm. The
// main checkout uses Maven when pom.xml exists and npm when package.json exists.
func DetectPackageManagers(kind domain.ComponentKind, path string) []PackageManager {
	switch kind {
	case domain.ComponentServer:
		return []PackageManager{Maven}
	case domain.ComponentWeb:
		return []PackageManager{Npm}
	}

	var managers []PackageManager
	if fileExists(filepath.Join(path, "pom.xml")) {
		managers = append(managers, Maven)
	}
	if fileExists(filepath.Join(path, "package.json")) {
		managers = append(managers, Npm)
	}
	return managers
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
