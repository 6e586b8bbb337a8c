// Package resolver turns command-line specifiers into component update tasks.
package resolver

import (
	"path/filepath"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Operator-facing rejection messages.
const (
	MsgUnknownProject  = "Unknown project"
	MsgNoServer        = "No server component found"
	MsgNoWeb           = "No web component found"
	MsgProjectNotFound = "Project path not found"
)

// Plan is the result of resolving a batch of specifiers.
type Plan struct {
	// Tasks holds one pending task per distinct (project, component) pair.
	Tasks []*domain.ComponentUpdateTask
	// Rejected holds a failed outcome for every specifier that produced no task.
	Rejected []domain.Outcome
}

// Size returns the number of projects the batch accounts for.
func (p Plan) Size() int {
	return len(p.Tasks) + len(p.Rejected)
}

// Resolver maps specifiers to tasks using a project registry.
type Resolver struct {
	registry ports.ProjectRegistry
}

// New creates a Resolver.
func New(registry ports.ProjectRegistry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve parses one specifier. An exact project name or shortcut selects the
// whole project; otherwise a trailing "s" or "w" on a known project selects
// its server or web component. Shortcuts resolve to the full project name.
func (r *Resolver) Resolve(specifier string) (domain.UpdateTarget, error) {
	if name, ok := r.registry.ProjectName(specifier); ok {
		return domain.UpdateTarget{RawSpecifier: specifier, BaseProject: name, Restriction: domain.RestrictNone}, nil
	}

	if n := len(specifier); n > 1 {
		if restriction, ok := domain.RestrictionForSuffix(specifier[n-1]); ok {
			if name, ok := r.registry.ProjectName(specifier[:n-1]); ok {
				return domain.UpdateTarget{RawSpecifier: specifier, BaseProject: name, Restriction: restriction}, nil
			}
		}
	}

	return domain.UpdateTarget{RawSpecifier: specifier}, zerr.With(domain.ErrUnknownTarget, "specifier", specifier)
}

// Expand builds the tasks for a target. Paths are absolute.
func (r *Resolver) Expand(target domain.UpdateTarget) ([]*domain.ComponentUpdateTask, error) {
	root, ok := r.registry.ResolvePath(target.BaseProject)
	if !ok {
		return nil, zerr.With(domain.ErrProjectPathNotFound, "project", target.BaseProject)
	}

	if target.Restriction != domain.RestrictNone {
		kind := target.Restriction.Kind()
		task, ok := r.task(target.BaseProject, root, kind)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrMissingComponent, kind.String()), "project", target.BaseProject)
			return nil, err
		}
		return []*domain.ComponentUpdateTask{task}, nil
	}

	tasks := []*domain.ComponentUpdateTask{
		domain.NewComponentUpdateTask(target.BaseProject, domain.ComponentMain, root),
	}
	for _, kind := range []domain.ComponentKind{domain.ComponentServer, domain.ComponentWeb} {
		if task, ok := r.task(target.BaseProject, root, kind); ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *Resolver) task(project, root string, kind domain.ComponentKind) (*domain.ComponentUpdateTask, bool) {
	if !r.registry.HasComponent(project, kind) {
		return nil, false
	}
	rel, ok := r.registry.ComponentPath(project, kind)
	if !ok {
		return nil, false
	}
	path := rel
	if !filepath.IsAbs(rel) {
		path = filepath.Join(root, rel)
	}
	return domain.NewComponentUpdateTask(project, kind, path), true
}

// Plan resolves and expands every specifier. With no specifiers every known
// project is planned. Tasks are de-duplicated by component path so that no
// directory is updated twice in one batch.
func (r *Resolver) Plan(specifiers []string) Plan {
	if len(specifiers) == 0 {
		specifiers = r.registry.ProjectNames()
	}

	var plan Plan
	seen := make(map[string]bool)

	for _, spec := range specifiers {
		target, err := r.Resolve(spec)
		if err != nil {
			plan.Rejected = append(plan.Rejected, domain.FailedOutcome(spec, MsgUnknownProject, err))
			continue
		}

		tasks, err := r.Expand(target)
		if err != nil {
			plan.Rejected = append(plan.Rejected, domain.FailedOutcome(spec, rejectionMessage(target), err))
			continue
		}

		for _, task := range tasks {
			if seen[task.Path] {
				continue
			}
			seen[task.Path] = true
			plan.Tasks = append(plan.Tasks, task)
		}
	}

	return plan
}

func rejectionMessage(target domain.UpdateTarget) string {
	switch target.Restriction {
	case domain.RestrictServer:
		return MsgNoServer
	case domain.RestrictWeb:
		return MsgNoWeb
	default:
		return MsgProjectNotFound
	}
}
