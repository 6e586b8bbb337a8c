package resolver_test

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports/mocks"
	"go.trai.ch/uw/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const root = "/work"

// newRegistry backs a mock registry with a fixed set of projects.
// "beta" is also reachable through the shortcut "b".
func newRegistry(t *testing.T) *mocks.MockProjectRegistry {
	t.Helper()
	ctrl := gomock.NewController(t)

	projects := map[string]domain.Project{
		"alpha": {Name: "alpha", Path: root + "/alpha"},
		"beta":  {Name: "beta", Shortcut: "b", Path: root + "/beta", ServerPath: "server", WebPath: "webapp"},
		"betas": {Name: "betas", Path: root + "/betas"},
		"gamma": {Name: "gamma", Path: root + "/gamma", WebPath: "web"},
	}
	lookup := func(name string) (domain.Project, bool) {
		if p, ok := projects[name]; ok {
			return p, true
		}
		for _, p := range projects {
			if p.Shortcut != "" && p.Shortcut == name {
				return p, true
			}
		}
		return domain.Project{}, false
	}

	reg := mocks.NewMockProjectRegistry(ctrl)
	reg.EXPECT().ProjectName(gomock.Any()).DoAndReturn(func(name string) (string, bool) {
		p, ok := lookup(name)
		return p.Name, ok
	}).AnyTimes()
	reg.EXPECT().ResolvePath(gomock.Any()).DoAndReturn(func(name string) (string, bool) {
		p, ok := lookup(name)
		return p.Path, ok
	}).AnyTimes()
	reg.EXPECT().HasComponent(gomock.Any(), gomock.Any()).DoAndReturn(func(name string, kind domain.ComponentKind) bool {
		p, ok := lookup(name)
		return ok && p.HasComponent(kind)
	}).AnyTimes()
	reg.EXPECT().ComponentPath(gomock.Any(), gomock.Any()).DoAndReturn(func(name string, kind domain.ComponentKind) (string, bool) {
		p, ok := lookup(name)
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
	}).AnyTimes()
	reg.EXPECT().ProjectNames().DoAndReturn(func() []string {
		names := make([]string, 0, len(projects))
		for name := range projects {
			names = append(names, name)
		}
		slices.Sort(names)
		return names
	}).AnyTimes()
	return reg
}

func labels(tasks []*domain.ComponentUpdateTask) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Label()
	}
	return out
}

func TestResolver_Resolve(t *testing.T) {
	r := resolver.New(newRegistry(t))

	tests := []struct {
		specifier   string
		base        string
		restriction domain.Restriction
		wantErr     bool
	}{
		{specifier: "alpha", base: "alpha", restriction: domain.RestrictNone},
		{specifier: "b", base: "beta", restriction: domain.RestrictNone},
		{specifier: "betaw", base: "beta", restriction: domain.RestrictWeb},
		{specifier: "bs", base: "beta", restriction: domain.RestrictServer},
		{specifier: "betas", base: "betas", restriction: domain.RestrictNone},
		{specifier: "alphax", wantErr: true},
		{specifier: "zeta", wantErr: true},
		{specifier: "s", wantErr: true},
		{specifier: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			target, err := r.Resolve(tt.specifier)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.specifier, target.RawSpecifier)
			assert.Equal(t, tt.base, target.BaseProject)
			assert.Equal(t, tt.restriction, target.Restriction)
		})
	}
}

func TestResolver_Expand(t *testing.T) {
	r := resolver.New(newRegistry(t))

	tasks, err := r.Expand(domain.UpdateTarget{BaseProject: "beta"})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "beta-server", "beta-web"}, labels(tasks))
	assert.Equal(t, root+"/beta", tasks[0].Path)
	assert.Equal(t, filepath.Join(root, "beta", "server"), tasks[1].Path)
	assert.Equal(t, filepath.Join(root, "beta", "webapp"), tasks[2].Path)
	for _, task := range tasks {
		assert.Equal(t, domain.StatePending, task.State)
		assert.True(t, filepath.IsAbs(task.Path))
	}

	tasks, err = r.Expand(domain.UpdateTarget{BaseProject: "alpha"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, labels(tasks))

	tasks, err = r.Expand(domain.UpdateTarget{BaseProject: "beta", Restriction: domain.RestrictWeb})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta-web"}, labels(tasks))

	_, err = r.Expand(domain.UpdateTarget{BaseProject: "alpha", Restriction: domain.RestrictServer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingComponent))
}

func TestResolver_Plan(t *testing.T) {
	r := resolver.New(newRegistry(t))

	plan := r.Plan([]string{"alpha", "betas", "betaw", "nope", "alphas", "gammas"})

	assert.Equal(t, []string{"alpha", "betas", "beta-web"}, labels(plan.Tasks))
	require.Len(t, plan.Rejected, 3)

	assert.Equal(t, "nope", plan.Rejected[0].Label)
	assert.Equal(t, resolver.MsgUnknownProject, plan.Rejected[0].Message())
	assert.True(t, errors.Is(plan.Rejected[0].Err, domain.ErrUnknownTarget))

	assert.Equal(t, "alphas", plan.Rejected[1].Label)
	assert.Equal(t, resolver.MsgNoServer, plan.Rejected[1].Message())
	assert.True(t, errors.Is(plan.Rejected[1].Err, domain.ErrMissingComponent))

	assert.Equal(t, resolver.MsgNoServer, plan.Rejected[2].Message())
	assert.Equal(t, 6, plan.Size())
}

func TestResolver_PlanDeduplicates(t *testing.T) {
	r := resolver.New(newRegistry(t))

	plan := r.Plan([]string{"beta", "betaw", "b", "bs"})

	assert.Equal(t, []string{"beta", "beta-server", "beta-web"}, labels(plan.Tasks))
	assert.Empty(t, plan.Rejected)
}

func TestResolver_PlanLabelsShortcutsByFullName(t *testing.T) {
	r := resolver.New(newRegistry(t))

	plan := r.Plan([]string{"bs"})

	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "beta", plan.Tasks[0].Project)
	assert.Equal(t, "beta-server", plan.Tasks[0].Label())
}

func TestResolver_PlanEmptyMeansEverything(t *testing.T) {
	r := resolver.New(newRegistry(t))

	plan := r.Plan(nil)

	assert.Equal(t,
		[]string{"alpha", "beta", "beta-server", "beta-web", "betas", "gamma", "gamma-web"},
		labels(plan.Tasks))
	assert.Empty(t, plan.Rejected)
}
