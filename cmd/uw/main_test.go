package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/bep/helpers/envhelpers"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/uw/internal/app"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"uw": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			envhelpers.SetEnvVars(&env.Vars,
				"HOME", env.WorkDir,
				"XDG_CONFIG_HOME", env.WorkDir+"/.config",
				"UW_CONFIG", "",
				"NO_COLOR", "1",
				"GIT_CONFIG_GLOBAL", os.DevNull,
				"GIT_CONFIG_NOSYSTEM", "1",
				"GIT_AUTHOR_NAME", "uw",
				"GIT_AUTHOR_EMAIL", "uw@example.com",
				"GIT_COMMITTER_NAME", "uw",
				"GIT_COMMITTER_EMAIL", "uw@example.com",
			)
			return nil
		},
	})
}

// components builds an App around mocks that report into a buffer.
func components(t *testing.T, loader *mocks.MockConfigLoader, bind app.Binder) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Begin(gomock.Any(), gomock.Any()).AnyTimes()
	reporter.EXPECT().Report(gomock.Any()).AnyTimes()
	reporter.EXPECT().Summary(gomock.Any(), gomock.Any()).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	return &app.Components{App: app.New(loader, reporter, log, bind), Logger: log}, log
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _ := components(t, mocks.NewMockConfigLoader(ctrl), nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer),
		func(context.Context) (*app.Components, error) { return c, nil })

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "uw version")
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, new(bytes.Buffer), stderr,
		func(context.Context) (*app.Components, error) { return nil, errors.New("wiring failed") })

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

func TestRun_ConfigFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrConfigParseFailed)

	c, log := components(t, loader, nil)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	exitCode := run(context.Background(), []string{"-c", "bad.yaml"}, new(bytes.Buffer), new(bytes.Buffer),
		func(context.Context) (*app.Components, error) { return c, nil })
	assert.Equal(t, 1, exitCode)
}

func TestRun_FailedUpdateExitsWithoutExtraError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	registry := mocks.NewMockProjectRegistry(ctrl)
	store := mocks.NewMockHistoryStore(ctrl)

	loader.EXPECT().Load("").Return(domain.NewWorkspace(), nil)
	registry.EXPECT().ProjectName("zeta").Return("", false)
	store.EXPECT().Save(gomock.Any()).Return(nil)

	bind := func(*domain.Workspace, bool) (*app.Session, error) {
		return &app.Session{Registry: registry, Store: store}, nil
	}
	// The logger mock has no expectations: logging here would fail the test.
	c, _ := components(t, loader, bind)

	exitCode := run(context.Background(), []string{"zeta"}, new(bytes.Buffer), new(bytes.Buffer),
		func(context.Context) (*app.Components, error) { return c, nil })
	assert.Equal(t, 1, exitCode)
}
