package app

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/uw/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/history"            //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"

	// OutputDirName is the state subdirectory holding command output.
	OutputDirName = "logs"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			console.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reporter, log, NewBinder(log), WithTracer(tracer)), nil
}

// NewBinder returns the Binder backed by the filesystem, git and the shell.
func NewBinder(log ports.Logger) Binder {
	return func(ws *domain.Workspace, verbose bool) (*Session, error) {
		store, err := history.NewStore(ws.StateDir)
		if err != nil {
			return nil, err
		}

		runner := shell.NewRunner(log,
			shell.WithEnvironment(ws.Update.Environment),
			shell.WithVerbose(verbose),
		)

		journal := progrock.NewJournal(filepath.Join(ws.StateDir, OutputDirName))

		return &Session{
			Registry:  workspace.NewRegistry(ws, log),
			VCS:       git.NewClient(runner),
			Runner:    runner,
			Store:     store,
			Telemetry: progrock.NewRecorder(journal),
			OutputDir: journal.Dir(),
		}, nil
	}
}
