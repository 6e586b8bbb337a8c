// Package app implements the application layer for uw.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/uw/internal/engine/resolver"
	"go.trai.ch/uw/internal/engine/scheduler"
	"go.trai.ch/uw/internal/engine/updater"
	"go.trai.ch/zerr"
)

// Session holds the adapters bound to one loaded workspace.
type Session struct {
	Registry ports.ProjectRegistry
	VCS      ports.VersionControl
	Runner   ports.CommandRunner
	Store    ports.HistoryStore
	// Telemetry records command output per component when set.
	Telemetry ports.Telemetry
	// OutputDir is where Telemetry keeps that output.
	OutputDir string
}

// Binder builds the workspace-dependent adapters.
type Binder func(ws *domain.Workspace, verbose bool) (*Session, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reporter     ports.Reporter
	logger       ports.Logger
	bind         Binder
	tracer       ports.Tracer
	now          func() time.Time
	newRunID     func() string
}

// Option configures an App.
type Option func(*App)

// WithTracer wraps every batch and component update in a span when the
// update runs verbose.
func WithTracer(t ports.Tracer) Option {
	return func(a *App) { a.tracer = t }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithRunID overrides the run identifier generator.
func WithRunID(fn func() string) Option {
	return func(a *App) { a.newRunID = fn }
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, reporter ports.Reporter, log ports.Logger, bind Binder, opts ...Option) *App {
	a := &App{
		configLoader: loader,
		reporter:     reporter,
		logger:       log,
		bind:         bind,
		now:          time.Now,
		newRunID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// UpdateOptions configures one update batch.
type UpdateOptions struct {
	ConfigPath string
	Targets    []string
	// Jobs overrides the configured parallelism when positive.
	Jobs int
	// Timeout overrides the configured per-task timeout when set.
	Timeout *time.Duration
	Verbose bool
}

func (o UpdateOptions) config(ws *domain.Workspace) domain.UpdateConfig {
	cfg := domain.UpdateConfig{
		MaxParallelJobs: ws.Update.Jobs,
		Verbose:         o.Verbose,
		Targets:         o.Targets,
		TaskTimeout:     ws.Update.TaskTimeout,
	}
	if o.Jobs > 0 {
		cfg.MaxParallelJobs = o.Jobs
	}
	if o.Timeout != nil {
		cfg.TaskTimeout = *o.Timeout
	}
	return cfg.Normalize()
}

// Update brings the selected components up to date. It prints the summary
// before returning and returns an error wrapping domain.ErrUpdateFailed when
// at least one component failed.
func (a *App) Update(ctx context.Context, opts UpdateOptions) error {
	ws, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg := opts.config(ws)

	session, err := a.bind(ws, cfg.Verbose)
	if err != nil {
		return zerr.Wrap(err, "failed to prepare workspace")
	}

	tracer := a.tracer
	if !cfg.Verbose {
		tracer = nil
	}
	if tracer != nil {
		var span ports.Span
		ctx, span = tracer.Start(ctx, "uw update")
		span.SetAttribute("uw.jobs", cfg.MaxParallelJobs)
		defer span.End()
	}

	plan := resolver.New(session.Registry).Plan(cfg.Targets)

	a.reporter.Begin(cfg.MaxParallelJobs, plan.Size())
	start := a.now()

	outcomes := make([]domain.Outcome, 0, plan.Size())
	for _, rejected := range plan.Rejected {
		a.reporter.Report(domain.Event{
			Time:     a.now(),
			Severity: domain.SeverityError,
			Label:    rejected.Label,
			Message:  rejected.Message(),
		})
		outcomes = append(outcomes, rejected)
	}

	up := a.updater(session, ws, cfg, tracer)
	jobs := make([]scheduler.Job, len(plan.Tasks))
	for i, task := range plan.Tasks {
		jobs[i] = scheduler.Job{
			Label: task.Label(),
			Run: func(ctx context.Context) domain.Outcome {
				return up.Update(ctx, task)
			},
		}
	}
	outcomes = append(outcomes, scheduler.New(cfg.MaxParallelJobs).Run(ctx, jobs)...)

	stats := domain.Aggregate(outcomes, start, a.now())
	a.reporter.Summary(stats, outcomes)

	if session.Telemetry != nil {
		if err := session.Telemetry.Close(); err != nil {
			a.logger.Warn("failed to close command output: " + err.Error())
		}
	}

	a.persist(session, cfg, stats, outcomes)

	if stats.HasFailures() {
		return zerr.With(domain.ErrUpdateFailed, "failed_updates", stats.FailedUpdates)
	}
	return nil
}

func (a *App) updater(session *Session, ws *domain.Workspace, cfg domain.UpdateConfig, tracer ports.Tracer) *updater.Updater {
	opts := []updater.Option{
		updater.WithCommands(ws.Update.MavenCommand, ws.Update.NpmCommand),
		updater.WithTimeout(cfg.TaskTimeout),
		updater.WithClock(a.now),
	}
	if tracer != nil {
		opts = append(opts, updater.WithTracer(tracer))
	}
	if session.Telemetry != nil {
		opts = append(opts, updater.WithTelemetry(session.Telemetry))
	}
	return updater.New(session.VCS, session.Runner, a.reporter, opts...)
}

// persist records the batch. A failure to write history never changes the
// batch verdict.
func (a *App) persist(session *Session, cfg domain.UpdateConfig, stats domain.UpdateStats, outcomes []domain.Outcome) {
	store := session.Store
	if store == nil {
		return
	}
	report := domain.RunReport{
		RunID:     a.newRunID(),
		Targets:   cfg.Targets,
		Jobs:      cfg.MaxParallelJobs,
		Stats:     stats,
		Outcomes:  make([]domain.OutcomeRecord, len(outcomes)),
		OutputDir: session.OutputDir,
	}
	for i, o := range outcomes {
		report.Outcomes[i] = domain.NewOutcomeRecord(o)
	}
	if err := store.Save(report); err != nil {
		a.logger.Error(err)
	}
}

// Last prints the summary of the previous batch.
func (a *App) Last(_ context.Context, configPath string) (*domain.RunReport, error) {
	ws, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	session, err := a.bind(ws, false)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to prepare workspace")
	}

	report, err := session.Store.Last()
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNoPreviousRun
	}

	a.reporter.Summary(report.Stats, report.RestoreOutcomes())
	return report, nil
}

// Projects lists every project the workspace resolves, sorted by name.
func (a *App) Projects(_ context.Context, configPath string) ([]domain.Project, error) {
	ws, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	session, err := a.bind(ws, false)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to prepare workspace")
	}
	return session.Registry.Projects(), nil
}
